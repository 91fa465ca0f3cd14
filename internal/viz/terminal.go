package viz

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/aurasim/internal/config"
	"github.com/san-kum/aurasim/internal/dynamo"
	"github.com/san-kum/aurasim/internal/scene"
)

const panels = 4

type textItem struct {
	x, y     float64
	text     string
	color    dynamo.Color
	centered bool
	bold     bool
}

type termPanel struct {
	figure    *Canvas
	bag       *Canvas
	figColor  dynamo.Color
	drawn     bool
	texts     []textItem
	alert     bool
	alertTop  float64
	alertBase float64
}

// Terminal is a scene.Renderer that rasterizes each panel's figure band
// onto braille canvases and lays text out as lines ordered by y.
type Terminal struct {
	airbag config.AirbagConfig
	top    float64
	scale  float64
	panels [panels]*termPanel
}

func NewTerminal(cfg *config.Config) *Terminal {
	t := &Terminal{
		airbag: cfg.Airbag,
		scale:  float64(panelCols*2) / config.PanelWidth,
	}
	// figure band of panelRows*4 dots centered on the baseline
	t.top = float64(cfg.Window.FigureY) - float64(panelRows*4)/t.scale/2
	for i := range t.panels {
		t.panels[i] = &termPanel{
			figure: NewCanvas(panelCols, panelRows),
			bag:    NewCanvas(panelCols, panelRows),
		}
	}
	return t
}

func panelOf(x float64) int {
	i := int(math.Floor(x / config.PanelWidth))
	if i < 0 {
		return 0
	}
	if i >= panels {
		return panels - 1
	}
	return i
}

func (t *Terminal) bottom() float64 {
	return t.top + float64(panelRows*4)/t.scale
}

func (t *Terminal) inBand(y float64) bool {
	return y >= t.top && y <= t.bottom()
}

// dot maps a screen position to dot coordinates on panel i's canvas.
func (t *Terminal) dot(i int, p dynamo.Vec2) (int, int) {
	left := float64(config.PanelWidth * i)
	return int(math.Round((p.X - left) * t.scale)), int(math.Round((p.Y - t.top) * t.scale))
}

func (t *Terminal) Clear(bg dynamo.Color) {
	for _, p := range t.panels {
		p.figure.Clear()
		p.bag.Clear()
		p.drawn = false
		p.texts = p.texts[:0]
		p.alert = false
	}
}

// DrawLine draws lines inside the figure band. Rules and dividers that leave
// the band are replaced by panel borders.
func (t *Terminal) DrawLine(from, to dynamo.Vec2, thick float64, color dynamo.Color) {
	i := panelOf(from.X)
	if panelOf(to.X) != i || !t.inBand(from.Y) || !t.inBand(to.Y) {
		return
	}
	x0, y0 := t.dot(i, from)
	x1, y1 := t.dot(i, to)
	t.panels[i].figure.DrawLine(x0, y0, x1, y1)
	t.panels[i].drawn = true
}

func (t *Terminal) DrawText(text string, style scene.TextStyle, pos dynamo.Vec2) {
	p := t.panels[panelOf(pos.X)]
	p.texts = append(p.texts, textItem{
		x:        pos.X,
		y:        pos.Y,
		text:     text,
		color:    style.Color,
		centered: style.Centered,
		bold:     style.Font == scene.FontPanelTitle || style.Font == scene.FontResult,
	})
}

func (t *Terminal) DrawFigure(pos dynamo.Vec2, angle float64, color dynamo.Color, sitting bool) {
	i := panelOf(pos.X)
	p := t.panels[i]
	for _, seg := range scene.FigureSegments(pos, angle, sitting) {
		x0, y0 := t.dot(i, seg.From)
		x1, y1 := t.dot(i, seg.To)
		p.figure.DrawLine(x0, y0, x1, y1)
	}
	hx, hy := t.dot(i, scene.HeadCenter(pos, angle))
	p.figure.DrawCircle(hx, hy, int(math.Round(scene.HeadRadius*t.scale)))
	p.figColor = color
	p.drawn = true
}

func (t *Terminal) DrawAirbag(pos dynamo.Vec2, angle, progress float64) {
	if progress <= 0 {
		return
	}
	i := panelOf(pos.X)
	center, r := scene.AirbagCircle(pos, progress, t.airbag.MaxRadius, t.airbag.TorsoOffsetPx)
	cx, cy := t.dot(i, center)
	t.panels[i].bag.FillCircle(cx, cy, int(math.Round(r*t.scale)))
	t.panels[i].drawn = true
}

func (t *Terminal) DrawPhone(pos dynamo.Vec2, vibrateOffset float64, active bool) {
	shake := scene.PhoneShake(vibrateOffset, active)
	pad := int(math.Round(shake/config.VibrateAmp)) + 1
	phone := strings.Repeat(" ", pad) + "[▓▓]"
	color := dynamo.RGB(30, 30, 30)
	if active {
		phone = ")))" + phone + " ((("
		color = dynamo.RGB(255, 0, 0)
	}
	p := t.panels[panelOf(pos.X)]
	p.texts = append(p.texts, textItem{x: pos.X, y: pos.Y, text: phone, color: color, centered: true})
}

func (t *Terminal) DrawAlertBox(x, y, w, h float64) {
	p := t.panels[panelOf(x)]
	p.alert = true
	p.alertTop = y
	p.alertBase = y + h
}

// textLines groups items sharing a y coordinate into one line, left to
// right, and returns the lines top to bottom.
func textLines(items []textItem, th Theme, width int) []string {
	sorted := append([]textItem(nil), items...)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].y != sorted[b].y {
			return sorted[a].y < sorted[b].y
		}
		return sorted[a].x < sorted[b].x
	})

	var lines []string
	for start := 0; start < len(sorted); {
		end := start
		parts := []string{}
		for end < len(sorted) && sorted[end].y == sorted[start].y {
			it := sorted[end]
			st := lipgloss.NewStyle().Foreground(foreground(it.color, th)).Bold(it.bold)
			parts = append(parts, st.Render(it.text))
			end++
		}
		line := strings.Join(parts, " ")
		if sorted[start].centered && end-start == 1 {
			line = lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
		}
		lines = append(lines, line)
		start = end
	}
	return lines
}

func (p *termPanel) canvasLines(th Theme) []string {
	figStyle := lipgloss.NewStyle().Foreground(foreground(p.figColor, th))
	bagStyle := lipgloss.NewStyle().Foreground(th.Airbag)
	out := make([]string, p.figure.Height)
	for row := range p.figure.Grid {
		var b strings.Builder
		for col := range p.figure.Grid[row] {
			fig, bag := p.figure.Grid[row][col], p.bag.Grid[row][col]
			switch {
			case fig != blank:
				b.WriteString(figStyle.Render(string(fig | bag)))
			case bag != blank:
				b.WriteString(bagStyle.Render(string(bag)))
			default:
				b.WriteRune(blank)
			}
		}
		out[row] = b.String()
	}
	return out
}

func (t *Terminal) renderPanel(p *termPanel, th Theme) string {
	var above, below, boxed []textItem
	for _, it := range p.texts {
		switch {
		case p.alert && it.y >= p.alertTop && it.y <= p.alertBase:
			boxed = append(boxed, it)
		case it.y < t.top:
			above = append(above, it)
		default:
			below = append(below, it)
		}
	}

	lines := textLines(above, th, panelCols)
	if p.drawn {
		lines = append(lines, p.canvasLines(th)...)
	}
	lines = append(lines, textLines(below, th, panelCols)...)
	if p.alert {
		lines = append(lines, alertStyle(th).Render(strings.Join(textLines(boxed, th, panelCols-2), "\n")))
	}
	return strings.Join(lines, "\n")
}

// Render returns the four panels side by side.
func (t *Terminal) Render(th Theme) string {
	emergency := false
	for _, p := range t.panels {
		emergency = emergency || p.alert
	}
	style := panelStyle(th, emergency).Height(panelRows + 6)
	views := make([]string, len(t.panels))
	for i, p := range t.panels {
		views[i] = style.Render(t.renderPanel(p, th))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
