package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/aurasim/internal/config"
	"github.com/san-kum/aurasim/internal/dynamo"
	"github.com/san-kum/aurasim/internal/scene"
	"github.com/san-kum/aurasim/internal/sim"
)

// svgRenderer is a scene.Renderer that emits SVG elements.
type svgRenderer struct {
	sb     strings.Builder
	airbag config.AirbagConfig
}

var fontPx = map[scene.Font]int{
	scene.FontPanelTitle: 20,
	scene.FontResult:     22,
	scene.FontInfo:       18,
	scene.FontSmall:      16,
}

func fill(c dynamo.Color) string {
	if c.A == 255 {
		return fmt.Sprintf(`fill="%s"`, c.Hex())
	}
	return fmt.Sprintf(`fill="%s" fill-opacity="%.2f"`, c.Hex(), float64(c.A)/255)
}

func (r *svgRenderer) Clear(bg dynamo.Color) {
	fmt.Fprintf(&r.sb, "<rect width=\"100%%\" height=\"100%%\" %s/>\n", fill(bg))
}

func (r *svgRenderer) line(from, to dynamo.Vec2, thick float64, c dynamo.Color) {
	fmt.Fprintf(&r.sb, "<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"%s\" stroke-width=\"%.0f\" stroke-linecap=\"round\"/>\n",
		from.X, from.Y, to.X, to.Y, c.Hex(), thick)
}

func (r *svgRenderer) circle(c dynamo.Vec2, radius float64, col dynamo.Color) {
	fmt.Fprintf(&r.sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" %s/>\n", c.X, c.Y, radius, fill(col))
}

func (r *svgRenderer) rect(x, y, w, h, radius float64, attrs string) {
	fmt.Fprintf(&r.sb, "<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" rx=\"%.0f\" %s/>\n", x, y, w, h, radius, attrs)
}

func (r *svgRenderer) DrawLine(from, to dynamo.Vec2, thick float64, c dynamo.Color) {
	r.line(from, to, thick, c)
}

func (r *svgRenderer) DrawText(text string, style scene.TextStyle, pos dynamo.Vec2) {
	anchor := `dominant-baseline="hanging"`
	if style.Centered {
		anchor = `text-anchor="middle" dominant-baseline="middle"`
	}
	weight := ""
	if style.Font == scene.FontPanelTitle || style.Font == scene.FontResult {
		weight = ` font-weight="bold"`
	}
	fmt.Fprintf(&r.sb, "<text x=\"%.1f\" y=\"%.1f\" font-family=\"Arial, sans-serif\" font-size=\"%d\"%s %s %s>%s</text>\n",
		pos.X, pos.Y, fontPx[style.Font], weight, anchor, fill(style.Color), html.EscapeString(text))
}

func (r *svgRenderer) DrawFigure(pos dynamo.Vec2, angle float64, c dynamo.Color, sitting bool) {
	for _, seg := range scene.FigureSegments(pos, angle, sitting) {
		r.line(seg.From, seg.To, scene.LimbWidth, c)
	}
	r.circle(scene.HeadCenter(pos, angle), scene.HeadRadius, c)
}

func (r *svgRenderer) DrawAirbag(pos dynamo.Vec2, angle, progress float64) {
	if progress <= 0 {
		return
	}
	center, radius := scene.AirbagCircle(pos, progress, r.airbag.MaxRadius, r.airbag.TorsoOffsetPx)
	r.circle(center, radius, r.airbag.Color)
}

func (r *svgRenderer) DrawPhone(pos dynamo.Vec2, vibrateOffset float64, active bool) {
	x := pos.X + scene.PhoneShake(vibrateOffset, active)
	r.rect(x, pos.Y, 60, 120, 10, fill(dynamo.RGB(30, 30, 30)))
	screen := dynamo.RGB(200, 200, 200)
	if active {
		screen = dynamo.RGB(230, 230, 230)
	}
	r.rect(x+6, pos.Y+8, 48, 85, 6, fill(screen))
	r.circle(dynamo.Vec2{X: x + 30, Y: pos.Y + 105}, 4, dynamo.RGB(180, 180, 180))
	if active {
		red := dynamo.RGB(255, 0, 0)
		r.line(dynamo.Vec2{X: pos.X - 8, Y: pos.Y + 30}, dynamo.Vec2{X: pos.X - 20, Y: pos.Y + 25}, 2, red)
		r.line(dynamo.Vec2{X: pos.X + 68, Y: pos.Y + 30}, dynamo.Vec2{X: pos.X + 80, Y: pos.Y + 25}, 2, red)
	}
}

func (r *svgRenderer) DrawAlertBox(x, y, w, h float64) {
	r.rect(x, y, w, h, 10, `fill="#ffffff" stroke="#dc0000" stroke-width="3"`)
}

// SceneSVG renders one frame of the four panels as an SVG document.
func SceneSVG(snap sim.Snapshot, cfg *config.Config) string {
	r := &svgRenderer{airbag: cfg.Airbag}
	w, h := cfg.Window.Width, cfg.Window.Height
	fmt.Fprintf(&r.sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, w, h, w, h)
	scene.Compose(r, snap, cfg)
	r.sb.WriteString("</svg>\n")
	return r.sb.String()
}

// AngleChart plots every scenario's angle against frame number, one
// polyline per scenario in its terminal color.
func AngleChart(result *sim.Result, cfg *config.Config, width, height int) string {
	if len(result.Frames) < 2 {
		return ""
	}

	maxAngle := 0.0
	for _, sc := range cfg.Scenarios {
		if sc.Threshold > maxAngle {
			maxAngle = sc.Threshold
		}
	}
	maxFrame := float64(result.Frames[len(result.Frames)-1].Frame)
	pad := 0.1
	sx := func(frame int) float64 {
		return (pad + (1-2*pad)*float64(frame)/maxFrame) * float64(width)
	}
	sy := func(angle float64) float64 {
		return float64(height) - (pad+(1-2*pad)*angle/maxAngle)*float64(height)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	for i, sc := range cfg.Scenarios {
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" data-scenario="%s" d="M`, sc.DoneColor.Hex(), sc.Name)
		for j, f := range result.Frames {
			if i >= len(f.Scenarios) {
				break
			}
			if j == 0 {
				fmt.Fprintf(&sb, "%.1f,%.1f", sx(f.Frame), sy(f.Scenarios[i].State.Angle))
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", sx(f.Frame), sy(f.Scenarios[i].State.Angle))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
