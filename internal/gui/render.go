package gui

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/aurasim/internal/config"
	"github.com/san-kum/aurasim/internal/dynamo"
	"github.com/san-kum/aurasim/internal/scene"
)

const textSpacing = 1

var (
	phoneBody   = dynamo.RGB(30, 30, 30)
	phoneScreen = dynamo.RGB(230, 230, 230)
	phoneIdle   = dynamo.RGB(200, 200, 200)
	phoneButton = dynamo.RGB(180, 180, 180)
	shakeMarks  = dynamo.RGB(255, 0, 0)
	alertBorder = dynamo.RGB(220, 0, 0)
)

// Renderer draws the scene with raylib. It must be used between
// rl.BeginDrawing and rl.EndDrawing.
type Renderer struct {
	font   rl.Font
	airbag config.AirbagConfig
}

func NewRenderer(font rl.Font, airbag config.AirbagConfig) *Renderer {
	return &Renderer{font: font, airbag: airbag}
}

func toColor(c dynamo.Color) color.RGBA {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func vec(v dynamo.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

func fontSize(f scene.Font) float32 {
	switch f {
	case scene.FontPanelTitle:
		return 20
	case scene.FontResult:
		return 22
	case scene.FontInfo:
		return 18
	default:
		return 16
	}
}

// roundness converts a corner radius in pixels to raylib's relative roundness.
func roundness(radius, w, h float64) float32 {
	short := math.Min(w, h)
	if short <= 0 {
		return 0
	}
	return float32(math.Min(1, 2*radius/short))
}

func (r *Renderer) Clear(bg dynamo.Color) {
	rl.ClearBackground(toColor(bg))
}

func (r *Renderer) DrawLine(from, to dynamo.Vec2, thick float64, c dynamo.Color) {
	rl.DrawLineEx(vec(from), vec(to), float32(thick), toColor(c))
}

func (r *Renderer) DrawText(text string, style scene.TextStyle, pos dynamo.Vec2) {
	size := fontSize(style.Font)
	at := vec(pos)
	if style.Centered {
		m := rl.MeasureTextEx(r.font, text, size, textSpacing)
		at.X -= m.X / 2
		at.Y -= m.Y / 2
	}
	rl.DrawTextEx(r.font, text, at, size, textSpacing, toColor(style.Color))
}

func (r *Renderer) DrawFigure(pos dynamo.Vec2, angle float64, c dynamo.Color, sitting bool) {
	col := toColor(c)
	for _, seg := range scene.FigureSegments(pos, angle, sitting) {
		rl.DrawLineEx(vec(seg.From), vec(seg.To), scene.LimbWidth, col)
	}
	rl.DrawCircleV(vec(scene.HeadCenter(pos, angle)), scene.HeadRadius, col)
}

func (r *Renderer) DrawAirbag(pos dynamo.Vec2, angle, progress float64) {
	if progress <= 0 {
		return
	}
	center, radius := scene.AirbagCircle(pos, progress, r.airbag.MaxRadius, r.airbag.TorsoOffsetPx)
	rl.DrawCircleV(vec(center), float32(radius), toColor(r.airbag.Color))
}

func (r *Renderer) DrawPhone(pos dynamo.Vec2, vibrateOffset float64, active bool) {
	x := pos.X + scene.PhoneShake(vibrateOffset, active)
	y := pos.Y

	body := rl.NewRectangle(float32(x), float32(y), 60, 120)
	rl.DrawRectangleRounded(body, roundness(10, 60, 120), 8, toColor(phoneBody))

	screen := phoneIdle
	if active {
		screen = phoneScreen
	}
	display := rl.NewRectangle(float32(x+6), float32(y+8), 48, 85)
	rl.DrawRectangleRounded(display, roundness(6, 48, 85), 8, toColor(screen))
	rl.DrawCircleV(rl.NewVector2(float32(x+30), float32(y+105)), 4, toColor(phoneButton))

	if active {
		marks := toColor(shakeMarks)
		rl.DrawLineEx(rl.NewVector2(float32(pos.X-8), float32(y+30)), rl.NewVector2(float32(pos.X-20), float32(y+25)), 2, marks)
		rl.DrawLineEx(rl.NewVector2(float32(pos.X+68), float32(y+30)), rl.NewVector2(float32(pos.X+80), float32(y+25)), 2, marks)
	}
}

func (r *Renderer) DrawAlertBox(x, y, w, h float64) {
	box := rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
	rl.DrawRectangleRounded(box, roundness(10, w, h), 8, rl.White)
	rl.DrawRectangleLinesEx(box, 3, toColor(alertBorder))
}
