package scene

import "github.com/san-kum/aurasim/internal/dynamo"

type Font int

const (
	FontPanelTitle Font = iota
	FontResult
	FontInfo
	FontSmall
)

type TextStyle struct {
	Font     Font
	Color    dynamo.Color
	Centered bool
}

// Renderer draws primitives on a canvas of config.ScreenWidth x
// config.ScreenHeight logical pixels. Implementations keep no state between
// frames beyond their output surface.
type Renderer interface {
	Clear(bg dynamo.Color)
	DrawLine(from, to dynamo.Vec2, thick float64, color dynamo.Color)
	DrawText(text string, style TextStyle, pos dynamo.Vec2)
	DrawFigure(pos dynamo.Vec2, angle float64, color dynamo.Color, sitting bool)
	DrawAirbag(pos dynamo.Vec2, angle, progress float64)
	DrawPhone(pos dynamo.Vec2, vibrateOffset float64, active bool)
	DrawAlertBox(x, y, w, h float64)
}
