package scene

import (
	"math"

	"github.com/san-kum/aurasim/internal/dynamo"
)

const (
	LimbWidth  = 6
	HeadRadius = 14
)

type Segment struct {
	From, To dynamo.Vec2
}

var (
	torso = []Segment{
		{dynamo.Vec2{X: 0, Y: -35}, dynamo.Vec2{X: 0, Y: 55}},
		{dynamo.Vec2{X: 0, Y: -15}, dynamo.Vec2{X: -50, Y: 15}},
		{dynamo.Vec2{X: 0, Y: -15}, dynamo.Vec2{X: 50, Y: 15}},
	}
	standingLegs = []Segment{
		{dynamo.Vec2{X: 0, Y: 55}, dynamo.Vec2{X: -20, Y: 105}},
		{dynamo.Vec2{X: 0, Y: 55}, dynamo.Vec2{X: 20, Y: 105}},
	}
	sittingLegs = []Segment{
		{dynamo.Vec2{X: 0, Y: 55}, dynamo.Vec2{X: -35, Y: 85}},
		{dynamo.Vec2{X: 0, Y: 55}, dynamo.Vec2{X: 35, Y: 85}},
		{dynamo.Vec2{X: -35, Y: 85}, dynamo.Vec2{X: -35, Y: 115}},
		{dynamo.Vec2{X: 35, Y: 85}, dynamo.Vec2{X: 35, Y: 115}},
	}
	headOffset = dynamo.Vec2{X: 0, Y: -55}
)

// Rotate turns p clockwise on screen (y down) by deg degrees about the origin.
func Rotate(p dynamo.Vec2, deg float64) dynamo.Vec2 {
	rad := deg * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return dynamo.Vec2{X: p.X*c - p.Y*s, Y: p.X*s + p.Y*c}
}

func place(center, offset dynamo.Vec2, deg float64) dynamo.Vec2 {
	r := Rotate(offset, deg)
	return dynamo.Vec2{X: center.X + r.X, Y: center.Y + r.Y}
}

// FigureSegments returns the limbs of a stick figure centered at pos and
// tilted by angle degrees, in screen coordinates.
func FigureSegments(pos dynamo.Vec2, angle float64, sitting bool) []Segment {
	legs := standingLegs
	if sitting {
		legs = sittingLegs
	}
	out := make([]Segment, 0, len(torso)+len(legs))
	for _, seg := range append(append([]Segment{}, torso...), legs...) {
		out = append(out, Segment{From: place(pos, seg.From, angle), To: place(pos, seg.To, angle)})
	}
	return out
}

func HeadCenter(pos dynamo.Vec2, angle float64) dynamo.Vec2 {
	return place(pos, headOffset, angle)
}

// AirbagCircle is the inflated cushion for a figure at pos. The cushion is
// centered torsoOffset above pos and stays there while the figure tilts.
func AirbagCircle(pos dynamo.Vec2, progress, maxRadius, torsoOffset float64) (dynamo.Vec2, float64) {
	center := dynamo.Vec2{X: pos.X, Y: pos.Y - torsoOffset}
	return center, maxRadius * math.Max(0, math.Min(1, progress))
}

// PhoneShake is the horizontal offset applied to the phone icon.
func PhoneShake(vibrateOffset float64, active bool) float64 {
	if !active {
		return 0
	}
	return vibrateOffset
}
