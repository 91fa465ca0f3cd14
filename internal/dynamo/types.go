package dynamo

import "fmt"

// Color is an 8-bit RGBA color. Renderers convert it to their own type.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Hex returns the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
)

type Vec2 struct {
	X, Y float64
}

// Phase is what an animator is doing, as shown in its status line.
type Phase int

const (
	PhaseStanding Phase = iota
	PhaseMoving
	PhaseDeploying
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseStanding:
		return "standing"
	case PhaseMoving:
		return "moving"
	case PhaseDeploying:
		return "deploying"
	case PhaseDone:
		return "done"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Prefix is the label the status line is rendered with.
func (p Phase) Prefix() string {
	if p == PhaseDone {
		return "HASIL: "
	}
	return "STATUS: "
}

type AnimatorState struct {
	Angle    float64
	Active   bool
	Terminal bool
	Status   string
	Phase    Phase
	Color    Color
}

// StatusLine is the full status text, e.g. "HASIL: CEDERA SERIUS".
func (s AnimatorState) StatusLine() string {
	return s.Phase.Prefix() + s.Status
}

type AirbagState struct {
	DeployProgress float64
}

func (a AirbagState) Deployed() bool { return a.DeployProgress >= 1.0 }

type GPSFix struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

type SummaryLine struct {
	Label string
	Value string
	Color Color
}

type DashboardState struct {
	ElapsedSeconds float64
	BatteryPercent float64
	BatteryColor   Color
	VibratePhase   int
	AlertVisible   bool
	Background     Color
	Summary        []SummaryLine
}
