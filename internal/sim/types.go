package sim

import (
	"github.com/san-kum/aurasim/internal/dynamo"
	"github.com/san-kum/aurasim/internal/scenario"
)

// Alarm is the tone generator as seen by the simulation.
type Alarm interface {
	Play()
}

type Observer interface {
	OnFrame(s Snapshot)
}

type Metric interface {
	Name() string
	Observe(s Snapshot)
	Value() float64
	Reset()
}

// ScenarioSnapshot is one scenario panel after a frame.
type ScenarioSnapshot struct {
	Name    string
	Title   string
	Sitting bool
	Airbag  bool
	State   dynamo.AnimatorState
	Bag     dynamo.AirbagState
	Event   scenario.Event
}

// Snapshot is everything a renderer needs to draw one frame.
type Snapshot struct {
	Frame         int
	Elapsed       float64
	Scenarios     []ScenarioSnapshot
	Dashboard     dynamo.DashboardState
	GPS           dynamo.GPSFix
	VibrateOffset float64
}

// Scenario returns the named scenario panel, if present.
func (s Snapshot) Scenario(name string) (ScenarioSnapshot, bool) {
	for _, sc := range s.Scenarios {
		if sc.Name == name {
			return sc, true
		}
	}
	return ScenarioSnapshot{}, false
}

type Result struct {
	Frames      []Snapshot
	Metrics     map[string]float64
	FramesTaken int
}
