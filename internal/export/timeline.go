package export

import (
	"github.com/san-kum/aurasim/internal/sim"
)

type ScenarioRecord struct {
	Name     string  `json:"name"`
	Angle    float64 `json:"angle"`
	Terminal bool    `json:"terminal"`
	Status   string  `json:"status"`
	Deploy   float64 `json:"deploy_progress"`
	Events   string  `json:"events"`
}

// Record is one frame of a headless run.
type Record struct {
	Frame     int              `json:"frame"`
	Elapsed   float64          `json:"elapsed"`
	Battery   float64          `json:"battery_percent"`
	Alert     bool             `json:"alert_visible"`
	Scenarios []ScenarioRecord `json:"scenarios"`
}

func NewRecord(s sim.Snapshot) Record {
	r := Record{
		Frame:     s.Frame,
		Elapsed:   s.Elapsed,
		Battery:   s.Dashboard.BatteryPercent,
		Alert:     s.Dashboard.AlertVisible,
		Scenarios: make([]ScenarioRecord, len(s.Scenarios)),
	}
	for i, sc := range s.Scenarios {
		r.Scenarios[i] = ScenarioRecord{
			Name:     sc.Name,
			Angle:    sc.State.Angle,
			Terminal: sc.State.Terminal,
			Status:   sc.State.StatusLine(),
			Deploy:   sc.Bag.DeployProgress,
			Events:   sc.Event.String(),
		}
	}
	return r
}

func Records(result *sim.Result) []Record {
	out := make([]Record, len(result.Frames))
	for i, f := range result.Frames {
		out[i] = NewRecord(f)
	}
	return out
}
