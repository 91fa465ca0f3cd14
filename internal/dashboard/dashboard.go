package dashboard

import (
	"math"

	"github.com/san-kum/aurasim/internal/config"
	"github.com/san-kum/aurasim/internal/dynamo"
)

var (
	batteryOK   = dynamo.RGB(0, 150, 0)
	batteryLow  = dynamo.RGB(200, 0, 0)
	bgNormal    = dynamo.RGB(240, 240, 255)
	bgEmergency = dynamo.RGB(255, 230, 230)
)

// Source is a scenario as seen by the dashboard. The dashboard only reads it.
type Source interface {
	Summary() dynamo.SummaryLine
	Terminal() bool
	RaisesAlarm() bool
}

// Aggregator recomputes the monitor panel once per frame.
type Aggregator struct {
	cfg   config.DashboardConfig
	state dynamo.DashboardState
}

func New(cfg config.DashboardConfig) *Aggregator {
	return &Aggregator{
		cfg: cfg,
		state: dynamo.DashboardState{
			BatteryPercent: 100,
			BatteryColor:   batteryOK,
			Background:     bgNormal,
		},
	}
}

func (a *Aggregator) State() dynamo.DashboardState { return a.state }
func (a *Aggregator) GPS() dynamo.GPSFix           { return a.cfg.GPS }
func (a *Aggregator) Config() config.DashboardConfig {
	return a.cfg
}

// Update recomputes the dashboard for the given elapsed seconds. Elapsed
// time never runs backwards; an earlier value is treated as no change.
func (a *Aggregator) Update(elapsed float64, sources []Source) {
	if elapsed < a.state.ElapsedSeconds {
		elapsed = a.state.ElapsedSeconds
	}
	a.state.ElapsedSeconds = elapsed
	a.state.BatteryPercent = Battery(elapsed, a.cfg.BatteryDrain)
	a.state.BatteryColor = batteryOK
	if a.state.BatteryPercent <= a.cfg.BatteryLow {
		a.state.BatteryColor = batteryLow
	}

	summary := make([]dynamo.SummaryLine, 0, len(sources))
	for _, s := range sources {
		summary = append(summary, s.Summary())
		if s.RaisesAlarm() && s.Terminal() {
			a.state.AlertVisible = true
		}
	}
	a.state.Summary = summary

	if a.state.AlertVisible {
		a.state.VibratePhase++
		a.state.Background = bgEmergency
	}
}

// VibrateOffset is the horizontal shake of the phone icon in pixels.
func (a *Aggregator) VibrateOffset() float64 {
	if !a.state.AlertVisible {
		return 0
	}
	return a.cfg.VibrateAmp * math.Sin(float64(a.state.VibratePhase)*a.cfg.VibrateRate)
}

// Battery is the charge left after elapsed seconds at drain percent/second.
func Battery(elapsed, drain float64) float64 {
	return math.Max(0, 100-elapsed*drain)
}
