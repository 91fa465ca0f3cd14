package metrics

import (
	"github.com/san-kum/aurasim/internal/config"
	"github.com/san-kum/aurasim/internal/sim"
)

// notReached is reported by first-frame metrics that never fired.
const notReached = -1

// TerminalFrame records the first frame a scenario reached its terminal state.
type TerminalFrame struct {
	name     string
	scenario string
	frame    int
}

func NewTerminalFrame(scenario string) *TerminalFrame {
	return &TerminalFrame{
		name:     scenario + "_terminal_frame",
		scenario: scenario,
		frame:    notReached,
	}
}

func (m *TerminalFrame) Name() string { return m.name }

func (m *TerminalFrame) Observe(s sim.Snapshot) {
	if m.frame != notReached {
		return
	}
	if sc, ok := s.Scenario(m.scenario); ok && sc.State.Terminal {
		m.frame = s.Frame
	}
}

func (m *TerminalFrame) Value() float64 { return float64(m.frame) }
func (m *TerminalFrame) Reset()         { m.frame = notReached }

// DeployFrame records the first frame the scenario's airbag progress
// reached at least level. A level of 0 means "started inflating".
type DeployFrame struct {
	name     string
	scenario string
	level    float64
	frame    int
}

func NewDeployStart(scenario string) *DeployFrame {
	return &DeployFrame{name: scenario + "_deploy_start_frame", scenario: scenario, frame: notReached}
}

func NewDeployDone(scenario string) *DeployFrame {
	return &DeployFrame{name: scenario + "_deploy_done_frame", scenario: scenario, level: 1, frame: notReached}
}

func (m *DeployFrame) Name() string { return m.name }

func (m *DeployFrame) Observe(s sim.Snapshot) {
	if m.frame != notReached {
		return
	}
	sc, ok := s.Scenario(m.scenario)
	if !ok {
		return
	}
	p := sc.Bag.DeployProgress
	if (m.level == 0 && p > 0) || (m.level > 0 && p >= m.level) {
		m.frame = s.Frame
	}
}

func (m *DeployFrame) Value() float64 { return float64(m.frame) }
func (m *DeployFrame) Reset()         { m.frame = notReached }

// AlertFrame records the first frame the emergency alert was visible.
type AlertFrame struct {
	frame int
}

func NewAlertFrame() *AlertFrame { return &AlertFrame{frame: notReached} }

func (m *AlertFrame) Name() string { return "alert_frame" }

func (m *AlertFrame) Observe(s sim.Snapshot) {
	if m.frame == notReached && s.Dashboard.AlertVisible {
		m.frame = s.Frame
	}
}

func (m *AlertFrame) Value() float64 { return float64(m.frame) }
func (m *AlertFrame) Reset()         { m.frame = notReached }

// Battery tracks the lowest battery level seen.
type Battery struct {
	min float64
}

func NewBattery() *Battery { return &Battery{min: 100} }

func (m *Battery) Name() string { return "battery_min_percent" }

func (m *Battery) Observe(s sim.Snapshot) {
	if s.Dashboard.BatteryPercent < m.min {
		m.min = s.Dashboard.BatteryPercent
	}
}

func (m *Battery) Value() float64 { return m.min }

func (m *Battery) Reset() {
	m.min = 100
}

// Standard returns the metrics reported by headless runs of cfg.
func Standard(cfg *config.Config) []sim.Metric {
	out := make([]sim.Metric, 0, len(cfg.Scenarios)+4)
	for _, sc := range cfg.Scenarios {
		out = append(out, NewTerminalFrame(sc.Name))
		if sc.Airbag {
			out = append(out, NewDeployStart(sc.Name), NewDeployDone(sc.Name))
		}
	}
	return append(out, NewAlertFrame(), NewBattery())
}
