package scenario

import (
	"github.com/san-kum/aurasim/internal/config"
	"github.com/san-kum/aurasim/internal/dynamo"
)

// Animator advances one scripted scenario by a fixed angle per frame until
// it reaches the scenario threshold.
type Animator struct {
	cfg    config.ScenarioConfig
	bagCfg config.AirbagConfig
	state  dynamo.AnimatorState
	bag    dynamo.AirbagState
}

func NewAnimator(sc config.ScenarioConfig, bag config.AirbagConfig) *Animator {
	return &Animator{
		cfg:    sc,
		bagCfg: bag,
		state: dynamo.AnimatorState{
			Active: true,
			Status: sc.IdleStatus,
			Phase:  dynamo.PhaseStanding,
			Color:  sc.Color,
		},
	}
}

// NewSet builds the animators of cfg in display order.
func NewSet(cfg *config.Config) []*Animator {
	set := make([]*Animator, 0, len(cfg.Scenarios))
	for _, sc := range cfg.Scenarios {
		set = append(set, NewAnimator(sc, cfg.Airbag))
	}
	return set
}

func (a *Animator) Name() string                  { return a.cfg.Name }
func (a *Animator) Config() config.ScenarioConfig { return a.cfg }
func (a *Animator) State() dynamo.AnimatorState   { return a.state }
func (a *Animator) Airbag() dynamo.AirbagState    { return a.bag }
func (a *Animator) Terminal() bool                { return a.state.Terminal }

// Step advances the animator by one frame. Once terminal it is a no-op.
func (a *Animator) Step() Event {
	if !a.state.Active {
		return 0
	}

	a.state.Angle += a.cfg.Increment
	a.state.Phase = dynamo.PhaseMoving
	a.state.Status = a.cfg.MovingStatus

	ev := a.deploy()

	if a.state.Angle >= a.cfg.Threshold {
		a.state.Angle = a.cfg.Threshold
		a.state.Active = false
		a.state.Terminal = true
		a.state.Phase = dynamo.PhaseDone
		a.state.Status = a.cfg.DoneStatus
		a.state.Color = a.cfg.DoneColor
		ev |= EventTerminal
		if a.cfg.Alarm {
			ev |= EventAlarm
		}
	}
	return ev
}

// SummaryValue is the dashboard summary text for this scenario.
func (a *Animator) SummaryValue() string {
	if a.state.Terminal {
		return a.cfg.Outcome
	}
	return "OK"
}

// RaisesAlarm reports whether reaching terminal triggers the emergency alert.
func (a *Animator) RaisesAlarm() bool { return a.cfg.Alarm }

func (a *Animator) Summary() dynamo.SummaryLine {
	return dynamo.SummaryLine{
		Label: a.cfg.SummaryLabel,
		Value: a.SummaryValue(),
		Color: a.state.Color,
	}
}
