package sim

import (
	"context"
	"fmt"
	"log"

	"github.com/san-kum/aurasim/internal/config"
	"github.com/san-kum/aurasim/internal/dashboard"
	"github.com/san-kum/aurasim/internal/dynamo"
	"github.com/san-kum/aurasim/internal/scenario"
)

// Simulation owns all animation state for one run. It is created once and
// advanced one fixed frame at a time; simulated time is frame / FPS.
type Simulation struct {
	cfg       *config.Config
	animators []*scenario.Animator
	dash      *dashboard.Aggregator
	alarm     Alarm
	frame     int
	metrics   []Metric
	observers []Observer
}

// New creates a simulation of cfg. A nil alarm plays nothing.
func New(cfg *config.Config, alarm Alarm) *Simulation {
	return &Simulation{
		cfg:       cfg,
		animators: scenario.NewSet(cfg),
		dash:      dashboard.New(cfg.Dashboard),
		alarm:     alarm,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulation) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulation) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulation) Frame() int             { return s.frame }
func (s *Simulation) Config() *config.Config { return s.cfg }

// Elapsed is the simulated time after the current frame.
func (s *Simulation) Elapsed() float64 {
	return float64(s.frame) / s.cfg.FrameRate()
}

// Step advances every animator and then the dashboard by one frame.
func (s *Simulation) Step() Snapshot {
	s.frame++

	events := make([]scenario.Event, len(s.animators))
	sources := make([]dashboard.Source, len(s.animators))
	for i, a := range s.animators {
		events[i] = a.Step()
		sources[i] = a
		if events[i].Has(scenario.EventAlarm) {
			s.playAlarm(a.Name())
		}
	}

	s.dash.Update(s.Elapsed(), sources)

	snap := s.snapshot(events)
	for _, m := range s.metrics {
		m.Observe(snap)
	}
	for _, o := range s.observers {
		o.OnFrame(snap)
	}
	return snap
}

// Snapshot returns the current frame without advancing.
func (s *Simulation) Snapshot() Snapshot {
	return s.snapshot(nil)
}

func (s *Simulation) snapshot(events []scenario.Event) Snapshot {
	snap := Snapshot{
		Frame:         s.frame,
		Elapsed:       s.Elapsed(),
		Scenarios:     make([]ScenarioSnapshot, len(s.animators)),
		Dashboard:     s.dash.State(),
		GPS:           s.dash.GPS(),
		VibrateOffset: s.dash.VibrateOffset(),
	}
	for i, a := range s.animators {
		sc := a.Config()
		snap.Scenarios[i] = ScenarioSnapshot{
			Name:    sc.Name,
			Title:   sc.Title,
			Sitting: sc.Sitting,
			Airbag:  sc.Airbag,
			State:   a.State(),
			Bag:     a.Airbag(),
		}
		if events != nil {
			snap.Scenarios[i].Event = events[i]
		}
	}
	return snap
}

func (s *Simulation) playAlarm(name string) {
	if s.alarm == nil {
		return
	}
	log.Printf("frame %d: %s reached terminal, playing alarm", s.frame, name)
	s.alarm.Play()
}

// Done reports whether every scenario has reached its terminal state.
func (s *Simulation) Done() bool {
	for _, a := range s.animators {
		if !a.Terminal() {
			return false
		}
	}
	return true
}

// Run steps the simulation headless for the given number of frames.
func (s *Simulation) Run(ctx context.Context, frames int) (*Result, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("%w, got %d", dynamo.ErrInvalidFrames, frames)
	}

	result := &Result{
		Frames:  make([]Snapshot, 0, frames),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			s.collect(result)
			return result, &dynamo.FrameError{
				Frame:   s.frame,
				Wrapped: fmt.Errorf("%w: %w", dynamo.ErrCanceled, ctx.Err()),
			}
		default:
		}

		result.Frames = append(result.Frames, s.Step())
		result.FramesTaken++
	}

	s.collect(result)
	return result, nil
}

func (s *Simulation) collect(result *Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
