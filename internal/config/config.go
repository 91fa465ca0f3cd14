package config

import (
	"fmt"
	"io"

	"github.com/san-kum/aurasim/internal/dynamo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS   = 30
	ScreenWidth  = 1200
	ScreenHeight = 700
	PanelWidth   = ScreenWidth / 4
	FigureY      = 450
	WindowTitle  = "AURA - 4-Quadrant Airbag Simulation"

	FallIncrement  = 1.3
	SitIncrement   = 1.0
	FallThreshold  = 90.0
	SitThreshold   = 45.0
	AirbagTrigger  = 30.0
	AirbagStep     = 0.1
	BatteryDrain   = 0.01 // percent per second
	BatteryLow     = 20.0
	VibrateAmp     = 3.0
	VibrateRate    = 0.5
	AlarmFrequency = 800.0
	AlarmDuration  = 0.25
	SampleRate     = 44100
)

const (
	ScenarioFall   = "fall"
	ScenarioSit    = "sit"
	ScenarioAirbag = "airbag"
)

// Config is the compiled-in animation script. It is printed by the script
// command and never loaded from disk.
type Config struct {
	FPS       int              `yaml:"fps"`
	Window    WindowConfig     `yaml:"window"`
	Scenarios []ScenarioConfig `yaml:"scenarios"`
	Airbag    AirbagConfig     `yaml:"airbag"`
	Dashboard DashboardConfig  `yaml:"dashboard"`
	Alarm     AlarmConfig      `yaml:"alarm"`
}

type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	FigureY int    `yaml:"figure_y"`
}

type ScenarioConfig struct {
	Name         string       `yaml:"name"`
	Title        string       `yaml:"title"`
	Increment    float64      `yaml:"increment"`
	Threshold    float64      `yaml:"threshold"`
	Sitting      bool         `yaml:"sitting"`
	Airbag       bool         `yaml:"airbag"`
	Alarm        bool         `yaml:"alarm"`
	IdleStatus   string       `yaml:"idle_status"`
	MovingStatus string       `yaml:"moving_status"`
	DoneStatus   string       `yaml:"done_status"`
	SummaryLabel string       `yaml:"summary_label"`
	Outcome      string       `yaml:"outcome"`
	Color        dynamo.Color `yaml:"color"`
	DoneColor    dynamo.Color `yaml:"done_color"`
}

type AirbagConfig struct {
	TriggerAngle  float64      `yaml:"trigger_angle"`
	Step          float64      `yaml:"step"`
	DeployStatus  string       `yaml:"deploy_status"`
	MaxRadius     float64      `yaml:"max_radius"`
	Color         dynamo.Color `yaml:"color"`
	TorsoOffsetPx float64      `yaml:"torso_offset_px"`
}

type DashboardConfig struct {
	Title         string        `yaml:"title"`
	BatteryDrain  float64       `yaml:"battery_drain"`
	BatteryLow    float64       `yaml:"battery_low"`
	VibrateAmp    float64       `yaml:"vibrate_amp"`
	VibrateRate   float64       `yaml:"vibrate_rate"`
	GPS           dynamo.GPSFix `yaml:"gps"`
	Contact       string        `yaml:"contact"`
	DeliveryState string        `yaml:"delivery_state"`
}

type AlarmConfig struct {
	Frequency  float64 `yaml:"frequency"`
	Duration   float64 `yaml:"duration"`
	SampleRate int     `yaml:"sample_rate"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS: DefaultFPS,
		Window: WindowConfig{
			Title:   WindowTitle,
			Width:   ScreenWidth,
			Height:  ScreenHeight,
			FigureY: FigureY,
		},
		Scenarios: defaultScenarios(),
		Airbag: AirbagConfig{
			TriggerAngle:  AirbagTrigger,
			Step:          AirbagStep,
			DeployStatus:  "AIRBAG MENGEMBANG!",
			MaxRadius:     70,
			Color:         dynamo.Color{R: 173, G: 216, B: 230, A: 180},
			TorsoOffsetPx: 40,
		},
		Dashboard: DashboardConfig{
			Title:         "SISTEM MONITOR AURA",
			BatteryDrain:  BatteryDrain,
			BatteryLow:    BatteryLow,
			VibrateAmp:    VibrateAmp,
			VibrateRate:   VibrateRate,
			GPS:           dynamo.GPSFix{Lat: -6.2088, Lon: 106.8456},
			Contact:       "+62 812-3456-7890",
			DeliveryState: "Terkirim",
		},
		Alarm: AlarmConfig{
			Frequency:  AlarmFrequency,
			Duration:   AlarmDuration,
			SampleRate: SampleRate,
		},
	}
}

// Scenario returns the scenario with the given name.
func (c *Config) Scenario(name string) (ScenarioConfig, error) {
	for _, s := range c.Scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return ScenarioConfig{}, fmt.Errorf("%w: %q (available: %v)", dynamo.ErrUnknownScenario, name, c.ScenarioNames())
}

func (c *Config) ScenarioNames() []string {
	names := make([]string, 0, len(c.Scenarios))
	for _, s := range c.Scenarios {
		names = append(names, s.Name)
	}
	return names
}

// FrameRate is the frames per second the script advances at.
func (c *Config) FrameRate() float64 {
	if c.FPS <= 0 {
		return DefaultFPS
	}
	return float64(c.FPS)
}

func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
