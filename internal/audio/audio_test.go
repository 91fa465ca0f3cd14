package audio

import (
	"fmt"
	"math"
	"testing"

	"github.com/san-kum/aurasim/internal/config"
	"github.com/san-kum/aurasim/internal/dynamo"
)

func TestToneLength(t *testing.T) {
	tone := Tone(800, 0.25, 44100)
	if len(tone) != 11025 {
		t.Errorf("expected 11025 samples, got %d", len(tone))
	}
	if tone[0] != 0 {
		t.Errorf("expected tone to start at zero, got %d", tone[0])
	}
}

func TestAnalyzeAlarm(t *testing.T) {
	cfg := config.DefaultConfig().Alarm
	stats := Analyze(Tone(cfg.Frequency, cfg.Duration, cfg.SampleRate), cfg.SampleRate)

	if math.Abs(stats.Dominant-800) > stats.BinWidthHz {
		t.Errorf("expected dominant ~800 Hz, got %f (bin %f)", stats.Dominant, stats.BinWidthHz)
	}
	if stats.Peak < 32000 {
		t.Errorf("expected near full-scale peak, got %d", stats.Peak)
	}
	if math.Abs(stats.RMS-1/math.Sqrt2) > 0.01 {
		t.Errorf("expected sine rms ~0.707, got %f", stats.RMS)
	}
	if math.Abs(stats.Duration-0.25) > 1e-9 {
		t.Errorf("expected 0.25s, got %f", stats.Duration)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	stats := Analyze(nil, 44100)
	if stats.Samples != 0 || stats.Dominant != 0 {
		t.Errorf("unexpected stats for empty input: %+v", stats)
	}
}

func TestPlayerProcess(t *testing.T) {
	p := newPlayer([]int16{16384, -16384, 8192})

	out := make([]float32, 4)
	p.process(out)
	for _, v := range out {
		if v != 0 {
			t.Fatalf("idle player produced sound: %v", out)
		}
	}

	p.Play()
	if !p.Playing() {
		t.Fatal("expected player to be playing after Play")
	}

	p.process(out)
	want := []float32{0.5, -0.5, 0.25, 0}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("sample %d: expected %f, got %f", i, want[i], out[i])
		}
	}
	if p.Playing() {
		t.Error("expected playback to end after the last sample")
	}
}

func TestPlayRestarts(t *testing.T) {
	p := newPlayer([]int16{100, 200})
	p.Play()
	p.process(make([]float32, 1))
	p.Play()

	out := make([]float32, 1)
	p.process(out)
	if out[0] != float32(100)/32768 {
		t.Errorf("expected playback from the first sample, got %f", out[0])
	}
}

func TestSilent(t *testing.T) {
	var a Alarm = Silent{}
	a.Play()
	a.Close()
}

func TestStartFallsBackToSilent(t *testing.T) {
	cfg := config.DefaultConfig().Alarm
	noDevice := func(config.AlarmConfig) (*Player, error) {
		return nil, fmt.Errorf("%w: no default output device", dynamo.ErrAudioUnavailable)
	}

	a := start(cfg, noDevice)
	if _, ok := a.(Silent); !ok {
		t.Fatalf("expected Silent alarm, got %T", a)
	}
	a.Play()
	a.Close()
}

func TestStartUsesOpenedPlayer(t *testing.T) {
	cfg := config.DefaultConfig().Alarm
	want := newPlayer(Tone(cfg.Frequency, cfg.Duration, cfg.SampleRate))
	open := func(got config.AlarmConfig) (*Player, error) {
		if got != cfg {
			t.Errorf("opener got %+v, want %+v", got, cfg)
		}
		return want, nil
	}

	a := start(cfg, open)
	if a != Alarm(want) {
		t.Fatalf("expected the opened player, got %T", a)
	}
	a.Close()
}
