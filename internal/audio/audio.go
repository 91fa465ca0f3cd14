package audio

import (
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/san-kum/aurasim/internal/config"
	"github.com/san-kum/aurasim/internal/dynamo"
)

const BufferSize = 1024

// Alarm plays the emergency tone. Play never blocks and never fails.
type Alarm interface {
	Play()
	Close()
}

// Silent is the alarm used when no audio device could be opened.
type Silent struct{}

func (Silent) Play()  {}
func (Silent) Close() {}

// Tone synthesizes a sine wave as signed 16-bit mono PCM.
func Tone(freq, duration float64, sampleRate int) []int16 {
	n := int(float64(sampleRate) * duration)
	samples := make([]int16, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		samples[i] = int16(math.Sin(2*math.Pi*freq*t) * math.MaxInt16)
	}
	return samples
}

// Player streams a pre-rendered tone to the default output device.
type Player struct {
	stream *portaudio.Stream

	mu      sync.Mutex
	samples []float32
	head    int

	Active bool
}

func newPlayer(tone []int16) *Player {
	samples := make([]float32, len(tone))
	for i, v := range tone {
		samples[i] = float32(v) / 32768
	}
	return &Player{samples: samples, head: len(samples)}
}

// Open synthesizes the alarm and starts an output-only stream.
func Open(cfg config.AlarmConfig) (*Player, error) {
	p := newPlayer(Tone(cfg.Frequency, cfg.Duration, cfg.SampleRate))

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("%w: %w", dynamo.ErrAudioUnavailable, err)
	}

	stream, err := portaudio.OpenDefaultStream(0, 1, float64(cfg.SampleRate), BufferSize, p.process)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("%w: open stream: %w", dynamo.ErrAudioUnavailable, err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("%w: start stream: %w", dynamo.ErrAudioUnavailable, err)
	}

	p.stream = stream
	p.Active = true
	return p, nil
}

// Start opens the alarm, falling back to Silent if the device is missing.
func Start(cfg config.AlarmConfig) Alarm {
	return start(cfg, Open)
}

func start(cfg config.AlarmConfig, open func(config.AlarmConfig) (*Player, error)) Alarm {
	p, err := open(cfg)
	if err != nil {
		log.Printf("audio disabled: %v", err)
		return Silent{}
	}
	log.Printf("audio started: %.0f Hz alarm, %d samples", cfg.Frequency, len(p.samples))
	return p
}

// Play restarts the tone from its first sample.
func (p *Player) Play() {
	p.mu.Lock()
	p.head = 0
	p.mu.Unlock()
}

func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.head < len(p.samples)
}

func (p *Player) Close() {
	if p.stream != nil {
		p.stream.Stop()
		p.stream.Close()
		portaudio.Terminate()
	}
	p.Active = false
}

func (p *Player) process(out []float32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range out {
		if p.head < len(p.samples) {
			out[i] = p.samples[p.head]
			p.head++
		} else {
			out[i] = 0
		}
	}
}
