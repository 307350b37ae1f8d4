// Package tone plays a short sine tone for each pad, the way the classic
// handheld game does.
package tone

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"simon/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)

	// MaxTone caps how long a flash tone plays.
	MaxTone = 600 * time.Millisecond

	buzzFreq     = 42.0
	buzzDuration = 800 * time.Millisecond
	volume       = -1.0
)

// Frequencies in Hz per pad.
var Frequencies = map[game.Color]float64{
	game.Green:  415,
	game.Red:    310,
	game.Yellow: 252,
	game.Blue:   209,
}

// Streamer builds the tone for an effect. It returns nil for effects that
// make no sound.
func Streamer(e game.Effect) (beep.Streamer, error) {
	switch e := e.(type) {
	case game.Flash:
		freq, ok := Frequencies[e.Color]
		if !ok {
			return nil, fmt.Errorf("no tone for %w: %q", game.ErrUnknownColor, e.Color)
		}
		d := e.Duration
		if d <= 0 || d > MaxTone {
			d = MaxTone
		}
		return sine(freq, d)
	case game.ClearFlash:
		return sine(buzzFreq, buzzDuration)
	default:
		return nil, nil
	}
}

func sine(freq float64, d time.Duration) (beep.Streamer, error) {
	src, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine %.0fHz: %w", freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(d), src),
		Base:     2,
		Volume:   volume,
	}, nil
}

// Player sends tones to the speaker. The zero value is silent until Init
// succeeds.
type Player struct {
	mu     sync.Mutex
	ready  bool
	logger *log.Logger
}

// NewPlayer returns a player that reports problems to logger.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{logger: logger}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	p.ready = true
	return nil
}

// Play sounds the tone for e, cutting off whatever was playing. It is a
// no-op before Init.
func (p *Player) Play(e game.Effect) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	s, err := Streamer(e)
	if err != nil {
		p.logger.Printf("[tone] %v", err)
		return
	}
	if s == nil {
		return
	}
	speaker.Clear()
	speaker.Play(s)
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}
