// Package audio plays short synthesized cues for game events.
//
// The speaker backend needs cgo and the system sound library. Build with
// -tags nosound for headless binaries; Init then reports ErrNoSound.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// ErrNoSound is returned by Init in binaries built with the nosound tag.
var ErrNoSound = errors.New("built without sound support")

// Cue identifies a sound effect.
type Cue int

const (
	CueEat Cue = iota + 1
	CueReset
)

type cueShape struct {
	from, to  float64 // Hz
	duration  time.Duration
	amplitude float64
}

var cues = map[Cue]cueShape{
	CueEat:   {from: 660, to: 990, duration: 80 * time.Millisecond, amplitude: 0.2},
	CueReset: {from: 240, to: 90, duration: 300 * time.Millisecond, amplitude: 0.25},
}

// Player mixes cues into the system speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player. Nothing is played until Init succeeds.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := openSpeaker(p.mixer); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	p.initialized = true
	return nil
}

// Close silences the mixer and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	withSpeakerLock(p.mixer.Clear)
	closeSpeaker()
	p.initialized = false
}

// Play queues a cue. It is a no-op before Init.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := cueStreamer(c)
	if s == nil {
		return
	}
	withSpeakerLock(func() { p.mixer.Add(s) })
	p.logger.Debug("audio cue", "cue", c)
}

// HandleStep plays the cues for a frame's events.
func (p *Player) HandleStep(r core.StepResult) {
	if r.Has(core.EventReset) {
		p.Play(CueReset)
		return
	}
	if r.Has(core.EventAte) {
		p.Play(CueEat)
	}
}

func cueStreamer(c Cue) beep.Streamer {
	shape, ok := cues[c]
	if !ok {
		return nil
	}
	n := sampleRate.N(shape.duration)
	return beep.Take(n, &sweep{
		sr:        sampleRate,
		from:      shape.from,
		to:        shape.to,
		total:     n,
		amplitude: shape.amplitude,
	})
}

// sweep is a sine tone gliding from one frequency to another with a
// linear fade-out over total samples.
type sweep struct {
	sr        beep.SampleRate
	from, to  float64
	total     int
	amplitude float64
	pos       int
	phase     float64
}

func (g *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.total)
		if progress > 1 {
			progress = 1
		}
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		v := g.amplitude * (1 - progress) * math.Sin(g.phase)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *sweep) Err() error {
	return nil
}
