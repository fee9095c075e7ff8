// Package audio plays short synthesized cues for game events.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/procroids/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// closeSpeaker releases the output device.
var closeSpeaker = speaker.Close

// note is one tone of a cue.
type note struct {
	wave     string // sine, square, triangle, saw
	freq     float64
	duration time.Duration
}

var cues = map[core.Cue][]note{
	core.CueFire: {
		{"square", 880, 40 * time.Millisecond},
	},
	core.CueExplosion: {
		{"saw", 110, 90 * time.Millisecond},
		{"saw", 80, 120 * time.Millisecond},
	},
	core.CueProcessKilled: {
		{"sine", 660, 80 * time.Millisecond},
		{"sine", 990, 120 * time.Millisecond},
	},
	core.CuePlayerHit: {
		{"triangle", 220, 150 * time.Millisecond},
		{"triangle", 165, 250 * time.Millisecond},
	},
}

// Player mixes cues onto the speaker. A Player that was never initialized
// ignores Play calls, so the game runs silently without audio hardware.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player at the given volume (0..1).
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger.WithPrefix("audio"),
	}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the sound for c.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := cueStreamer(c, p.volume)
	if err != nil {
		p.logger.Debug("no sound for cue", "cue", c, "err", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences all cues and closes the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	closeSpeaker()
	p.initialized = false
}

// cueStreamer builds the finite stream for c.
func cueStreamer(c core.Cue, volume float64) (beep.Streamer, error) {
	notes, ok := cues[c]
	if !ok {
		return nil, fmt.Errorf("audio: unknown cue %d", c)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := toneFor(n)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

func toneFor(n note) (beep.Streamer, error) {
	switch n.wave {
	case "square":
		return generators.SquareTone(sampleRate, n.freq)
	case "triangle":
		return generators.TriangleTone(sampleRate, n.freq)
	case "saw":
		return generators.SawtoothTone(sampleRate, n.freq)
	default:
		return generators.SineTone(sampleRate, n.freq)
	}
}

// withVolume scales s linearly; 0 silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
