// Package audio plays the optional phase-change chimes of the breathing
// demo. Tones are synthesized; there are no media files.
package audio

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"

	"breeze/internal/breath"
)

const (
	sampleRate    = beep.SampleRate(44100)
	chimeDuration = 600 * time.Millisecond
	chimeVolume   = -2.5 // quiet; Base 2 halves loudness per -1
)

// Cues owns the speaker lifecycle. The speaker is initialized lazily on
// the first enable so a muted session never touches the audio device.
type Cues struct {
	log     *zap.Logger
	enabled bool
	ready   bool
	failed  bool
}

func NewCues(log *zap.Logger) *Cues {
	return &Cues{log: log}
}

func (c *Cues) Enabled() bool { return c.enabled }

// SetEnabled turns chimes on or off. A speaker that failed to initialize
// once stays off; sound is a nicety, never a reason to crash or retry.
func (c *Cues) SetEnabled(on bool) {
	if on && !c.ready && !c.failed {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
			c.log.Warn("speaker init failed, chimes stay off", zap.Error(err))
			c.failed = true
		} else {
			c.ready = true
		}
	}
	c.enabled = on && c.ready
}

// PhaseChime plays a short tone for the phase that just began. One-shot:
// the streamer drains and is dropped by the speaker when done.
func (c *Cues) PhaseChime(p breath.Phase) {
	if !c.enabled {
		return
	}
	tone, err := generators.SinTone(sampleRate, chimeFreq(p))
	if err != nil {
		c.log.Warn("tone synthesis failed", zap.Error(err))
		return
	}
	n := sampleRate.N(chimeDuration)
	speaker.Play(&effects.Volume{
		Streamer: &envelope{src: beep.Take(n, tone), total: n, attack: n / 8},
		Base:     2,
		Volume:   chimeVolume,
	})
}

// chimeFreq picks a pitch per phase: rising into the inhale, falling into
// the exhale.
func chimeFreq(p breath.Phase) int {
	switch p {
	case breath.PhaseInhale:
		return 523 // C5
	case breath.PhaseHold:
		return 587 // D5
	case breath.PhaseExhale:
		return 392 // G4
	default:
		return 330 // E4
	}
}

// envelope shapes a finite tone with a linear attack and a linear decay
// so the chime neither clicks in nor cuts off.
type envelope struct {
	src           beep.Streamer
	pos           int
	total, attack int
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.src.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

func (e *envelope) gain(pos int) float64 {
	if e.total <= 0 {
		return 0
	}
	if e.attack > 0 && pos < e.attack {
		return float64(pos) / float64(e.attack)
	}
	decay := e.total - e.attack
	if decay <= 0 {
		return 1
	}
	g := 1 - float64(pos-e.attack)/float64(decay)
	if g < 0 {
		g = 0
	}
	return g
}
