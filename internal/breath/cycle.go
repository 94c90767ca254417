// Package breath implements the guided-breathing cycle behind the demo
// widget: a fixed phase sequence advanced by frame time, with no host or
// rendering dependencies.
package breath

import (
	"fmt"
	"math"
)

type Phase int

const (
	PhaseInhale Phase = iota
	PhaseHold
	PhaseExhale
	PhaseRest
	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseInhale:
		return "inhale"
	case PhaseHold:
		return "hold"
	case PhaseExhale:
		return "exhale"
	case PhaseRest:
		return "rest"
	}
	return "unknown"
}

// Timings holds per-phase durations in milliseconds. Hold and rest may be
// zero, in which case the phase is skipped entirely.
type Timings struct {
	InhaleMs float64 `yaml:"inhale_ms"`
	HoldMs   float64 `yaml:"hold_ms"`
	ExhaleMs float64 `yaml:"exhale_ms"`
	RestMs   float64 `yaml:"rest_ms"`
}

// DefaultTimings is the 4-2-6-1 pattern the app ships with.
func DefaultTimings() Timings {
	return Timings{
		InhaleMs: 4000,
		HoldMs:   2000,
		ExhaleMs: 6000,
		RestMs:   1000,
	}
}

func (t Timings) Validate() error {
	if t.InhaleMs <= 0 || t.ExhaleMs <= 0 {
		return fmt.Errorf("breath: inhale (%v) and exhale (%v) durations must be positive", t.InhaleMs, t.ExhaleMs)
	}
	if t.HoldMs < 0 || t.RestMs < 0 {
		return fmt.Errorf("breath: hold (%v) and rest (%v) durations must not be negative", t.HoldMs, t.RestMs)
	}
	return nil
}

func (t Timings) duration(p Phase) float64 {
	switch p {
	case PhaseInhale:
		return t.InhaleMs
	case PhaseHold:
		return t.HoldMs
	case PhaseExhale:
		return t.ExhaleMs
	case PhaseRest:
		return t.RestMs
	}
	return 0
}

// Cycle steps through inhale, hold, exhale, rest and wraps around. Pausing
// is the host's concern: a paused widget simply stops calling Advance.
type Cycle struct {
	timings Timings
	phase   Phase
	elapsed float64
}

func NewCycle(t Timings) (*Cycle, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Cycle{timings: t}, nil
}

func (c *Cycle) Phase() Phase { return c.phase }

// Progress reports how far through the current phase the cycle is, 0..1.
func (c *Cycle) Progress() float64 {
	d := c.timings.duration(c.phase)
	if d <= 0 {
		return 1
	}
	p := c.elapsed / d
	if p > 1 {
		p = 1
	}
	return p
}

// Advance moves the cycle forward by dtMs and reports whether a phase
// boundary was crossed. A large dt (a hitched frame) may cross several
// boundaries; the final phase wins.
func (c *Cycle) Advance(dtMs float64) (changed bool) {
	if dtMs <= 0 {
		return false
	}
	c.elapsed += dtMs
	// Zero-length phases (duration 0) pass through immediately.
	for c.elapsed >= c.timings.duration(c.phase) {
		c.elapsed -= c.timings.duration(c.phase)
		c.phase = (c.phase + 1) % phaseCount
		changed = true
	}
	return changed
}

// Reset returns to the start of the inhale phase.
func (c *Cycle) Reset() {
	c.phase = PhaseInhale
	c.elapsed = 0
}

// Scale maps the cycle onto the widget circle's size: 0 fully deflated, 1
// fully inflated, with smoothstep easing so the boundaries have no kinks.
func (c *Cycle) Scale() float64 {
	switch c.phase {
	case PhaseInhale:
		return smoothstep(c.Progress())
	case PhaseHold:
		return 1
	case PhaseExhale:
		return smoothstep(1 - c.Progress())
	default:
		return 0
	}
}

func smoothstep(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return t * t * (3 - 2*t)
}
