package particles

import (
	"math"
	"math/rand"
	"time"
)

// Breathing scale envelope: currentRadius = base * (0.82 + breath*0.36),
// so every particle pulses between 82% and 118% of its base radius.
const (
	breathScaleBase  = 0.82
	breathScaleRange = 0.36
)

// Pointer interaction. The reach is independent of ConnectionDistance and
// scales with the device pixel ratio; pullGain converts the normalized
// pull strength into a visible per-tick displacement.
const (
	pointerReach = 180.0
	pullGain     = 14.0
)

// Horizontal drift magnitude bound, px per tick.
const maxHorizontalDrift = 0.18

// wobbleRate is the shared angular rate of the horizontal oscillation.
// Particles desynchronize through their individual phase seeds, not
// through the rate.
const wobbleRate = 0.0018

// Particle is one bubble. All fields except Radius are fixed at creation;
// Radius is re-derived from the shared breathing factor every tick.
type Particle struct {
	X, Y       float64
	BaseRadius float64
	Radius     float64
	Hue        float64
	VX, VY     float64 // VY < 0: particles drift upward
	WobbleSeed float64
}

// Pointer is the latest-known pointer sample. Intermediate samples between
// ticks are dropped; Advance only consults the value it is handed.
type Pointer struct {
	X, Y   float64
	Active bool
}

// Field owns a fixed set of particles and advances them once per display
// frame. It does no scheduling of its own: the host calls Advance then
// Render each tick.
type Field struct {
	opts Options
	w, h float64
	dpr  float64

	particles []Particle
	rng       *rand.Rand

	originMs float64
	lastMs   float64
	pausedAt float64
	paused   bool
}

// NewField creates a field of opts.ParticleCount particles scattered
// uniformly over a w x h surface. Dimensions are in device pixels; dpr is
// the device pixel ratio used to scale interaction distances.
func NewField(opts Options, w, h, dpr float64) (*Field, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if dpr <= 0 {
		dpr = 1
	}
	f := &Field{
		opts: opts,
		w:    w,
		h:    h,
		dpr:  dpr,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	f.Reset()
	return f, nil
}

// Reset discards all particles and seeds a fresh set. The particle count
// is constant between resets.
func (f *Field) Reset() {
	n := f.opts.ParticleCount
	if n < 0 {
		n = 0
	}
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = f.newParticle()
	}
}

func (f *Field) newParticle() Particle {
	o := f.opts
	base := o.MinRadius + f.rng.Float64()*(o.MaxRadius-o.MinRadius)
	return Particle{
		X:          f.rng.Float64() * f.w,
		Y:          f.rng.Float64() * f.h,
		BaseRadius: base,
		Radius:     base * breathScaleBase,
		Hue:        o.BaseHue + (f.rng.Float64()-0.5)*o.HueRange,
		VX:         (f.rng.Float64()*2 - 1) * maxHorizontalDrift,
		VY:         -(o.FloatSpeedMin + f.rng.Float64()*(o.FloatSpeedMax-o.FloatSpeedMin)),
		WobbleSeed: f.rng.Float64() * o.BreathingPeriodMs,
	}
}

// Particles exposes the live particle slice. Callers may reposition
// particles (the host never does; tests do) but must not grow or shrink
// the slice.
func (f *Field) Particles() []Particle { return f.particles }

// Size returns the current surface dimensions in device pixels.
func (f *Field) Size() (w, h float64) { return f.w, f.h }

// Resize records new surface dimensions. It may land between any two
// ticks; particles left outside the new bounds drift back in through the
// ordinary wrap and recycle paths.
func (f *Field) Resize(w, h, dpr float64) {
	f.w, f.h = w, h
	if dpr > 0 {
		f.dpr = dpr
	}
}

// Pause freezes the breathing phase at the last advanced instant.
func (f *Field) Pause() {
	if f.paused {
		return
	}
	f.paused = true
	f.pausedAt = f.lastMs
}

// Resume re-baselines the breathing origin so the phase continues from
// where Pause left it, with no discontinuous jump after a long gap.
func (f *Field) Resume(nowMs float64) {
	if !f.paused {
		return
	}
	f.paused = false
	f.originMs += nowMs - f.pausedAt
	f.lastMs = nowMs
}

// Breath reports the shared breathing factor at nowMs: a smooth [0,1]
// oscillation with period BreathingPeriodMs that starts fully contracted.
func (f *Field) Breath(nowMs float64) float64 {
	return breathFactor(nowMs-f.originMs, f.opts.BreathingPeriodMs)
}

func breathFactor(elapsedMs, periodMs float64) float64 {
	return (math.Sin(2*math.Pi*elapsedMs/periodMs-math.Pi/2) + 1) / 2
}

// Advance runs one simulation tick at nowMs, mutating every particle in
// place. It allocates nothing and never fails; a dropped frame simply
// means the next call starts from current state.
func (f *Field) Advance(nowMs float64, ptr Pointer) {
	if f.paused {
		return
	}
	f.lastMs = nowMs
	elapsed := nowMs - f.originMs
	breath := breathFactor(elapsed, f.opts.BreathingPeriodMs)
	reach := pointerReach * f.dpr

	for i := range f.particles {
		p := &f.particles[i]

		p.Radius = p.BaseRadius * (breathScaleBase + breath*breathScaleRange)

		// Drift faster while the breath expands, slower while it
		// contracts. VY is negative, so this moves particles upward.
		p.Y += p.VY * (0.6 + breath*0.8)
		p.X += p.VX + math.Sin((elapsed+p.WobbleSeed)*wobbleRate)*f.opts.WobbleStrength

		if ptr.Active {
			f.pull(p, ptr, reach)
		}

		r := p.Radius
		switch {
		case p.X-r > f.w:
			p.X = -r
		case p.X+r < 0:
			p.X = f.w + r
		}
		if p.Y+r < 0 {
			// Recycle below the bottom edge with a fresh horizontal
			// position; radius, hue, velocity and seed are untouched.
			p.Y = f.h + 2*r
			p.X = f.rng.Float64() * f.w
		}
	}
}

// pull displaces p toward the pointer. Strength falls off linearly with
// distance, so of two particles inside the reach the closer one always
// moves at least as far.
func (f *Field) pull(p *Particle, ptr Pointer, reach float64) {
	dx := ptr.X - p.X
	dy := ptr.Y - p.Y
	d := math.Hypot(dx, dy)
	if d >= reach || d < 1e-9 {
		return
	}
	s := f.opts.InteractiveForce * (1 - d/reach) * pullGain
	p.X += dx / d * s
	p.Y += dy / d * s
}
