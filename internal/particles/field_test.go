package particles

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stillOptions returns options with all autonomous motion switched off so
// tests can position particles by hand.
func stillOptions(count int) Options {
	o := DefaultOptions()
	o.ParticleCount = count
	o.FloatSpeedMin = 0
	o.FloatSpeedMax = 0
	o.WobbleStrength = 0
	return o
}

func stillParticle(t *testing.T, f *Field) *Particle {
	t.Helper()
	p := &f.Particles()[0]
	p.VX = 0
	return p
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		ok     bool
	}{
		{"defaults", func(o *Options) {}, true},
		{"zero count", func(o *Options) { o.ParticleCount = 0 }, true},
		{"negative count", func(o *Options) { o.ParticleCount = -3 }, true},
		{"equal radius bounds", func(o *Options) { o.MinRadius = 10; o.MaxRadius = 10 }, true},
		{"inverted radius bounds", func(o *Options) { o.MinRadius = 64; o.MaxRadius = 14 }, false},
		{"negative min radius", func(o *Options) { o.MinRadius = -1 }, false},
		{"inverted float speed", func(o *Options) { o.FloatSpeedMin = 0.6; o.FloatSpeedMax = 0.1 }, false},
		{"zero period", func(o *Options) { o.BreathingPeriodMs = 0 }, false},
		{"negative connection distance", func(o *Options) { o.ConnectionDistance = -1 }, false},
		{"force above one", func(o *Options) { o.InteractiveForce = 1.2 }, false},
		{"negative wobble", func(o *Options) { o.WobbleStrength = -0.1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.mutate(&o)
			err := o.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParticleCountConstant(t *testing.T) {
	for _, count := range []int{0, -5, 1, 42, 100} {
		o := DefaultOptions()
		o.ParticleCount = count
		f, err := NewField(o, 800, 600, 1)
		require.NoError(t, err)

		want := count
		if want < 0 {
			want = 0
		}
		require.Len(t, f.Particles(), want)

		for tick := 0; tick < 500; tick++ {
			f.Advance(float64(tick)*16.7, Pointer{X: 400, Y: 300, Active: tick%2 == 0})
		}
		assert.Len(t, f.Particles(), want)
	}
}

func TestBaseRadiusWithinBounds(t *testing.T) {
	o := DefaultOptions()
	o.ParticleCount = 200
	f, err := NewField(o, 800, 600, 1)
	require.NoError(t, err)

	for _, p := range f.Particles() {
		assert.GreaterOrEqual(t, p.BaseRadius, o.MinRadius)
		assert.LessOrEqual(t, p.BaseRadius, o.MaxRadius)
	}
}

func TestBreathingRadiusBound(t *testing.T) {
	o := DefaultOptions()
	o.ParticleCount = 50
	f, err := NewField(o, 800, 600, 1)
	require.NoError(t, err)

	for tick := 0; tick < 1000; tick++ {
		f.Advance(float64(tick)*17.3, Pointer{})
		for _, p := range f.Particles() {
			assert.GreaterOrEqual(t, p.Radius, 0.82*p.BaseRadius-1e-9)
			assert.LessOrEqual(t, p.Radius, 1.18*p.BaseRadius+1e-9)
		}
	}
}

func TestBreathPeriodic(t *testing.T) {
	const period = 6400.0
	for _, tms := range []float64{0, 137, 1600, 3200, 5000, 12345} {
		assert.InDelta(t, breathFactor(tms, period), breathFactor(tms+period, period), 1e-9)
	}
}

func TestBreathStartsContracted(t *testing.T) {
	o := stillOptions(1)
	o.MinRadius = 10
	o.MaxRadius = 10
	f, err := NewField(o, 100, 100, 1)
	require.NoError(t, err)

	f.Advance(0, Pointer{})
	assert.InDelta(t, 8.2, f.Particles()[0].Radius, 1e-9)
}

func TestHorizontalWrapRight(t *testing.T) {
	f, err := NewField(stillOptions(1), 640, 480, 1)
	require.NoError(t, err)

	f.Advance(0, Pointer{})
	p := stillParticle(t, f)
	p.X = 640 + p.Radius + 1
	p.Y = 240

	f.Advance(0, Pointer{})
	assert.Equal(t, -p.Radius, p.X, "wrap must land exactly at -r, not clamp")
}

func TestHorizontalWrapLeft(t *testing.T) {
	f, err := NewField(stillOptions(1), 640, 480, 1)
	require.NoError(t, err)

	f.Advance(0, Pointer{})
	p := stillParticle(t, f)
	p.X = -p.Radius - 1
	p.Y = 240

	f.Advance(0, Pointer{})
	assert.Equal(t, 640+p.Radius, p.X)
}

func TestVerticalRecyclePreservesIdentity(t *testing.T) {
	o := stillOptions(1)
	o.FloatSpeedMin = 0.3
	o.FloatSpeedMax = 0.3
	f, err := NewField(o, 640, 480, 1)
	require.NoError(t, err)

	f.Advance(0, Pointer{})
	p := stillParticle(t, f)
	p.X = 320
	p.Y = -p.Radius - 1

	before := *p
	f.Advance(0, Pointer{})

	assert.Equal(t, before.BaseRadius, p.BaseRadius)
	assert.Equal(t, before.Hue, p.Hue)
	assert.Equal(t, before.VX, p.VX)
	assert.Equal(t, before.VY, p.VY)
	assert.Equal(t, before.WobbleSeed, p.WobbleSeed)

	assert.Equal(t, 480+2*p.Radius, p.Y)
	assert.GreaterOrEqual(t, p.X, 0.0)
	assert.LessOrEqual(t, p.X, 640.0)
}

func TestPointerPullMonotonic(t *testing.T) {
	f, err := NewField(stillOptions(2), 1000, 1000, 1)
	require.NoError(t, err)

	f.Advance(0, Pointer{})
	near := &f.Particles()[0]
	far := &f.Particles()[1]
	near.VX, far.VX = 0, 0
	near.X, near.Y = 560, 500 // 60 px from pointer
	far.X, far.Y = 640, 500   // 140 px from pointer

	ptr := Pointer{X: 500, Y: 500, Active: true}
	f.Advance(0, ptr)

	nearMoved := 560 - near.X
	farMoved := 640 - far.X
	assert.Greater(t, nearMoved, 0.0)
	assert.Greater(t, farMoved, 0.0)
	assert.Greater(t, nearMoved, farMoved)
}

func TestPointerOutOfReach(t *testing.T) {
	f, err := NewField(stillOptions(1), 1000, 1000, 1)
	require.NoError(t, err)

	f.Advance(0, Pointer{})
	p := stillParticle(t, f)
	p.X, p.Y = 900, 500 // 400 px away, reach is 180*dpr

	f.Advance(0, Pointer{X: 500, Y: 500, Active: true})
	assert.Equal(t, 900.0, p.X)
	assert.Equal(t, 500.0, p.Y)
}

func TestPointerReachScalesWithDPR(t *testing.T) {
	f, err := NewField(stillOptions(1), 1000, 1000, 2)
	require.NoError(t, err)

	f.Advance(0, Pointer{})
	p := stillParticle(t, f)
	p.X, p.Y = 800, 500 // 300 px away, inside 180*2 reach

	f.Advance(0, Pointer{X: 500, Y: 500, Active: true})
	assert.Less(t, p.X, 800.0)
}

func TestInactivePointerIgnored(t *testing.T) {
	f, err := NewField(stillOptions(1), 1000, 1000, 1)
	require.NoError(t, err)

	f.Advance(0, Pointer{})
	p := stillParticle(t, f)
	p.X, p.Y = 520, 500

	f.Advance(0, Pointer{X: 500, Y: 500, Active: false})
	assert.Equal(t, 520.0, p.X)
}

func TestResizeBetweenTicks(t *testing.T) {
	o := DefaultOptions()
	o.ParticleCount = 30
	f, err := NewField(o, 1920, 1080, 2)
	require.NoError(t, err)

	for tick := 0; tick < 100; tick++ {
		f.Advance(float64(tick)*16.7, Pointer{})
	}
	f.Resize(400, 300, 1)
	for tick := 100; tick < 2000; tick++ {
		f.Advance(float64(tick)*16.7, Pointer{})
	}
	assert.Len(t, f.Particles(), 30)
}

func TestPauseResumeRebaselines(t *testing.T) {
	f, err := NewField(stillOptions(1), 100, 100, 1)
	require.NoError(t, err)

	f.Advance(1000, Pointer{})
	phase := f.Breath(1000)

	f.Pause()
	f.Resume(90000) // long gap, e.g. window minimized

	assert.InDelta(t, phase, f.Breath(90000), 1e-9,
		"breathing phase must continue where it paused")
}

func TestAdvanceWhilePausedIsNoop(t *testing.T) {
	f, err := NewField(stillOptions(1), 100, 100, 1)
	require.NoError(t, err)

	f.Advance(0, Pointer{})
	p := stillParticle(t, f)
	p.VX = 0.5
	x := p.X

	f.Pause()
	f.Advance(5000, Pointer{})
	assert.Equal(t, x, p.X)
}

func TestResetReseedsSameCount(t *testing.T) {
	o := DefaultOptions()
	o.ParticleCount = 17
	f, err := NewField(o, 800, 600, 1)
	require.NoError(t, err)

	f.Reset()
	require.Len(t, f.Particles(), 17)
	for _, p := range f.Particles() {
		assert.True(t, p.VY <= 0, "particles drift upward")
		assert.InDelta(t, o.BaseHue, p.Hue, o.HueRange/2+1e-9)
		assert.LessOrEqual(t, math.Abs(p.VX), 0.18)
	}
}
