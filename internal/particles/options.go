package particles

import "fmt"

// Options configures a Field. Zero values are not meaningful; start from
// DefaultOptions and override.
type Options struct {
	// ParticleCount is the fixed number of bubbles. A count <= 0 is legal
	// and produces an empty, inert field.
	ParticleCount int `yaml:"particle_count"`

	// BaseHue and HueRange pick per-particle hues from
	// [BaseHue-HueRange/2, BaseHue+HueRange/2] degrees.
	BaseHue  float64 `yaml:"base_hue"`
	HueRange float64 `yaml:"hue_range"`

	// MinRadius and MaxRadius bound the per-particle base radius, in px.
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`

	// FloatSpeedMin and FloatSpeedMax bound the upward drift, px per tick.
	FloatSpeedMin float64 `yaml:"float_speed_min"`
	FloatSpeedMax float64 `yaml:"float_speed_max"`

	// WobbleStrength is the amplitude of the horizontal oscillation, px.
	WobbleStrength float64 `yaml:"wobble_strength"`

	// BreathingPeriodMs is the period of the shared radius oscillator.
	BreathingPeriodMs float64 `yaml:"breathing_period_ms"`

	// ConnectionDistance is the max center distance, in px before device
	// scaling, at which two particles are joined by a line.
	ConnectionDistance float64 `yaml:"connection_distance"`

	// InteractiveForce scales the pull toward an active pointer, 0..1.
	InteractiveForce float64 `yaml:"interactive_force"`
}

func DefaultOptions() Options {
	return Options{
		ParticleCount:      42,
		BaseHue:            190,
		HueRange:           40,
		MinRadius:          14,
		MaxRadius:          64,
		FloatSpeedMin:      0.12,
		FloatSpeedMax:      0.55,
		WobbleStrength:     0.55,
		BreathingPeriodMs:  6400,
		ConnectionDistance: 148,
		InteractiveForce:   0.12,
	}
}

// Validate rejects configurations that would render degenerately. It is
// the only defensive gate; per-tick code assumes validated options.
func (o Options) Validate() error {
	if o.MinRadius < 0 {
		return fmt.Errorf("particles: min_radius %v is negative", o.MinRadius)
	}
	if o.MinRadius > o.MaxRadius {
		return fmt.Errorf("particles: min_radius %v exceeds max_radius %v", o.MinRadius, o.MaxRadius)
	}
	if o.FloatSpeedMin < 0 || o.FloatSpeedMin > o.FloatSpeedMax {
		return fmt.Errorf("particles: float speed range [%v, %v] is invalid", o.FloatSpeedMin, o.FloatSpeedMax)
	}
	if o.BreathingPeriodMs <= 0 {
		return fmt.Errorf("particles: breathing_period_ms %v must be positive", o.BreathingPeriodMs)
	}
	if o.ConnectionDistance < 0 {
		return fmt.Errorf("particles: connection_distance %v is negative", o.ConnectionDistance)
	}
	if o.InteractiveForce < 0 || o.InteractiveForce > 1 {
		return fmt.Errorf("particles: interactive_force %v outside [0, 1]", o.InteractiveForce)
	}
	if o.WobbleStrength < 0 {
		return fmt.Errorf("particles: wobble_strength %v is negative", o.WobbleStrength)
	}
	return nil
}
