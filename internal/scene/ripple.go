package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"breeze/internal/config"
)

// ripple is one click echo: an expanding, fading ring pair.
type ripple struct {
	x, y   float64
	ageMs  float64
	active bool
}

func (s *Scene) drawRipples(dst *ebiten.Image) {
	for i := range s.ripples {
		r := &s.ripples[i]
		if !r.active {
			continue
		}
		t := r.ageMs / config.RippleLifeMs
		radius := config.RippleMaxRadius * s.dpr * easeOutCubic(t)
		alpha := (1 - t) * 0.35

		vector.StrokeCircle(dst, float32(r.x), float32(r.y), float32(radius),
			2, hsva(190, 0.4, 1, alpha), true)
		if t > 0.15 {
			vector.StrokeCircle(dst, float32(r.x), float32(r.y), float32(radius*0.62),
				1, hsva(190, 0.4, 1, alpha*0.6), true)
		}
	}
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
