package scene

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"breeze/internal/breath"
	"breeze/internal/config"
	"breeze/internal/i18n"
)

// arcSegments is the resolution of the phase-progress arc.
const arcSegments = 48

// drawBreathWidget renders the demo circle that inflates with the inhale
// and deflates with the exhale, a progress arc around it, and the current
// phase label.
func (s *Scene) drawBreathWidget(dst *ebiten.Image, sec *Section, screenTop float64, cycle *breath.Cycle) {
	alpha := sec.reveal
	cx := s.w / 2
	cy := screenTop + sec.height*0.52
	radius := (config.WidgetMinRadius +
		(config.WidgetMaxRadius-config.WidgetMinRadius)*cycle.Scale()) * s.dpr

	// Soft body: a few concentric fills instead of a gradient.
	for _, layer := range []struct{ frac, a float64 }{
		{1.0, 0.10}, {0.72, 0.14}, {0.42, 0.2},
	} {
		vector.DrawFilledCircle(dst, float32(cx), float32(cy),
			float32(radius*layer.frac), hsva(sec.accentHue, 0.5, 0.95, layer.a*alpha), true)
	}
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(radius),
		2, hsva(sec.accentHue, 0.4, 1, 0.5*alpha), true)

	s.drawProgressArc(dst, cx, cy, radius+16*s.dpr, cycle.Progress(), sec.accentHue, alpha)

	s.textCentered(dst, s.lang.T(phaseKey(cycle.Phase())), cx, cy-glyphH*s.dpr, 2*s.dpr, alpha)
}

// drawProgressArc strokes the elapsed fraction of the current phase as
// ring segments, starting at twelve o'clock.
func (s *Scene) drawProgressArc(dst *ebiten.Image, cx, cy, r, progress, hue, alpha float64) {
	lit := int(progress * arcSegments)
	for j := 0; j < lit; j++ {
		a0 := -math.Pi/2 + float64(j)*(2*math.Pi/arcSegments)
		a1 := -math.Pi/2 + float64(j+1)*(2*math.Pi/arcSegments)
		vector.StrokeLine(dst,
			float32(cx+math.Cos(a0)*r), float32(cy+math.Sin(a0)*r),
			float32(cx+math.Cos(a1)*r), float32(cy+math.Sin(a1)*r),
			2, hsva(hue, 0.35, 1, 0.45*alpha), true)
	}
}

func phaseKey(p breath.Phase) i18n.Key {
	switch p {
	case breath.PhaseInhale:
		return i18n.KeyPhaseInhale
	case breath.PhaseHold:
		return i18n.KeyPhaseHold
	case breath.PhaseExhale:
		return i18n.KeyPhaseExhale
	default:
		return i18n.KeyPhaseRest
	}
}
