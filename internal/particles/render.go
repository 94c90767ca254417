package particles

import (
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Background behind the bubbles, a deep blue-black.
var backdrop = color.RGBA{R: 7, G: 14, B: 24, A: 255}

const (
	maxLineAlpha  = 0.12
	ringAlpha     = 0.3
	gradientSteps = 8
)

// Render clears dst and draws the field: connection lines first, then the
// gradient-shaded bubbles on top. The line pass walks every unordered
// particle pair, which is fine for tens of particles and a known scaling
// limit beyond that.
func (f *Field) Render(dst *ebiten.Image) {
	dst.Fill(backdrop)

	f.renderLines(dst)
	for i := range f.particles {
		f.renderParticle(dst, &f.particles[i])
	}
}

func (f *Field) renderLines(dst *ebiten.Image) {
	maxDist := f.opts.ConnectionDistance * f.dpr
	if maxDist <= 0 {
		return
	}
	for i := 0; i < len(f.particles); i++ {
		for j := i + 1; j < len(f.particles); j++ {
			a, b := &f.particles[i], &f.particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d >= maxDist {
				continue
			}
			// Hues come from a narrow configured band and never wrap,
			// so the arithmetic mean is a valid blend.
			alpha := (1 - d/maxDist) * maxLineAlpha
			clr := hueColor((a.Hue+b.Hue)/2, 0.5, 0.9, alpha)
			vector.StrokeLine(dst,
				float32(a.X), float32(a.Y),
				float32(b.X), float32(b.Y),
				1, clr, true)
		}
	}
}

// renderParticle fakes a three-stop radial gradient, offset toward the
// upper-left as if lit from there, with concentric interpolated fills.
func (f *Field) renderParticle(dst *ebiten.Image, p *Particle) {
	if p.Radius <= 0 {
		return
	}
	lightX := p.X - p.Radius*0.3
	lightY := p.Y - p.Radius*0.3

	for i := gradientSteps; i >= 1; i-- {
		frac := float64(i) / gradientSteps
		cx := p.X + (lightX-p.X)*(1-frac)
		cy := p.Y + (lightY-p.Y)*(1-frac)
		vector.DrawFilledCircle(dst,
			float32(cx), float32(cy),
			float32(p.Radius*frac),
			gradientStop(p.Hue, frac), true)
	}

	vector.StrokeCircle(dst,
		float32(p.X), float32(p.Y), float32(p.Radius),
		1, hueColor(p.Hue, 0.7, 1, ringAlpha), true)
}

// gradientStop interpolates the bubble shading at a radius fraction:
// bright near-white tint at the center, mid-tone at 55%, near-transparent
// dark tint at the edge.
func gradientStop(hue, frac float64) color.RGBA {
	type stop struct{ sat, val, alpha float64 }
	center := stop{0.22, 1.00, 0.95}
	mid := stop{0.55, 0.80, 0.45}
	edge := stop{0.80, 0.22, 0.04}

	var from, to stop
	var t float64
	if frac <= 0.55 {
		from, to = center, mid
		t = frac / 0.55
	} else {
		from, to = mid, edge
		t = (frac - 0.55) / 0.45
	}
	return hueColor(hue,
		from.sat+(to.sat-from.sat)*t,
		from.val+(to.val-from.val)*t,
		from.alpha+(to.alpha-from.alpha)*t)
}

// hueColor builds an alpha-premultiplied RGBA from an HSV triple. Hue may
// be any degree value; it is normalized into [0, 360).
func hueColor(hue, sat, val, alpha float64) color.RGBA {
	h := math.Mod(math.Mod(hue, 360)+360, 360)
	r, g, b, _ := colorconv.HSVToRGB(h, sat, val)
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(r) * alpha),
		G: uint8(float64(g) * alpha),
		B: uint8(float64(b) * alpha),
		A: uint8(alpha * 255),
	}
}
