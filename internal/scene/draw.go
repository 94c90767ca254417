package scene

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/crazy3lf/colorconv"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"breeze/internal/breath"
	"breeze/internal/config"
	"breeze/internal/i18n"
)

// Debug-font cell metrics used for centering.
const (
	glyphW = 8.0
	glyphH = 16.0
)

// Draw renders all visible sections, the demo widget and the ripples.
// The particle field has already filled the background.
func (s *Scene) Draw(dst *ebiten.Image, cycle *breath.Cycle) {
	for i, sec := range s.sections {
		screenTop := sec.top - s.scroll
		if screenTop > s.h || screenTop+sec.height < 0 {
			continue
		}
		s.drawAccents(dst, sec, i, screenTop)
		s.drawSection(dst, sec, screenTop, cycle)
	}
	s.drawRipples(dst)
}

func (s *Scene) drawSection(dst *ebiten.Image, sec *Section, screenTop float64, cycle *breath.Cycle) {
	alpha := sec.reveal
	if alpha <= 0 {
		return
	}
	slide := (1 - sec.reveal) * config.RevealSlide * s.dpr
	cx := s.w / 2

	switch sec.kind {
	case kindHero:
		s.textCentered(dst, s.lang.T(sec.titleKey), cx, screenTop+sec.height*0.36+slide, 4*s.dpr, alpha)
		s.textCentered(dst, s.lang.T(sec.bodyKey), cx, screenTop+sec.height*0.48+slide, 1.5*s.dpr, alpha*0.85)
		s.textCentered(dst, s.lang.T(i18n.KeyHeroHint), cx, screenTop+sec.height*0.88, s.dpr, alpha*0.5)

	case kindFeatures:
		for i, f := range sec.features {
			colX := s.w * float64(1+2*i) / 6
			s.textCentered(dst, s.lang.T(f.title), colX, screenTop+sec.height*0.38+slide, 2.5*s.dpr, alpha)
			s.textCentered(dst, s.lang.T(f.body), colX, screenTop+sec.height*0.5+slide, s.dpr, alpha*0.8)
		}

	case kindDemo:
		s.textCentered(dst, s.lang.T(sec.titleKey), cx, screenTop+sec.height*0.12+slide, 2.5*s.dpr, alpha)
		s.drawBreathWidget(dst, sec, screenTop, cycle)
		s.textCentered(dst, s.lang.T(sec.bodyKey), cx, screenTop+sec.height*0.9, s.dpr, alpha*0.6)

	case kindCTA:
		s.textCentered(dst, s.lang.T(sec.titleKey), cx, screenTop+sec.height*0.3+slide, 3*s.dpr, alpha)
		s.drawCTAButton(dst, sec, screenTop, alpha)
		s.textCentered(dst, s.lang.T(i18n.KeyFooter), cx, screenTop+sec.height*0.92, s.dpr, alpha*0.4)
	}
}

func (s *Scene) drawCTAButton(dst *ebiten.Image, sec *Section, screenTop, alpha float64) {
	label := s.lang.T(sec.bodyKey)
	scale := 1.5 * s.dpr
	tw := TextWidth(label, scale)
	padX, padY := 28*s.dpr, 14*s.dpr

	bw := tw + 2*padX
	bh := glyphH*scale + 2*padY
	bx := s.w/2 - bw/2
	by := screenTop + sec.height*0.48

	vector.DrawFilledRect(dst, float32(bx), float32(by), float32(bw), float32(bh),
		hsva(sec.accentHue, 0.55, 0.45, alpha*0.55), true)
	vector.StrokeRect(dst, float32(bx), float32(by), float32(bw), float32(bh),
		2, hsva(sec.accentHue, 0.35, 0.95, alpha*0.8), true)
	s.textCentered(dst, label, s.w/2, by+padY, scale, alpha)
}

// drawAccents draws the decorative rings of a section with a slight
// parallax against both scroll and pointer.
func (s *Scene) drawAccents(dst *ebiten.Image, sec *Section, idx int, screenTop float64) {
	for i, a := range accentSpots {
		depth := config.ParallaxDepth * float64(1+i)
		ax := a.relX*s.w + (s.pointerX-s.w/2)*depth
		ay := screenTop + a.relY*sec.height + s.scroll*depth
		r := a.radius * s.dpr
		hue := sec.accentHue + float64(idx*7+i*11)
		vector.StrokeCircle(dst, float32(ax), float32(ay), float32(r),
			1, hsva(hue, 0.5, 0.9, 0.08*sec.reveal+0.02), true)
	}
}

var accentSpots = []struct {
	relX, relY, radius float64
}{
	{0.14, 0.22, 90},
	{0.86, 0.34, 140},
	{0.24, 0.78, 60},
}

// textCentered draws str horizontally centered at x. The debug font is
// ASCII; the zh deck renders with placeholder glyphs until a CJK face is
// bundled.
// TODO: bundle a CJK face and move to text/v2; the debug font only covers ASCII.
func (s *Scene) textCentered(dst *ebiten.Image, str string, x, y, scale, alpha float64) {
	DrawText(dst, str, x-TextWidth(str, scale)/2, y, scale, alpha)
}

// TextWidth estimates the drawn width of str at a scale, in px.
func TextWidth(str string, scale float64) float64 {
	return float64(utf8.RuneCountInString(str)) * glyphW * scale
}

// DrawText renders str with the debug font, scaled and alpha-faded. Also
// used by the host for the nav bar so all text shares one code path.
func DrawText(dst *ebiten.Image, str string, x, y, scale, alpha float64) {
	if str == "" || alpha <= 0 {
		return
	}
	w := utf8.RuneCountInString(str)*int(glyphW) + 2
	img := ebiten.NewImage(w, int(glyphH)+2)
	ebitenutil.DebugPrint(img, str)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(math.Min(1, alpha)))
	dst.DrawImage(img, op)
	img.Deallocate()
}

// hsva builds an alpha-premultiplied color from hue degrees (any value),
// saturation, value and alpha.
func hsva(hue, sat, val, alpha float64) color.RGBA {
	h := math.Mod(math.Mod(hue, 360)+360, 360)
	r, g, b, _ := colorconv.HSVToRGB(h, sat, val)
	alpha = math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(r) * alpha),
		G: uint8(float64(g) * alpha),
		B: uint8(float64(b) * alpha),
		A: uint8(alpha * 255),
	}
}
