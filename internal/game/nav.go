package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"breeze/internal/config"
	"breeze/internal/i18n"
	"breeze/internal/scene"
)

// button is a hoverable nav control. Click resolution follows the
// press-then-release-inside pattern.
type button struct {
	x, y, w, h float64
	enabled    bool
	hovered    bool
	pressed    bool
}

func (b *button) contains(x, y float64) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

// handle updates hover/press state and fires action on a completed click.
// It reports whether the press landed on the button, so the caller can
// keep ripples off the nav.
func (b *button) handle(x, y float64, action func()) bool {
	b.hovered = b.enabled && b.contains(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = b.hovered
		return b.pressed
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if b.pressed && b.hovered {
			action()
		}
		b.pressed = false
	}
	return false
}

// layoutNavButtons places the two nav controls for the current viewport
// and nav slide state. Hidden nav means nothing is clickable.
func (g *Game) layoutNavButtons() {
	nv := g.page.NavVisible()
	offY := -config.NavHeight * g.dpr * (1 - nv)
	bw := config.ButtonWidth * g.dpr
	bh := config.ButtonHeight * g.dpr
	by := offY + (config.NavHeight*g.dpr-bh)/2
	pad := config.NavPadding * g.dpr

	g.langBtn = button{
		x: float64(g.w) - bw - pad, y: by, w: bw, h: bh,
		enabled: nv > 0.5,
		hovered: g.langBtn.hovered, pressed: g.langBtn.pressed,
	}
	g.soundBtn = button{
		x: float64(g.w) - 2*(bw+pad), y: by, w: bw, h: bh,
		enabled: nv > 0.5,
		hovered: g.soundBtn.hovered, pressed: g.soundBtn.pressed,
	}
}

func (g *Game) drawNav(screen *ebiten.Image) {
	nv := g.page.NavVisible()
	if nv <= 0 {
		return
	}
	offY := -config.NavHeight * g.dpr * (1 - nv)
	navH := config.NavHeight * g.dpr

	vector.DrawFilledRect(screen, 0, float32(offY), float32(g.w), float32(navH),
		color.RGBA{R: 9, G: 18, B: 30, A: uint8(210 * nv)}, false)
	vector.StrokeLine(screen, 0, float32(offY+navH), float32(g.w), float32(offY+navH),
		1, color.RGBA{R: 40, G: 70, B: 95, A: uint8(160 * nv)}, false)

	scene.DrawText(screen, g.lang.T(i18n.KeyNavTitle),
		config.NavPadding*g.dpr, offY+(navH-16*1.5*g.dpr)/2, 1.5*g.dpr, nv)

	soundKey := i18n.KeyNavSoundOff
	if g.cues.Enabled() {
		soundKey = i18n.KeyNavSoundOn
	}
	g.drawButton(screen, &g.soundBtn, g.lang.T(soundKey), nv)
	g.drawButton(screen, &g.langBtn, g.lang.T(i18n.KeyNavLang), nv)
}

func (g *Game) drawButton(screen *ebiten.Image, b *button, label string, alpha float64) {
	var bg color.RGBA
	switch {
	case b.pressed:
		bg = color.RGBA{R: 40, G: 75, B: 105, A: 255}
	case b.hovered:
		bg = color.RGBA{R: 55, G: 95, B: 130, A: 255}
	default:
		bg = color.RGBA{R: 30, G: 55, B: 80, A: 255}
	}
	bg.A = uint8(float64(bg.A) * alpha)

	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h),
		1, color.RGBA{R: 95, G: 140, B: 175, A: uint8(220 * alpha)}, false)

	tw := scene.TextWidth(label, g.dpr)
	scene.DrawText(screen, label,
		b.x+(b.w-tw)/2, b.y+(b.h-16*g.dpr)/2, g.dpr, alpha)
}
