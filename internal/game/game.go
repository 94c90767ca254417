// Package game is the host: it owns the ebiten loop and wires input,
// focus and resize events into the particle field, the page scene and the
// breathing cycle, which stay host-agnostic themselves.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"breeze/internal/audio"
	"breeze/internal/breath"
	"breeze/internal/config"
	"breeze/internal/i18n"
	"breeze/internal/particles"
	"breeze/internal/prefs"
	"breeze/internal/scene"
)

// tickMs matches ebiten's default 60 ticks per second.
const tickMs = 1000.0 / 60

type Game struct {
	log *zap.Logger

	field *particles.Field
	page  *scene.Scene
	cycle *breath.Cycle
	cues  *audio.Cues
	lang  *i18n.Switcher

	userPrefs prefs.Prefs
	prefsPath string

	start  time.Time
	paused bool

	w, h int
	dpr  float64

	prevKey map[ebiten.Key]bool

	langBtn  button
	soundBtn button

	shotPending bool
}

func New(log *zap.Logger, cfg config.Config) (*Game, error) {
	field, err := particles.NewField(cfg.Particles, config.WindowWidth, config.WindowHeight, 1)
	if err != nil {
		return nil, err
	}
	cycle, err := breath.NewCycle(cfg.Breath)
	if err != nil {
		return nil, err
	}

	prefsPath, err := prefs.Path()
	if err != nil {
		log.Warn("preferences unavailable", zap.Error(err))
		prefsPath = ""
	}
	p := prefs.Load(prefsPath)

	lang := i18n.NewSwitcher(i18n.ParseLang(p.Language))
	cues := audio.NewCues(log)
	cues.SetEnabled(p.Sound)

	return &Game{
		log:       log,
		field:     field,
		page:      scene.New(lang),
		cycle:     cycle,
		cues:      cues,
		lang:      lang,
		userPrefs: p,
		prefsPath: prefsPath,
		start:     time.Now(),
		dpr:       1,
		prevKey:   map[ebiten.Key]bool{},
	}, nil
}

func (g *Game) nowMs() float64 {
	return float64(time.Since(g.start).Microseconds()) / 1000
}

func (g *Game) Update() error {
	now := g.nowMs()

	// Losing window focus freezes everything; regaining it re-baselines
	// the breathing origin so the phase continues without a jump.
	if !ebiten.IsFocused() {
		if !g.paused {
			g.paused = true
			g.field.Pause()
		}
		return nil
	}
	if g.paused {
		g.paused = false
		g.field.Resume(now)
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyL) {
		g.toggleLanguage()
	}
	if justPressed(ebiten.KeyM) {
		g.toggleSound()
	}
	if justPressed(ebiten.KeyP) {
		g.shotPending = true
	}
	if justPressed(ebiten.KeyR) {
		g.cycle.Reset()
	}
	if justPressed(ebiten.KeyPageDown) {
		g.page.NextSection()
	}
	if justPressed(ebiten.KeyPageUp) {
		g.page.PrevSection()
	}
	if justPressed(ebiten.KeyHome) {
		g.page.ScrollToSection(0)
	}
	if justPressed(ebiten.KeyEnd) {
		g.page.ScrollToSection(len(g.page.Sections()) - 1)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.page.ScrollBy(-wy * config.WheelStep * g.dpr)
	}

	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)

	g.layoutNavButtons()
	consumed := g.langBtn.handle(fx, fy, func() { g.toggleLanguage() })
	consumed = g.soundBtn.handle(fx, fy, func() { g.toggleSound() }) || consumed

	if !consumed && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.page.AddRipple(fx, fy)
	}

	g.page.Advance(tickMs, fx, fy)
	if g.cycle.Advance(tickMs) {
		g.cues.PhaseChime(g.cycle.Phase())
	}

	onScreen := mx >= 0 && my >= 0 && mx < g.w && my < g.h
	g.field.Advance(now, particles.Pointer{X: fx, Y: fy, Active: onScreen})

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.field.Render(screen)
	g.page.Draw(screen, g.cycle)
	g.drawNav(screen)

	scene.DrawText(screen, g.lang.T(i18n.KeyHelp), 12, float64(g.h)-24*g.dpr, g.dpr, 0.35)

	if g.shotPending {
		g.shotPending = false
		g.captureScreenshot(screen)
	}

	if g.paused {
		ebitenutil.DebugPrintAt(screen, "paused", 12, 12)
	}
}

// Layout runs in device pixels so the field's interaction radii scale
// with the monitor. Resizes can land between any two ticks; particles
// left outside the new bounds drift back through wrap and recycle.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	w := int(float64(outsideWidth) * s)
	h := int(float64(outsideHeight) * s)
	if w != g.w || h != g.h || s != g.dpr {
		g.w, g.h, g.dpr = w, h, s
		g.field.Resize(float64(w), float64(h), s)
		g.page.Layout(float64(w), float64(h), s)
	}
	return w, h
}

func (g *Game) toggleLanguage() {
	g.userPrefs.Language = string(g.lang.Toggle())
	g.savePrefs()
}

func (g *Game) toggleSound() {
	g.cues.SetEnabled(!g.cues.Enabled())
	g.userPrefs.Sound = g.cues.Enabled()
	g.savePrefs()
}

func (g *Game) savePrefs() {
	if g.prefsPath == "" {
		return
	}
	if err := prefs.Save(g.prefsPath, g.userPrefs); err != nil {
		g.log.Warn("saving preferences failed", zap.Error(err))
	}
}
