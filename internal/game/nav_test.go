package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"breeze/internal/config"
	"breeze/internal/i18n"
	"breeze/internal/scene"
)

func TestButtonContains(t *testing.T) {
	b := button{x: 100, y: 10, w: 96, h: 32}

	assert.True(t, b.contains(100, 10))
	assert.True(t, b.contains(196, 42))
	assert.True(t, b.contains(150, 25))
	assert.False(t, b.contains(99, 25))
	assert.False(t, b.contains(197, 25))
	assert.False(t, b.contains(150, 43))
}

func TestLayoutNavButtons(t *testing.T) {
	page := scene.New(i18n.NewSwitcher(i18n.EN))
	page.Layout(1280, 800, 1)
	g := &Game{page: page, w: 1280, h: 800, dpr: 1}

	g.layoutNavButtons()

	assert.True(t, g.langBtn.enabled, "nav starts visible")
	assert.Equal(t, float64(1280-config.ButtonWidth-config.NavPadding), g.langBtn.x)
	assert.Less(t, g.soundBtn.x, g.langBtn.x, "sound button sits left of the language button")
	assert.Equal(t, g.langBtn.y, g.soundBtn.y)

	// Buttons sit inside the nav strip.
	assert.GreaterOrEqual(t, g.langBtn.y, 0.0)
	assert.LessOrEqual(t, g.langBtn.y+g.langBtn.h, float64(config.NavHeight))
}

func TestLayoutNavButtonsScalesWithDPR(t *testing.T) {
	page := scene.New(i18n.NewSwitcher(i18n.EN))
	page.Layout(2560, 1600, 2)
	g := &Game{page: page, w: 2560, h: 1600, dpr: 2}

	g.layoutNavButtons()

	assert.Equal(t, float64(config.ButtonWidth*2), g.langBtn.w)
	assert.Equal(t, float64(2560-2*config.ButtonWidth-2*config.NavPadding), g.langBtn.x)
}
