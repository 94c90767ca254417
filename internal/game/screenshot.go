package game

import (
	"errors"
	"image"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"
)

// captureScreenshot copies the finished frame and hands it to a goroutine
// so the save dialog never blocks the loop.
func (g *Game) captureScreenshot(screen *ebiten.Image) {
	w, h := g.w, g.h
	pix := make([]byte, 4*w*h)
	screen.ReadPixels(pix)
	go g.saveScreenshot(pix, w, h)
}

func (g *Game) saveScreenshot(pix []byte, w, h int) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename("breeze.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return
		}
		g.log.Warn("screenshot dialog failed", zap.Error(err))
		return
	}

	img := &image.RGBA{Pix: pix, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	f, err := os.Create(path)
	if err != nil {
		g.log.Warn("screenshot create failed", zap.Error(err))
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		g.log.Warn("screenshot encode failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}
