package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"breeze/internal/config"
	"breeze/internal/game"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	g, err := game.New(logger, cfg)
	if err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Breeze - breathe quietly")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
