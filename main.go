package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/alien-chase/internal/config"
	"github.com/iburimskiy/alien-chase/internal/game"
)

func main() {
	log.SetFlags(log.LstdFlags)
	log.SetPrefix("alien-chase: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Step and paint once per display refresh
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g := game.New(ctx)
	err := ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("run: %v", err)
	}
}
