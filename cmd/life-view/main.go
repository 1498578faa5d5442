//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"life-rle/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Random = true
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.Default()
	sim, err := app.Prepare(cfg, os.Stdin)
	if err != nil {
		logger.Fatalf("life: %v", err)
	}

	game := app.New(sim, cfg, logger)
	size := sim.Size()

	ebiten.SetWindowTitle("life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}
