//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"simon/internal/app"
	"simon/internal/config"
	"simon/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Resolve(flag.CommandLine, cfg)
	if err != nil {
		log.Fatal(err)
	}

	opts := []game.Option{
		game.WithPicker(game.NewRandomPicker(cfg.Seed)),
		game.WithRules(cfg.Rules()),
	}
	if cfg.Verbose {
		opts = append(opts, game.WithLogger(log.New(os.Stderr, "", log.LstdFlags)))
	}
	ctrl := game.New(opts...)

	g := app.New(ctrl, cfg.BuildPalette(), cfg.Width, cfg.Height)

	ebiten.SetWindowTitle("Simon")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
