package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"simon/internal/config"
	"simon/internal/game"
	"simon/internal/term"
	"simon/internal/tone"
)

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Resolve(flag.CommandLine, cfg)
	if err != nil {
		log.Fatal(err)
	}

	// stderr shares the terminal with the screen; redirect it to keep -verbose output.
	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	player := tone.NewPlayer(logger)
	if cfg.Sound {
		if err := player.Init(); err != nil {
			logger.Printf("[tone] audio disabled: %v", err)
		}
	}
	defer player.Close()

	ctrl := game.New(
		game.WithPicker(game.NewRandomPicker(cfg.Seed)),
		game.WithRules(cfg.Rules()),
		game.WithLogger(logger),
		game.WithObserver(player.Play),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("[term] %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("[term] %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui := term.New(screen, ctrl, cfg.BuildPalette(), cfg.TPS, logger)
	runErr := ui.Run(ctx)
	screen.Fini()
	if runErr != nil && ctx.Err() == nil {
		log.Fatalf("[term] %v", runErr)
	}
}
