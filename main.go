// glass-oak is a turn-based dungeon crawler for the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"

	"glass-oak/internal/config"
	"glass-oak/internal/engine"
	"glass-oak/internal/game"
	"glass-oak/internal/logging"
	"glass-oak/internal/persist"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("stdout is not a terminal; use cmd/server to play over SSH")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, closer, err := logging.New(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := persist.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open save store: %w", err)
	}
	defer store.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	ui := game.NewUI(screen)
	defer ui.Close()
	eng := engine.New(ui, engine.Options{
		Store:   store,
		Slot:    cfg.Slot,
		DataDir: cfg.DataDir,
		Seed:    cfg.Seed,
		Log:     log,
	})
	log.WithField("store", cfg.Store).Info("starting")
	return game.Play(ctx, ui, eng)
}
