package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/serpent/audio"
	"github.com/lixenwraith/serpent/config"
	"github.com/lixenwraith/serpent/diag"
	"github.com/lixenwraith/serpent/engine"
	"github.com/lixenwraith/serpent/input"
	"github.com/lixenwraith/serpent/render"
	"github.com/lixenwraith/serpent/score"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "serpent: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	logger, closeLog := diag.New(diag.DefaultPath())
	defer closeLog()
	logger.Info("serpent starting")

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	width, height := screen.Size()
	if err := cfg.FitsTerminal(width, height); err != nil {
		return err
	}

	player, err := audio.NewPlayer()
	if err != nil {
		// Non-fatal, the game runs silent.
		logger.Warn("audio unavailable", "error", err.Error())
	}
	defer player.Close()

	source := input.NewTerminalSource(screen)
	defer source.Close()

	game := engine.New(cfg, engine.Deps{
		Input:    source,
		Renderer: render.NewTerminal(screen),
		Scores:   score.NewFileStore(score.DefaultPath()),
		Sound:    player,
		Log:      logger,
	})
	game.Run()

	logger.Info("serpent exiting")
	return nil
}
