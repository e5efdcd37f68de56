package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

Controls:
  Space/Up/W/Enter - Flap
  Left click       - Flap, or press PLAY on the score screen
  M                - Toggle sound
  F3               - Toggle debug overlay
  Q/Esc            - Quit

Examples:
  flappy window
  flappy window --scale 1.5`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale relative to the playfield")
}

func runWindow(_ *cobra.Command, _ []string) error {
	s, err := openSession(io.Discard, true)
	if err != nil {
		return err
	}
	defer s.close()

	game, err := s.newGame(resolveSeed(), s.logger)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	opts := window.Options{
		Title:  "Flappy",
		Scale:  flagScale,
		Loop:   s.cfg.Loop,
		Logger: s.logger,
	}
	if s.player != nil {
		opts.Sound = s.player
	}

	if err := window.Run(game, opts); err != nil {
		return fmt.Errorf("failed to run window: %w", err)
	}
	return nil
}
