package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var flagRefresh int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/Enter - Flap (start the run from the home screen)
  Click          - Flap, or press PLAY on the score screen
  M              - Toggle sound
  Ctrl+S         - Save a text screenshot
  Q/Esc/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play --refresh 30
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRefresh, "refresh", 60, "Display refresh rate")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The terminal belongs to the UI, so logs go nowhere unless --log-file is set.
	s, err := openSession(io.Discard, true)
	if err != nil {
		return err
	}
	defer s.close()

	rt := core.DefaultRuntimeConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagRefresh
	rt.Seed = resolveSeed()

	game, err := s.newGame(rt.Seed, s.logger)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	opts := tui.Options{
		Runtime: rt,
		Loop:    s.cfg.Loop,
		Logger:  s.logger,
	}
	if s.player != nil {
		opts.Sound = s.player
	}

	if err := tui.Run(game, opts); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
