package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the specified mode (default: battleship).

Setup controls:
  Arrows/hjkl  - Move cursor
  Enter/Space  - Place selected ship (start battle once all are placed)
  R            - Rotate ship
  Tab          - Select next unplaced ship
  A            - Place remaining ships at random
  C            - Clear your board

Battle controls:
  Arrows/hjkl  - Aim
  Enter/Space  - Fire
  P            - Pause
  N            - New game (after game over)
  Esc/B        - Leave (when paused or over)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot

Examples:
  battleship play
  battleship play battleship_quick
  battleship play --seed 42
  battleship play --config ./my-fleet.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "battleship"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'battleship list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	gl, closeLog, err := gameLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{Player: playerName(), Logger: gl}
	if err := tui.Run(game, store, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
