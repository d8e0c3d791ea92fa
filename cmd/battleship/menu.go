package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, Tab for the
results board. Leaving a finished game returns you to the menu.

Examples:
  battleship menu
  battleship menu --fps 60
  battleship menu --db ./results.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	gl, closeLog, err := gameLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	player := playerName()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Warn("could not create game", "mode", menuResult.GameID, "error", err)
			continue
		}

		// A fixed --seed replays the same match; otherwise each game differs.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg, tui.Options{Player: player, Logger: gl}); err != nil {
			return err
		}
	}
}
