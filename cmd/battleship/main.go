// battleship is a terminal Battleship game against a random-shooting opponent.
//
// Usage:
//
//	battleship list              - List available game modes
//	battleship play [mode]       - Play a mode (default: battleship)
//	battleship menu              - Start menu to pick modes interactively
//	battleship serve             - Start SSH server for remote play
//	battleship scores [mode]     - Show recorded results for a mode
//	battleship config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 30)
//	--seed <value>     - Set RNG seed for reproducible matches
//	--db <path>        - Set database path (default: ~/.arcade/battleship.db)
//	--config <path>    - Use a custom game config YAML
//	--log-file <path>  - Write match and session logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

// logger reports CLI warnings on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "battleship"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "battleship",
	Short: "Battleship - sink the enemy fleet in your terminal",
	Long: `Battleship is a terminal game: place your fleet on a 10x10 grid,
then trade shots with an opponent that fires at random until one fleet
is sunk.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View recorded results
  config   - Print the effective game config

Examples:
  battleship play
  battleship play battleship_quick --seed 42
  battleship menu
  battleship serve --ssh :2222
  battleship scores --recent`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		battleship.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/battleship.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write match logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the results log, continuing without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database, results will not be saved", "error", err)
		return nil
	}
	return store
}

// gameLogger returns the logger used while a game owns the terminal.
// Without --log-file the output is discarded so it cannot corrupt the screen.
func gameLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "battleship",
	})
	return l, func() { f.Close() }, nil
}

// playerName returns the name stored with local results.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
