package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-battleship/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Load the game config the same way 'play' does and print it as YAML.
Fails if the file given with --config cannot be read or is invalid, which
makes it a quick check for hand-edited fleets.

Search order:
  --config <path>
  ~/.arcade/configs/battleship.yaml
  ./configs/battleship.yaml
  built-in defaults

Examples:
  battleship config
  battleship config --config ./my-fleet.yaml > ~/.arcade/configs/battleship.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadBattleship(flagConfig)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
