package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-battleship/internal/engine"
)

//go:embed defaults/battleship.yaml
var defaultBattleshipYAML []byte

// DefaultBattleshipConfig returns the default Battleship configuration.
func DefaultBattleshipConfig() BattleshipConfig {
	specs := engine.StandardFleet()
	fleet := make([]ShipConfig, len(specs))
	for i, s := range specs {
		fleet[i] = ShipConfig{Name: s.Name, Length: s.Length}
	}

	return BattleshipConfig{
		Fleet: fleet,
		Opponent: OpponentConfig{
			ThinkTicks:           15,
			MaxPlacementAttempts: 100,
		},
		Display: DisplayConfig{
			RevealOnGameOver: true,
		},
	}
}
