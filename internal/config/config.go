// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/engine"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid battleship config")

// fitSeed seeds the trial placement Validate runs so the result is repeatable.
const fitSeed = 1

// BattleshipConfig contains all configuration for the Battleship game.
type BattleshipConfig struct {
	Fleet    []ShipConfig   `yaml:"fleet"`
	Opponent OpponentConfig `yaml:"opponent"`
	Display  DisplayConfig  `yaml:"display"`
}

// ShipConfig defines one ship of the fleet both sides receive.
type ShipConfig struct {
	Name   string `yaml:"name"`
	Length int    `yaml:"length"`
}

// OpponentConfig defines opponent timing and placement parameters.
type OpponentConfig struct {
	ThinkTicks           int `yaml:"think_ticks"`            // Ticks the opponent waits before each shot
	MaxPlacementAttempts int `yaml:"max_placement_attempts"` // Random tries per ship before enumerating
}

// DisplayConfig defines presentation options.
type DisplayConfig struct {
	RevealOnGameOver bool `yaml:"reveal_on_game_over"` // Show the opponent's surviving ships after the match
}

// ShipSpecs converts the configured fleet to engine specs.
func (c BattleshipConfig) ShipSpecs() []engine.ShipSpec {
	specs := make([]engine.ShipSpec, len(c.Fleet))
	for i, s := range c.Fleet {
		specs[i] = engine.ShipSpec{Name: s.Name, Length: s.Length}
	}
	return specs
}

// Validate reports the first problem that would make the config unplayable.
func (c BattleshipConfig) Validate() error {
	if len(c.Fleet) == 0 {
		return fmt.Errorf("%w: fleet is empty", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Fleet))
	cells := 0
	for i, s := range c.Fleet {
		switch {
		case s.Name == "":
			return fmt.Errorf("%w: ship %d has no name", ErrInvalidConfig, i)
		case seen[s.Name]:
			return fmt.Errorf("%w: duplicate ship %q", ErrInvalidConfig, s.Name)
		case s.Length <= 0:
			return fmt.Errorf("%w: ship %q has length %d", ErrInvalidConfig, s.Name, s.Length)
		case s.Length > engine.Size:
			return fmt.Errorf("%w: ship %q is longer than the board", ErrInvalidConfig, s.Name)
		}
		seen[s.Name] = true
		cells += s.Length
	}
	if cells > engine.Size*engine.Size {
		return fmt.Errorf("%w: fleet needs %d cells", ErrInvalidConfig, cells)
	}

	if c.Opponent.ThinkTicks < 0 {
		return fmt.Errorf("%w: think_ticks must not be negative", ErrInvalidConfig)
	}
	if c.Opponent.MaxPlacementAttempts < 0 {
		return fmt.Errorf("%w: max_placement_attempts must not be negative", ErrInvalidConfig)
	}

	// The cell count alone does not account for the gap between ships.
	if _, _, err := engine.PlaceFleet(engine.NewRandom(fitSeed), c.ShipSpecs(), c.Opponent.MaxPlacementAttempts); err != nil {
		return fmt.Errorf("%w: fleet does not fit on the board: %w", ErrInvalidConfig, err)
	}
	return nil
}
