package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const battleshipFile = "battleship.yaml"

// LoadBattleship loads Battleship configuration.
// Search order: customPath -> ~/.arcade/configs/battleship.yaml -> ./configs/battleship.yaml -> embedded default
//
// A custom path that cannot be read, parsed or validated is an error. Broken
// files found by the search are skipped.
func LoadBattleship(customPath string) (BattleshipConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BattleshipConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseBattleship(data)
		if err != nil {
			return BattleshipConfig{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(battleshipFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBattleship(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", battleshipFile)); err == nil {
		if cfg, err := parseBattleship(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseBattleship(defaultBattleshipYAML)
	if err != nil {
		return DefaultBattleshipConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// parseBattleship decodes YAML on top of the defaults, so omitted sections
// keep their default values, then validates the result.
func parseBattleship(data []byte) (BattleshipConfig, error) {
	cfg := DefaultBattleshipConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BattleshipConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BattleshipConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
