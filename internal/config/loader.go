package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadAsteroids loads the asteroids configuration.
// Search order: customPath -> ~/.procroids/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
//
// Every source is decoded over DefaultAsteroidsConfig, so a file only needs
// the keys it changes.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	cfg := DefaultAsteroidsConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("asteroids.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultAsteroidsConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "asteroids.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultAsteroidsConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultAsteroidsYAML, &cfg); err != nil {
		return DefaultAsteroidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".procroids", "configs", filename)
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Asteroids.Speed *= 0.7
		cfg.Asteroids.MinLive = max(cfg.Asteroids.MinLive-1, 0)
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Asteroids.Speed *= 1.3
		cfg.Projectile.CooldownMs += 100
	}
}
