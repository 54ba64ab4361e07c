package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadReef loads the reef game configuration.
// Search order: customPath -> ~/.lostreef/configs/reef.yaml ->
// ./configs/reef.yaml -> embedded default.
func LoadReef(customPath string) (ReefConfig, error) {
	var cfg ReefConfig

	// Custom path is authoritative: failures there are errors, not fallbacks
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("reef.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/reef.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultReefYAML, &cfg); err != nil {
		return DefaultReefConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lostreef", "configs", filename)
}

// ApplyReefPreset adjusts a loaded config for a difficulty preset.
// Normal (or unknown) leaves the config untouched.
func ApplyReefPreset(cfg *ReefConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth = 5
		cfg.PowerUp.SpawnChance = 200 // Power-ups appear more often
	case DifficultyHard:
		cfg.Player.MaxHealth = 2
		cfg.PowerUp.SpawnChance = 400
		cfg.Enemies.JellyfishSpeed++
		cfg.Enemies.CrabSpeed++
		cfg.Enemies.SharkSpeed++
	}
}
