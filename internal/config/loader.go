package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadColors loads the game configuration.
// Search order: customPath -> ~/.rgbguess/configs/colors.yaml -> ./configs/colors.yaml -> embedded default
// Files only need to set the keys they change; the rest come from the defaults.
func LoadColors(customPath string) (ColorsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ColorsConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseColors(data)
		if err != nil {
			return ColorsConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("colors.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseColors(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "colors.yaml")); err == nil {
		if cfg, err := parseColors(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseColors(defaultColorsYAML)
	if err != nil {
		return DefaultColorsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseColors decodes YAML over the defaults and validates the result.
func parseColors(data []byte) (ColorsConfig, error) {
	cfg := DefaultColorsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ColorsConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ColorsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rgbguess", "configs", filename)
}

// ApplyDifficultyPreset overrides the starting difficulty. An empty preset keeps the config.
func ApplyDifficultyPreset(cfg *ColorsConfig, preset string) error {
	if preset == "" {
		return nil
	}
	p, err := ParseDifficultyPreset(preset)
	if err != nil {
		return err
	}
	cfg.Board.DefaultDifficulty = p
	return nil
}
