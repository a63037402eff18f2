package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCoins loads the coin collector configuration.
// Search order: customPath -> ~/.coinboard/configs/coins.yaml -> ./configs/coins.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadCoins(customPath string) (CoinsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCoinsConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseCoins(data)
		if err != nil {
			return DefaultCoinsConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("coins.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCoins(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "coins.yaml")); err == nil {
		if cfg, err := parseCoins(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseCoins(defaultCoinsYAML)
	if err != nil {
		return DefaultCoinsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseCoins decodes YAML over the defaults and validates the result.
func parseCoins(data []byte) (CoinsConfig, error) {
	cfg := DefaultCoinsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".coinboard", "configs", filename)
}
