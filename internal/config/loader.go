package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the board configuration.
// Search order: customPath -> ~/.gemswap/configs/gemswap.yaml -> ./configs/gemswap.yaml -> embedded default
// Fields missing from a file keep their default values.
func Load(customPath string) (GemSwapConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GemSwapConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GemSwapConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("gemswap.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/gemswap.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGemSwapYAML)
	if err != nil {
		return DefaultGemSwapConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadVariant loads the configuration and applies a variant preset.
func LoadVariant(customPath string, v Variant) (GemSwapConfig, error) {
	cfg, err := Load(customPath)
	if err != nil {
		return cfg, err
	}
	ApplyVariant(&cfg, v)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("variant %s: %w", v, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (GemSwapConfig, error) {
	cfg := DefaultGemSwapConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg GemSwapConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gemswap", "configs", filename)
}
