package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// LoadBlockfall loads the blockfall configuration.
// Search order: customPath -> ~/.arcade/configs/blockfall.yaml -> ./configs/blockfall.yaml -> embedded default
func LoadBlockfall(customPath string) (BlockfallConfig, error) {
	// Missing keys keep their built-in values.
	cfg := DefaultBlockfallConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("blockfall.yaml"), filepath.Join("configs", "blockfall.yaml")} {
		if path == "" {
			continue
		}
		if c, ok := tryLoad(path); ok {
			return c, nil
		}
	}

	return ParseBlockfall(defaultBlockfallYAML)
}

// ParseBlockfall decodes YAML on top of the built-in defaults and validates
// the result.
func ParseBlockfall(data []byte) (BlockfallConfig, error) {
	cfg := DefaultBlockfallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultBlockfallConfig(), fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultBlockfallConfig(), err
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are
// skipped.
func tryLoad(path string) (BlockfallConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BlockfallConfig{}, false
	}
	cfg, err := ParseBlockfall(data)
	if err != nil {
		return BlockfallConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
