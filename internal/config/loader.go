package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCapture loads Capture the Flag configuration.
// Search order: customPath -> ~/.flagrun/configs/capture.yaml -> ./configs/capture.yaml -> embedded default.
// Files only need to set the keys they override; everything else keeps
// its default value.
func LoadCapture(customPath string) (CaptureConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCaptureConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseCapture(data)
		if err != nil {
			return DefaultCaptureConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("capture.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCapture(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/capture.yaml"); err == nil {
		if cfg, err := parseCapture(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseCapture(defaultCaptureYAML)
	if err != nil {
		return DefaultCaptureConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseCapture decodes YAML over the defaults and validates the result.
func parseCapture(data []byte) (CaptureConfig, error) {
	cfg := DefaultCaptureConfig()
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
	return filepath.Join(home, ".flagrun", "configs", filename)
}
