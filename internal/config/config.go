// Package config loads toolbox configuration from ~/.toolbox/config.yaml.
// A missing file is not an error; every field has a usable default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// APIKeyEnv overrides the configured CloudConvert key when set.
const APIKeyEnv = "CLOUDCONVERT_API_KEY"

// Config holds all toolbox settings.
type Config struct {
	Clock        ClockConfig        `yaml:"clock"`
	Tree         TreeConfig         `yaml:"tree"`
	Plot         PlotConfig         `yaml:"plot"`
	CloudConvert CloudConvertConfig `yaml:"cloudconvert"`
}

// ClockConfig sets the default clock face appearance.
type ClockConfig struct {
	Size  string `yaml:"size"`
	Color string `yaml:"color"`
}

// TreeConfig sets tree command defaults.
type TreeConfig struct {
	SkipHidden bool `yaml:"skip_hidden"`
}

// PlotConfig sets the chart cell dimensions.
type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CloudConvertConfig configures the word md converter.
type CloudConvertConfig struct {
	APIKey string `yaml:"api_key"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Clock: ClockConfig{Size: "large", Color: "cyan"},
		Tree:  TreeConfig{SkipHidden: false},
		Plot:  PlotConfig{Width: 60, Height: 16},
	}
}

// DefaultPath is ~/.toolbox/config.yaml, or empty when the home directory
// cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".toolbox", "config.yaml")
}

// Load reads the config at path (DefaultPath when empty), layered over
// Default. The CLOUDCONVERT_API_KEY environment variable wins over the
// file value.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults only
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if key := os.Getenv(APIKeyEnv); key != "" {
		cfg.CloudConvert.APIKey = key
	}
	return cfg, nil
}
