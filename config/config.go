// Package config provides configuration loading for burrow using TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Start settings
type Start struct {
	URL string `toml:"url"`
}

// Downloads settings
type Downloads struct {
	Dir string `toml:"dir"`
}

// Display settings
type Display struct {
	Theme string `toml:"theme"` // "default" or "mono"
}

// Config is the main configuration struct
type Config struct {
	Start     Start     `toml:"start"`
	Downloads Downloads `toml:"downloads"`
	Display   Display   `toml:"display"`
}

// Default returns the default configuration.
func Default() *Config {
	downloads := "."
	if home, err := os.UserHomeDir(); err == nil {
		downloads = filepath.Join(home, "Downloads")
	}
	return &Config{
		Start:     Start{URL: ""},
		Downloads: Downloads{Dir: downloads},
		Display:   Display{Theme: "default"},
	}
}

// configDir returns the configuration directory path.
func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "burrow"), nil
}

// ConfigPath returns the path to the user's config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads configuration, layering user config on top of defaults.
// Returns the default config if no user config exists.
func Load() (*Config, error) {
	cfg := Default()

	configPath, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	user, err := loadFromTOML(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
	}
	cfg = merge(cfg, user)
	cfg.Downloads.Dir = expandHome(cfg.Downloads.Dir)
	return cfg, nil
}

// expandHome replaces a leading ~/ with the user home directory.
func expandHome(p string) string {
	if len(p) >= 2 && p[0] == '~' && p[1] == '/' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}

func loadFromTOML(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}
	return &cfg, nil
}

// merge layers user config on top of defaults. Only non-empty values
// from the user config override.
func merge(defaults, user *Config) *Config {
	result := *defaults

	if user.Start.URL != "" {
		result.Start.URL = user.Start.URL
	}
	if user.Downloads.Dir != "" {
		result.Downloads.Dir = user.Downloads.Dir
	}
	if user.Display.Theme != "" {
		result.Display.Theme = user.Display.Theme
	}

	return &result
}

// DefaultTOML returns the default configuration as a TOML string.
// Used for --init-config to generate a user config file.
func DefaultTOML() string {
	return `# burrow configuration
# Save to ~/.config/burrow/config.toml and customize
# Only include settings you want to change from defaults

# Where a fresh session starts. Empty means the built-in help menu.
[start]
url = ""                      # e.g. "gopher://gopher.floodgap.com"

# Where binary, archive, image and sound items are saved.
[downloads]
dir = "~/Downloads"

[display]
theme = "default"             # "default" or "mono"
`
}
