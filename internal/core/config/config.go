// Package config handles configuration loading and validation for citereader.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/citereader/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	TUI      TUIConfig      `yaml:"tui"`
	Tooltip  TooltipConfig  `yaml:"tooltip"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Database DatabaseConfig `yaml:"database"`
	DataDir  string         `yaml:"-"` // set by caller, not from config file
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
	Width int    `yaml:"width"` // tooltip width in cells
}

// TooltipConfig controls what the citation tooltip shows for each paper.
type TooltipConfig struct {
	ShowAbstract  bool `yaml:"show_abstract"`
	AbstractLines int  `yaml:"abstract_lines"`
}

// FeedbackConfig controls the feedback affordance.
type FeedbackConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DatabaseConfig holds SQLite connection settings.
type DatabaseConfig struct {
	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
	BusyTimeout  int `yaml:"busy_timeout"` // milliseconds
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
			Width: 72,
		},
		Tooltip: TooltipConfig{
			ShowAbstract:  true,
			AbstractLines: 3,
		},
		Feedback: FeedbackConfig{
			Enabled: true,
		},
		Database: DatabaseConfig{
			MaxOpenConns: 4,
			MaxIdleConns: 2,
			BusyTimeout:  5000,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.Width == 0 {
		c.TUI.Width = defaults.TUI.Width
	}
	if c.Tooltip.AbstractLines == 0 {
		c.Tooltip.AbstractLines = defaults.Tooltip.AbstractLines
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
}

// Palette returns the configured theme's palette.
func (c *Config) Palette() (styles.Palette, error) {
	p, ok := styles.GetPalette(c.TUI.Theme)
	if !ok {
		return styles.Palette{}, fmt.Errorf("unknown theme %q", c.TUI.Theme)
	}
	return p, nil
}
