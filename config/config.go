// Package config reads the optional YAML runtime configuration.
//
// Config covers where the game lives on disk and how loudly it logs.
// Player-facing settings (volumes, text speed, autosave) are game state
// and travel in the system save file, not here.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime configuration.
type Config struct {
	ContentDir string `yaml:"content_dir"`
	SaveDir    string `yaml:"save_dir"`
	LogLevel   string `yaml:"log_level"`
}

func (c *Config) defaults() {
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.SaveDir == "" {
		c.SaveDir = "save"
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.defaults()
	return c
}

// Load reads a YAML config file. Fields left out of the file keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.defaults()
	return c, nil
}

// SlogLevel maps the configured log level onto slog's scale. Unknown
// values fall back to warn.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
