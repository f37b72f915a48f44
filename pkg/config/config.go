// Package config loads the YAML settings used by the srs command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration file.
type Config struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Script ScriptConfig `yaml:"script"`
	Log    LogConfig    `yaml:"log"`
}

// CanvasConfig sizes the snapshot surface. Scale is pixels per world unit.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Scale  float64 `yaml:"scale"`

	// PNG is the snapshot path. Empty disables snapshots.
	PNG string `yaml:"png"`
}

// ScriptConfig controls scene script evaluation.
type ScriptConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// LogConfig selects the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{Width: 800, Height: 600, Scale: 10},
		Script: ScriptConfig{Timeout: 5 * time.Second},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults, so a file only needs the keys it
// changes, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %gx%g must be positive", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Canvas.Scale <= 0 {
		errs = append(errs, fmt.Errorf("canvas scale %g must be positive", c.Canvas.Scale))
	}
	if c.Script.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("script timeout %s must be positive", c.Script.Timeout))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLevel maps a level name onto slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
