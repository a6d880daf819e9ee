// Package config loads the ruler configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultHalfWidth     = 40.0
	defaultControlRadius = 20.0
	defaultMinLength     = 200.0
	defaultInitialLength = 400.0
	defaultOpacity       = 0.6
	defaultBackground    = 1.0
	defaultAccent        = 0.7
)

// Config holds the runtime configuration of the ruler.
type Config struct {
	HalfWidth     float64 `yaml:"halfWidth"`     // half the ruler body width
	ControlRadius float64 `yaml:"controlRadius"` // endpoint grab handle radius
	MinLength     float64 `yaml:"minLength"`     // shortest permitted segment
	InitialLength float64 `yaml:"initialLength"` // segment length at startup
	Opacity       float64 `yaml:"opacity"`       // overlay alpha, 0..1
	Background    float64 `yaml:"background"`    // body gray level, 0..1
	Accent        float64 `yaml:"accent"`        // stroke/text gray level, 0..1
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HalfWidth:     defaultHalfWidth,
		ControlRadius: defaultControlRadius,
		MinLength:     defaultMinLength,
		InitialLength: defaultInitialLength,
		Opacity:       defaultOpacity,
		Background:    defaultBackground,
		Accent:        defaultAccent,
	}
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "goruler.yaml"
	}
	return filepath.Join(dir, "goruler", "config.yaml")
}

// Load reads the configuration from path. A missing file is not an
// error: the defaults are returned unchanged. Values present in the
// file override the defaults; the rest keep them.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize pulls out-of-range values back to usable ones.
func (c *Config) normalize() {
	if c.HalfWidth <= 0 {
		c.HalfWidth = defaultHalfWidth
	}
	if c.ControlRadius <= 0 {
		c.ControlRadius = defaultControlRadius
	}
	if c.MinLength <= 0 {
		c.MinLength = defaultMinLength
	}
	if c.InitialLength < c.MinLength {
		c.InitialLength = c.MinLength
	}
	c.Opacity = clamp01(c.Opacity)
	c.Background = clamp01(c.Background)
	c.Accent = clamp01(c.Accent)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
