// Package config holds the file-backed program configuration: the
// automaton parameters plus display knobs, loadable from yaml and
// overridable by flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cells/internal/sims/elementary"
	"cells/pkg/wolfram"
)

const (
	DefaultWidth      = 256
	DefaultHeight     = 256
	DefaultRule       = 110
	DefaultScale      = 3
	DefaultTPS        = 60
	DefaultSeed       = 42
	DefaultCycleDelay = 2.5
)

// Config is the full program configuration. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	Rule       int     `yaml:"rule"` // -1 draws from the rule pool
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	SeedMode   string  `yaml:"seed_mode"`
	Boundary   string  `yaml:"boundary"`
	Seed       int64   `yaml:"seed"`
	Scale      int     `yaml:"scale"`
	TPS        int     `yaml:"tps"`
	Cycle      bool    `yaml:"cycle"`
	CycleDelay float64 `yaml:"cycle_delay"` // seconds between cycles
	Pool       []int   `yaml:"pool,omitempty"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() *Config {
	return &Config{
		Rule:       DefaultRule,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		SeedMode:   string(elementary.SeedCenter),
		Boundary:   "zero",
		Seed:       DefaultSeed,
		Scale:      DefaultScale,
		TPS:        DefaultTPS,
		CycleDelay: DefaultCycleDelay,
	}
}

// Load reads a yaml config file, layered over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every parameter once, before the simulation starts.
// A nil result means the run cannot fail on bad input afterwards.
func (c *Config) Validate() error {
	if c.Rule != elementary.RandomRule && (c.Rule < 0 || c.Rule > 255) {
		return fmt.Errorf("%w (or -1 for random): got %d", wolfram.ErrInvalidRule, c.Rule)
	}
	if c.Width <= 0 {
		return fmt.Errorf("%w: got %d", wolfram.ErrInvalidWidth, c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("%w: got %d", elementary.ErrInvalidHeight, c.Height)
	}
	switch elementary.SeedMode(c.SeedMode) {
	case elementary.SeedCenter, elementary.SeedRandom, elementary.SeedSparse:
	default:
		return fmt.Errorf("%w: %q", elementary.ErrInvalidSeedMode, c.SeedMode)
	}
	switch c.Boundary {
	case "zero", "wrap":
	default:
		return fmt.Errorf("boundary must be \"zero\" or \"wrap\": got %q", c.Boundary)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive: got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive: got %d", c.TPS)
	}
	if c.CycleDelay < 0 {
		return fmt.Errorf("cycle_delay must not be negative: got %g", c.CycleDelay)
	}
	for _, r := range c.Pool {
		if r < 0 || r > 255 {
			return fmt.Errorf("pool: %w: got %d", wolfram.ErrInvalidRule, r)
		}
	}
	return nil
}

// BoardConfig maps the validated configuration onto the board's terms.
func (c *Config) BoardConfig() elementary.Config {
	boundary := wolfram.BoundaryZero
	if c.Boundary == "wrap" {
		boundary = wolfram.BoundaryWrap
	}
	return elementary.Config{
		Width:    c.Width,
		Height:   c.Height,
		Rule:     c.Rule,
		Pool:     c.Pool,
		SeedMode: elementary.SeedMode(c.SeedMode),
		Boundary: boundary,
		Seed:     c.Seed,
	}
}
