package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Sim     SimConfig     `toml:"sim"`
	Run     RunConfig     `toml:"run"`
	Logging LoggingConfig `toml:"logging"`
}

type SimConfig struct {
	Name   string            `toml:"name"`
	Params map[string]string `toml:"params"` // passed verbatim to the sim factory
}

type RunConfig struct {
	Ticks       int    `toml:"ticks"` // headless runs only; 0 = until interrupted
	TPS         int    `toml:"tps"`
	Scale       int    `toml:"scale"`
	Seed        int64  `toml:"seed"`
	Scene       string `toml:"scene"`    // .yaml/.yml or .lua
	Snapshot    string `toml:"snapshot"` // PNG written when a headless run ends
	ReportEvery int    `toml:"report_every"`
	Brush       int    `toml:"brush"` // paint radius in cells
	Paint       string `toml:"paint"` // brush selected at start
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty = stderr
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Sim: SimConfig{
			Name:   "sand",
			Params: map[string]string{},
		},
		Run: RunConfig{
			TPS:         60,
			Scale:       4,
			Seed:        42,
			ReportEvery: 100,
			Brush:       1,
			Paint:       "salt",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks ranges and fills a missing params map.
func (c *Config) Validate() error {
	if c.Sim.Name == "" {
		return fmt.Errorf("sim.name must not be empty")
	}
	if c.Run.Ticks < 0 {
		return fmt.Errorf("run.ticks must be >= 0, got %d", c.Run.Ticks)
	}
	if c.Run.TPS <= 0 {
		return fmt.Errorf("run.tps must be > 0, got %d", c.Run.TPS)
	}
	if c.Run.Scale <= 0 {
		return fmt.Errorf("run.scale must be > 0, got %d", c.Run.Scale)
	}
	if c.Run.Brush < 0 {
		return fmt.Errorf("run.brush must be >= 0, got %d", c.Run.Brush)
	}
	if c.Sim.Params == nil {
		c.Sim.Params = map[string]string{}
	}
	return nil
}
