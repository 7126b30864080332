package sand

import "strconv"

// MaxSide bounds each grid dimension.
const MaxSide = 4096

// Config controls the sand world dimensions and its Reset layout.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Floor lays a Concrete row along the bottom edge on Reset.
	Floor bool
	// Scatter is the fraction of cells filled with random loose particles on Reset.
	Scatter float64
	// Cornucopias is the number of generators dropped at random on Reset.
	Cornucopias int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  128,
		Height: 104,
		Seed:   42,
		Floor:  true,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= MaxSide {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= MaxSide {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["floor"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Floor = parsed
		}
	}
	if v, ok := cfg["scatter"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Scatter = parsed
		}
	}
	if v, ok := cfg["cornucopias"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Cornucopias = parsed
		}
	}
	return c
}
