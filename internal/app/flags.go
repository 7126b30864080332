package app

import (
	"flag"

	"minautomata/internal/config"
)

// Config represents the command-line parameters for the application. Values
// only override the run file when the matching flag was set explicitly.
type Config struct {
	File     string
	Scene    string
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	Ticks    int
	Brush    int
	Paint    string
	Snapshot string
	LogLevel string
}

// NewConfig returns a Config populated with the run-file defaults.
func NewConfig() *Config {
	d := config.Default()
	return &Config{
		Sim:      d.Sim.Name,
		Scale:    d.Run.Scale,
		TPS:      d.Run.TPS,
		Seed:     d.Run.Seed,
		Brush:    d.Run.Brush,
		Paint:    d.Run.Paint,
		LogLevel: d.Logging.Level,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "TOML run configuration")
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene file to load after reset (.yaml or .lua)")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Ticks, "ticks", c.Ticks, "ticks to run headless (0 = until interrupted)")
	fs.IntVar(&c.Brush, "brush", c.Brush, "paint brush radius in cells")
	fs.StringVar(&c.Paint, "paint", c.Paint, "brush selected at start (kind name)")
	fs.StringVar(&c.Snapshot, "snapshot", c.Snapshot, "PNG written when a headless run ends")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// Resolve loads the run file named by -config (or the defaults) and applies
// every flag that was set on fs.
func (c *Config) Resolve(fs *flag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if c.File != "" {
		loaded, err := config.Load(c.File)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Run.Scene = c.Scene
		case "sim":
			cfg.Sim.Name = c.Sim
		case "scale":
			cfg.Run.Scale = c.Scale
		case "tps":
			cfg.Run.TPS = c.TPS
		case "seed":
			cfg.Run.Seed = c.Seed
		case "ticks":
			cfg.Run.Ticks = c.Ticks
		case "brush":
			cfg.Run.Brush = c.Brush
		case "paint":
			cfg.Run.Paint = c.Paint
		case "snapshot":
			cfg.Run.Snapshot = c.Snapshot
		case "log-level":
			cfg.Logging.Level = c.LogLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
