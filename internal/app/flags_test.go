package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	cfg, err := c.Resolve(fs)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Sim.Name != "sand" || cfg.Run.Scale != 4 || cfg.Run.Seed != 42 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestResolveFlagsOverrideOnlyWhenSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	data := []byte(`
[sim]
name = "sand"
[sim.params]
w = "20"

[run]
scale = 7
tps = 15
seed = 99
brush = 3

[logging]
level = "warn"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse([]string{"-config", path, "-tps", "30", "-ticks", "12"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := c.Resolve(fs)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Run.TPS != 30 || cfg.Run.Ticks != 12 {
		t.Fatalf("flags not applied: %+v", cfg.Run)
	}
	if cfg.Run.Scale != 7 || cfg.Run.Seed != 99 || cfg.Run.Brush != 3 {
		t.Fatalf("unset flags overrode file values: %+v", cfg.Run)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("log level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Sim.Params["w"] != "20" {
		t.Fatalf("params = %v", cfg.Sim.Params)
	}
}

func TestResolveRejectsInvalidFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse([]string{"-scale", "0"}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Resolve(fs); err == nil {
		t.Fatal("scale 0 should be rejected")
	}
}

func TestResolveMissingFile(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse([]string{"-config", filepath.Join(t.TempDir(), "missing.toml")}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Resolve(fs); err == nil {
		t.Fatal("missing config file should fail")
	}
}
