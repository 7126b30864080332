package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"minautomata/internal/config"
	"minautomata/internal/sims/sand"
)

func TestRunHeadlessReportsAndSnapshots(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	cfg := config.Default()
	cfg.Sim.Params = map[string]string{"w": "10", "h": "8", "scatter": "0.3"}
	cfg.Run.Ticks = 5
	cfg.Run.ReportEvery = 2
	cfg.Run.Scale = 1
	cfg.Run.Snapshot = filepath.Join(t.TempDir(), "out.png")

	s, err := NewSession(context.Background(), cfg, zap.New(core))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	before := s.Sim.(*sand.World).Census()

	n, err := RunHeadless(context.Background(), s)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 5 {
		t.Fatalf("ran %d ticks, want 5", n)
	}
	if got := s.Sim.(*sand.World).Ticks(); got != 5 {
		t.Fatalf("world ticks = %d", got)
	}

	census := logs.FilterMessage("census").All()
	if len(census) != 3 {
		t.Fatalf("census entries = %d, want 3 (ticks 2, 4 and final)", len(census))
	}
	last := census[2].ContextMap()
	if last["tick"] != int64(5) {
		t.Fatalf("final census tick = %v", last["tick"])
	}
	// Concrete never moves or pops.
	if last[sand.Concrete.String()] != int64(before[sand.Concrete]) {
		t.Fatalf("concrete count changed: %v vs %d", last[sand.Concrete.String()], before[sand.Concrete])
	}

	if _, err := os.Stat(cfg.Run.Snapshot); err != nil {
		t.Fatalf("snapshot missing: %v", err)
	}
}

func TestRunHeadlessStopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Sim.Params = map[string]string{"w": "4", "h": "4"}
	s, err := NewSession(context.Background(), cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err := RunHeadless(ctx, s)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 0 {
		t.Fatalf("cancelled run executed %d ticks", n)
	}
}
