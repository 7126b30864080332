package app

import (
	"context"
	"fmt"
	"maps"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"minautomata/internal/config"
	"minautomata/internal/core"
	"minautomata/internal/scene"
	"minautomata/internal/ui"
)

// Session is a configured simulation with its logger and optional scene,
// shared by every front-end.
type Session struct {
	Config *config.Config
	Log    *zap.Logger
	Sim    core.Sim

	scene scene.Script
}

// NewSession builds the sim named in cfg, resets it with the configured seed
// and applies the configured scene.
func NewSession(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	factory, ok := core.Sims()[cfg.Sim.Name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %s)", cfg.Sim.Name, strings.Join(core.SimNames(), ", "))
	}

	params := maps.Clone(cfg.Sim.Params)
	if params == nil {
		params = map[string]string{}
	}
	s := &Session{Config: cfg, Log: log}
	if cfg.Run.Scene != "" {
		script, err := scene.Load(cfg.Run.Scene)
		if err != nil {
			return nil, err
		}
		if sc, ok := script.(*scene.Scene); ok {
			if sc.Width > 0 {
				params["w"] = strconv.Itoa(sc.Width)
			}
			if sc.Height > 0 {
				params["h"] = strconv.Itoa(sc.Height)
			}
		}
		s.scene = script
	}

	s.Sim = factory(params)
	if ls, ok := s.Sim.(core.LoggerSetter); ok {
		ls.SetLogger(log)
	}
	size := s.Sim.Size()
	log.Info("sim ready",
		zap.String("sim", s.Sim.Name()),
		zap.Int("w", size.W),
		zap.Int("h", size.H),
		zap.Int64("seed", cfg.Run.Seed),
	)
	if err := s.Reset(ctx, cfg.Run.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset reinitializes the sim and re-applies the scene.
func (s *Session) Reset(ctx context.Context, seed int64) error {
	s.Sim.Reset(seed)
	if s.scene == nil {
		return nil
	}
	canvas, ok := s.Sim.(scene.Canvas)
	if !ok {
		return fmt.Errorf("sim %q does not accept scenes", s.Sim.Name())
	}
	if err := s.scene.Apply(ctx, canvas); err != nil {
		return err
	}
	s.Log.Info("scene applied", zap.String("scene", s.Config.Run.Scene))
	return nil
}

// SelectPaint applies the configured start brush to m.
func (s *Session) SelectPaint(m *ui.Menu) {
	if m == nil || s.Config.Run.Paint == "" {
		return
	}
	if !m.SelectName(s.Config.Run.Paint) {
		s.Log.Warn("unknown paint brush", zap.String("paint", s.Config.Run.Paint))
	}
}

// Brush returns the configured paint radius clamped to the supported range.
func (s *Session) Brush() int {
	return ui.ClampRadius(s.Config.Run.Brush)
}
