package app

import (
	"context"

	"go.uber.org/zap"

	"minautomata/internal/render"
)

type censusReporter interface {
	Ticks() uint64
	CensusFields() []zap.Field
}

// RunHeadless steps the session without a display. It runs the configured
// number of ticks, or until ctx is cancelled when that is zero, logging a
// census every ReportEvery ticks. The configured snapshot is written when
// the run ends. It returns the number of ticks executed.
func RunHeadless(ctx context.Context, s *Session) (int, error) {
	run := s.Config.Run
	log := s.Log.With(zap.String("frontend", "headless"))
	log.Info("run started", zap.Int("ticks", run.Ticks), zap.Int("report_every", run.ReportEvery))

	n := 0
	for run.Ticks == 0 || n < run.Ticks {
		if ctx.Err() != nil {
			log.Info("run interrupted", zap.Int("done", n))
			break
		}
		s.Sim.Step()
		n++
		if run.ReportEvery > 0 && n%run.ReportEvery == 0 {
			report(log, s, n)
		}
	}
	if run.ReportEvery <= 0 || n%run.ReportEvery != 0 {
		report(log, s, n)
	}

	if run.Snapshot != "" {
		if err := render.WritePNG(run.Snapshot, s.Sim, run.Scale); err != nil {
			return n, err
		}
		log.Info("snapshot written", zap.String("path", run.Snapshot))
	}
	return n, nil
}

func report(log *zap.Logger, s *Session, n int) {
	fields := []zap.Field{zap.Int("tick", n)}
	if c, ok := s.Sim.(censusReporter); ok {
		fields = append(fields, c.CensusFields()...)
	}
	log.Info("census", fields...)
}
