package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"minautomata/internal/app"
	"minautomata/internal/logging"
	_ "minautomata/internal/sims/sand"
)

func main() {
	flags := app.NewConfig()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := app.NewSession(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("start session", zap.Error(err))
	}
	n, err := app.RunHeadless(ctx, session)
	if err != nil {
		logger.Fatal("run", zap.Error(err))
	}
	logger.Info("shutdown", zap.Int("ticks", n))
}
