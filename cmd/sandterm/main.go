package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"minautomata/internal/app"
	"minautomata/internal/logging"
	_ "minautomata/internal/sims/sand"
	"minautomata/internal/tui"
)

func main() {
	flags := app.NewConfig()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	// The screen owns the terminal; without a log file only errors get through.
	if cfg.Logging.File == "" {
		cfg.Logging.Level = "error"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("create screen", zap.Error(err))
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("init screen", zap.Error(err))
	}

	runErr := tui.New(screen, session).Run(ctx)
	screen.Fini()
	if runErr != nil {
		logger.Fatal("run", zap.Error(runErr))
	}
}
