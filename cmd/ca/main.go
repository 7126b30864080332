//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"go.uber.org/zap"

	"minautomata/internal/app"
	"minautomata/internal/logging"
	_ "minautomata/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
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

	session, err := app.NewSession(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("start session", zap.Error(err))
	}

	game := app.New(session)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("minautomata - " + session.Sim.Name())
	ebiten.SetTPS(cfg.Run.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run game", zap.Error(err))
	}
	logger.Info("shutdown")
}
