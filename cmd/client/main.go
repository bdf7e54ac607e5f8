package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/examhub/internal/buildinfo"
	"github.com/dmitrijs2005/examhub/internal/client/cli"
	"github.com/dmitrijs2005/examhub/internal/client/config"
	"github.com/dmitrijs2005/examhub/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	var logger logging.Logger
	if cfg.LogPath != "" {
		zl := logging.NewZapLogger(logging.ZapConfig{Level: cfg.LogLevel, Path: cfg.LogPath, Quiet: true})
		defer zl.Sync()
		logger = zl
	} else {
		logger = logging.NewTextLogger(os.Stderr, cfg.LogLevel)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
