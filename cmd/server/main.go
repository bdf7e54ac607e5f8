package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/examhub/internal/buildinfo"
	"github.com/dmitrijs2005/examhub/internal/logging"
	"github.com/dmitrijs2005/examhub/internal/server"
	"github.com/dmitrijs2005/examhub/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewZapLogger(logging.ZapConfig{Level: cfg.LogLevel, Path: cfg.LogPath})
	defer logger.Sync()

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
