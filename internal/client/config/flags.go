package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/examhub/internal/flagx"
)

// parseFlags overlays cfg with the flags listed in the package doc. It
// panics on malformed values or an unknown storage or recorder mode.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-e", "-f", "-m", "-r", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "ExamHub API base URL")
	interval := fs.Int("i", int(cfg.HealthCheckInterval.Seconds()), "health check interval (in seconds)")
	fs.StringVar(&cfg.InitDataEnv, "e", cfg.InitDataEnv, "env variable with the Telegram init payload")
	fs.StringVar(&cfg.InitDataFile, "f", cfg.InitDataFile, "file with the Telegram init payload")
	fs.StringVar(&cfg.StorageMode, "m", cfg.StorageMode, "page storage: api or s3")
	fs.StringVar(&cfg.RecorderMode, "r", cfg.RecorderMode, "exam recorder: api or sql")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN for the sql recorder")
	fs.StringVar(&cfg.LogPath, "l", cfg.LogPath, "log file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HealthCheckInterval = time.Duration(*interval) * time.Second

	if cfg.StorageMode != StorageAPI && cfg.StorageMode != StorageS3 {
		panic(fmt.Sprintf("unknown storage mode %q", cfg.StorageMode))
	}
	if cfg.RecorderMode != RecorderAPI && cfg.RecorderMode != RecorderSQL {
		panic(fmt.Sprintf("unknown recorder mode %q", cfg.RecorderMode))
	}
}
