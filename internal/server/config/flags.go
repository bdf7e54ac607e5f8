package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/examhub/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   PostgreSQL DSN
//	-t string   Telegram bot token
//	-m int      init data max age, minutes (0 disables the check)
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-P string   public base URL of stored objects
//	-l string   log file path
//	-L string   log level
//	-G string   gin mode (debug, release, test)
//	-R float    per-identity requests per second
//	-H int      pending reports that hide an exam
//
// Only the flags above are taken from os.Args, see flagx.FilterArgs.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-d", "-t", "-m", "-u", "-p", "-b", "-g", "-e", "-P", "-l", "-L", "-G", "-R", "-H",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.BotToken, "t", config.BotToken, "Telegram bot token")
	maxAge := fs.Int("m", int(config.InitDataMaxAge.Minutes()), "init data max age (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.PublicBaseURL, "P", config.PublicBaseURL, "public base URL of stored objects")

	fs.StringVar(&config.LogPath, "l", config.LogPath, "log file path")
	fs.StringVar(&config.LogLevel, "L", config.LogLevel, "log level")
	fs.StringVar(&config.GinMode, "G", config.GinMode, "gin mode")
	fs.Float64Var(&config.RateLimit, "R", config.RateLimit, "requests per second per identity")
	fs.IntVar(&config.ReportHideThreshold, "H", config.ReportHideThreshold, "pending reports that hide an exam")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "m" {
			config.InitDataMaxAge = time.Duration(*maxAge) * time.Minute
		}
	})
}
