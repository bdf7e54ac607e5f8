package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// envFile is loaded into the process environment when present. Variables
// already set in the environment win.
var envFile = ".env"

// parseEnv overlays config with environment variables:
//
//	ADDRESS, DATABASE_DSN, BOT_TOKEN, INIT_DATA_MAX_AGE,
//	S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT,
//	PUBLIC_BASE_URL, LOG_PATH, LOG_LEVEL, GIN_MODE, ALLOWED_ORIGINS (comma
//	separated), RATE_LIMIT, RATE_BURST, REPORT_HIDE_THRESHOLD
//
// Malformed numbers and durations panic, like bad flags do.
func parseEnv(config *Config) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	envString(&config.ListenAddr, "ADDRESS")
	envString(&config.DatabaseDSN, "DATABASE_DSN")
	envString(&config.BotToken, "BOT_TOKEN")
	envDuration(&config.InitDataMaxAge, "INIT_DATA_MAX_AGE")
	envString(&config.S3RootUser, "S3_ROOT_USER")
	envString(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	envString(&config.S3Bucket, "S3_BUCKET")
	envString(&config.S3Region, "S3_REGION")
	envString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
	envString(&config.PublicBaseURL, "PUBLIC_BASE_URL")
	envString(&config.LogPath, "LOG_PATH")
	envString(&config.LogLevel, "LOG_LEVEL")
	envString(&config.GinMode, "GIN_MODE")
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		config.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			panic(err)
		}
		config.RateLimit = f
	}
	envInt(&config.RateBurst, "RATE_BURST")
	envInt(&config.ReportHideThreshold, "REPORT_HIDE_THRESHOLD")
}

func envString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(dst *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = n
}

func envDuration(dst *time.Duration, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
