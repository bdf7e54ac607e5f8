package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/examhub/internal/flagx"
	"github.com/dmitrijs2005/examhub/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// strings such as "15m" or integer nanoseconds. Only set values override.
type JsonConfig struct {
	ListenAddr          string         `json:"listen_addr"`
	DatabaseDSN         string         `json:"database_dsn"`
	BotToken            string         `json:"bot_token"`
	InitDataMaxAge      timex.Duration `json:"init_data_max_age"`
	S3RootUser          string         `json:"s3_root_user"`
	S3RootPassword      string         `json:"s3_root_password"`
	S3Bucket            string         `json:"s3_bucket"`
	S3Region            string         `json:"s3_region"`
	S3BaseEndpoint      string         `json:"s3_base_endpoint"`
	PublicBaseURL       string         `json:"public_base_url"`
	PresignExpiry       timex.Duration `json:"presign_expiry"`
	LogPath             string         `json:"log_path"`
	LogLevel            string         `json:"log_level"`
	GinMode             string         `json:"gin_mode"`
	AllowedOrigins      []string       `json:"allowed_origins"`
	RateLimit           float64        `json:"rate_limit"`
	RateBurst           int            `json:"rate_burst"`
	ReportHideThreshold int            `json:"report_hide_threshold"`
	ShutdownTimeout     timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays config with the file named by -c/-config, if any.
// It panics when the file cannot be read or decoded.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.ListenAddr, c.ListenAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.BotToken, c.BotToken)
	if c.InitDataMaxAge.Duration > 0 {
		config.InitDataMaxAge = c.InitDataMaxAge.Duration
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.PublicBaseURL, c.PublicBaseURL)
	if c.PresignExpiry.Duration > 0 {
		config.PresignExpiry = c.PresignExpiry.Duration
	}
	setString(&config.LogPath, c.LogPath)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.GinMode, c.GinMode)
	if len(c.AllowedOrigins) > 0 {
		config.AllowedOrigins = c.AllowedOrigins
	}
	if c.RateLimit > 0 {
		config.RateLimit = c.RateLimit
	}
	if c.RateBurst > 0 {
		config.RateBurst = c.RateBurst
	}
	if c.ReportHideThreshold > 0 {
		config.ReportHideThreshold = c.ReportHideThreshold
	}
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
