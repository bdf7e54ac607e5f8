package config

import "time"

const (
	StorageAPI = "api"
	StorageS3  = "s3"

	RecorderAPI = "api"
	RecorderSQL = "sql"
)

// S3 holds direct object-storage settings used when StorageMode is "s3".
type S3 struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

// Config holds runtime settings for the ExamHub CLI.
type Config struct {
	ServerURL           string
	HealthCheckInterval time.Duration
	RequestTimeout      time.Duration
	InitDataEnv         string
	InitDataFile        string
	StorageMode         string
	RecorderMode        string
	DatabaseDSN         string
	S3                  S3
	LogPath             string
	LogLevel            string
}

// LoadDefaults populates c with development defaults. RequestTimeout is zero,
// meaning calls wait until the server answers.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.HealthCheckInterval = 15 * time.Second
	c.InitDataEnv = "TELEGRAM_INIT_DATA"
	c.StorageMode = StorageAPI
	c.RecorderMode = RecorderAPI
	c.S3 = S3{
		Endpoint: "http://127.0.0.1:9000",
		Region:   "us-east-1",
		Bucket:   "exam-files",
	}
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then JSON (if present), then flags. Later
// sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
