package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/examhub/internal/flagx"
	"github.com/dmitrijs2005/examhub/internal/timex"
)

type jsonS3 struct {
	Endpoint      string `json:"endpoint"`
	Region        string `json:"region"`
	AccessKey     string `json:"access_key"`
	SecretKey     string `json:"secret_key"`
	Bucket        string `json:"bucket"`
	PublicBaseURL string `json:"public_base_url"`
}

// JsonConfig is the on-disk shape of the config file. Only non-empty values
// override the current Config.
type JsonConfig struct {
	ServerURL           string         `json:"server_url"`
	HealthCheckInterval timex.Duration `json:"health_check_interval"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	InitDataEnv         string         `json:"init_data_env"`
	InitDataFile        string         `json:"init_data_file"`
	StorageMode         string         `json:"storage_mode"`
	RecorderMode        string         `json:"recorder_mode"`
	DatabaseDSN         string         `json:"database_dsn"`
	S3                  jsonS3         `json:"s3"`
	LogPath             string         `json:"log_path"`
	LogLevel            string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config. It panics on
// read or decode errors.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.ServerURL, jc.ServerURL)
	if jc.HealthCheckInterval.Duration > 0 {
		cfg.HealthCheckInterval = jc.HealthCheckInterval.Duration
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	setString(&cfg.InitDataEnv, jc.InitDataEnv)
	setString(&cfg.InitDataFile, jc.InitDataFile)
	setString(&cfg.StorageMode, jc.StorageMode)
	setString(&cfg.RecorderMode, jc.RecorderMode)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.S3.Endpoint, jc.S3.Endpoint)
	setString(&cfg.S3.Region, jc.S3.Region)
	setString(&cfg.S3.AccessKey, jc.S3.AccessKey)
	setString(&cfg.S3.SecretKey, jc.S3.SecretKey)
	setString(&cfg.S3.Bucket, jc.S3.Bucket)
	setString(&cfg.S3.PublicBaseURL, jc.S3.PublicBaseURL)
	setString(&cfg.LogPath, jc.LogPath)
	setString(&cfg.LogLevel, jc.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
