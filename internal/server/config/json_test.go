package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJson_OverridesOnlySetFields(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeConfig(t, `{
		"listen_addr": ":8080",
		"bot_token": "42:XYZ",
		"init_data_max_age": "1h",
		"presign_expiry": 300000000000,
		"allowed_origins": ["https://web.telegram.org"],
		"rate_limit": 5,
		"report_hide_threshold": 4
	}`)
	os.Args = []string{"cmd", "-config", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "42:XYZ", cfg.BotToken)
	assert.Equal(t, time.Hour, cfg.InitDataMaxAge)
	assert.Equal(t, 5*time.Minute, cfg.PresignExpiry)
	assert.Equal(t, []string{"https://web.telegram.org"}, cfg.AllowedOrigins)
	assert.Equal(t, 5.0, cfg.RateLimit)
	assert.Equal(t, 4, cfg.ReportHideThreshold)
	// untouched defaults
	assert.Equal(t, "exam-files", cfg.S3Bucket)
	assert.Equal(t, 20, cfg.RateBurst)
}

func TestParseJson_NoFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd"}

	cfg := &Config{ListenAddr: ":1"}
	require.NotPanics(t, func() { parseJson(cfg) })
	assert.Equal(t, ":1", cfg.ListenAddr)
}

func TestParseJson_Panics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd", "-c", filepath.Join(t.TempDir(), "absent.json")}
	assert.Panics(t, func() { parseJson(&Config{}) })

	os.Args = []string{"cmd", "-c", writeConfig(t, `{"listen_addr": 1}`)}
	assert.Panics(t, func() { parseJson(&Config{}) })
}
