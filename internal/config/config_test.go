package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, "sid", cfg.SessionCookieName)
	assert.Equal(t, "America/Sao_Paulo", cfg.ShopTimezone)
	assert.False(t, cfg.AuditEnabled())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
[server]
port = "9000"

[booking_api]
base_url = "https://api.example.com"
timeout = "3s"

[session]
ttl = "2h"
cookie_secure = true

[database]
url = "postgres://file"

[cors]
allowed_origins = ["https://app.example.com"]
`)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("RATINGS_CONCURRENCY", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.ServerPort)
	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.SessionCookieSecure)
	assert.True(t, cfg.AuditEnabled())
	assert.Equal(t, 8, cfg.RatingsConcurrency)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowedOrigins)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("CONFIG_FILE", writeFile(t, "[session]\nttl = \"forever\"\n"))
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("CONFIG_FILE", writeFile(t, ""))
	t.Setenv("BOOKING_API_TIMEOUT", "ten")
	_, err = Load()
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	assert.Nil(t, splitList(""))
}
