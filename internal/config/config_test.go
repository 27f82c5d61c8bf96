package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DB_DSN", "ENV", "HTTP_ADDR", "MIGRATIONS_PATH", "TELEGRAM_TOKEN", "PENDING_DIGEST_INTERVAL", "CONFIG_FILE"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "postgres://localhost/tutoring")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/tutoring", cfg.DBDSN)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Equal(t, 24*time.Hour, cfg.PendingDigestInterval)
	assert.False(t, cfg.TelegramEnabled())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_RequiresDSN(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	assert.ErrorContains(t, err, "DB_DSN")
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db_dsn: postgres://file/tutoring
env: production
http_addr: ":9090"
telegram_token: from-file
pending_digest_interval: 30m
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("HTTP_ADDR", ":7070")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://file/tutoring", cfg.DBDSN)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":7070", cfg.HTTPAddr)
	assert.True(t, cfg.TelegramEnabled())
	assert.Equal(t, 30*time.Minute, cfg.PendingDigestInterval)
}

func TestLoad_BadInterval(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "postgres://localhost/tutoring")

	t.Setenv("PENDING_DIGEST_INTERVAL", "often")
	_, err := Load()
	assert.ErrorContains(t, err, "PENDING_DIGEST_INTERVAL")

	t.Setenv("PENDING_DIGEST_INTERVAL", "-1h")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	assert.ErrorContains(t, err, "read config file")
}
