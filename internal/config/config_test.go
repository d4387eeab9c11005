package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	if yaml != "" {
		require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))
	}
	return v
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")

	cfg, err := load(newViper(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, "mcq_questions", cfg.Storage.RecordName)
	assert.Equal(t, "data", cfg.Storage.FileDir)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, int32(20), cfg.DB.MaxConnections)
	assert.Equal(t, 30*time.Second, cfg.DB.MaxConnLifetime)
	assert.True(t, cfg.Telegram.Enabled)
	assert.Equal(t, "token", cfg.Telegram.APIToken)
	assert.Empty(t, cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "")

	_, err := load(newViper(t, ""))
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}

func TestLoadTelegramDisabled(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "")

	cfg, err := load(newViper(t, "telegram:\n  enabled: false\nhttp:\n  addr: \":8080\"\n"))
	require.NoError(t, err)
	assert.False(t, cfg.Telegram.Enabled)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoadPostgresRequiresURL(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := load(newViper(t, ""))
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)

	t.Setenv("DATABASE_URL", "postgres://localhost/mcq")
	cfg, err := load(newViper(t, ""))
	require.NoError(t, err)
	dsn, err := cfg.DB.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/mcq", dsn)
}

func TestLoadUnknownDriver(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")

	_, err := load(newViper(t, "storage:\n  driver: sqlite\n"))
	assert.ErrorIs(t, err, ErrUnknownStorageDriver)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := load(newViper(t, "storage:\n  driver: Redis\nredis:\n  addr: file:6379\n"))
	require.NoError(t, err)
	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}
