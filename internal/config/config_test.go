package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-records/internal/platform/logger"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.Driver)
	assert.Equal(t, "novellia-pets.db", cfg.DatabasePath)
	assert.Equal(t, logger.Info, cfg.Log.Level)
	assert.Equal(t, logger.FormatText, cfg.Log.Format)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnv_DSNSelectsPostgres(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{"DB_DSN": "postgres://x"}))
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Driver)

	cfg, err = FromEnv(env(map[string]string{"DB_DSN": "postgres://x", "STORAGE_DRIVER": "memory"}))
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Driver)
}

func TestFromEnv_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown driver":       {"STORAGE_DRIVER": "mongo"},
		"postgres without dsn": {"STORAGE_DRIVER": "postgres"},
		"bad duration":         {"HTTP_READ_TIMEOUT": "soon"},
		"negative duration":    {"SHUTDOWN_TIMEOUT": "-1s"},
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(env(m))
			assert.Error(t, err)
		})
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"PORT":           "9090",
		"STORAGE_DRIVER": "SQLite",
		"DATABASE_PATH":  "/tmp/x.db",
		"LOG_LEVEL":      "debug",
		"LOG_FORMAT":     "json",
		"APP_NAME":       "clinic",
	}))
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.Driver)
	assert.Equal(t, "/tmp/x.db", cfg.DatabasePath)
	assert.Equal(t, logger.Options{Level: logger.Debug, Format: logger.FormatJSON, App: "clinic"}, cfg.Log)
}
