package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.EqualValues(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9091")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("DATABASE_PATH", "/tmp/books.db")
	t.Setenv("SHUTDOWN_TIMEOUT_IN_SECONDS", "10")

	cfg := NewConfig()

	assert.EqualValues(t, 9091, cfg.HTTP.Port)
	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, "/tmp/books.db", cfg.Database.Path)
	assert.Equal(t, 10, cfg.Global.ShutdownTimeoutInSeconds)
}
