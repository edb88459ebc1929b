package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "GIN_MODE", "APP_ENV", "LOG_LEVEL", "LOG_FORMAT",
		"DATABASE_URL", "MAX_DB_CONNS", "STATIC_DIR", "DEV_SERVER_URL", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, EnvDevelopment, cfg.AppEnv)
	assert.Equal(t, "curricula.db", cfg.DatabaseURL)
	assert.Equal(t, int32(8), cfg.MaxDBConns)
	assert.Equal(t, "dist", cfg.StaticDir)
	assert.Empty(t, cfg.DevServerURL)
	assert.Nil(t, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "0.0.0.0:3000", cfg.ListenAddr())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8088")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/curriforge")
	t.Setenv("MAX_DB_CONNS", "not-a-number")
	t.Setenv("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")

	cfg := Load()

	assert.Equal(t, "8088", cfg.ServerPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres://u:p@localhost:5432/curriforge", cfg.DatabaseURL)
	assert.Equal(t, int32(8), cfg.MaxDBConns, "invalid ints fall back to the default")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}
