package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_DB", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "sustainshare", cfg.DBName)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendOrigin)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadPostgresRequiresPassword(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("DB_PASSWORD", "secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.PostgresDSN(), "host=db.internal")
	assert.Contains(t, cfg.PostgresDSN(), "password=secret")
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
