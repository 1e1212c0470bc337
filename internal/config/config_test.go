package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "4006", cfg.AppPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10*time.Second, cfg.LineTimeout)
	assert.Equal(t, "https://api.line.me/v2/bot/message/push", cfg.LinePushURL)
	assert.Equal(t, 4, cfg.BroadcastConcurrency)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load("does-not-exist.env")
	assert.Error(t, err)
}

func TestLoadOverridesAndClamp(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("BROADCAST_CONCURRENCY", "0")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "portal")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.BroadcastConcurrency)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Contains(t, cfg.DSN(), "host=db")
	assert.Contains(t, cfg.DSN(), "dbname=portal")
}
