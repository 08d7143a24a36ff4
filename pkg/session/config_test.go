package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/todokit/pkg/config"
	"github.com/dmitrymomot/todokit/pkg/session"
)

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("SESSION_IDLE_TIMEOUT", "30m")
	t.Setenv("SESSION_SECURE_COOKIES", "true")

	var cfg session.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "sid", cfg.CookieName)
	assert.Equal(t, 30*time.Minute, cfg.IdleTimeout)
	assert.Equal(t, 720*time.Hour, cfg.MaxLifetime)
	assert.Equal(t, 5*time.Minute, cfg.ActivityUpdateThreshold)
	assert.True(t, cfg.SecureCookies)
}

func TestConfig_Sliding(t *testing.T) {
	t.Parallel()

	cfg := session.DefaultConfig()
	assert.True(t, cfg.Sliding())

	cfg.IdleTimeout = 0
	assert.False(t, cfg.Sliding())

	cfg.IdleTimeout = cfg.MaxLifetime
	assert.False(t, cfg.Sliding())
}
