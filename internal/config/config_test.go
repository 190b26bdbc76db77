package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("APP_ENV", "test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "host=db user=postgres password=secret dbname=forumapi port=5432 sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, 3*time.Hour, cfg.AccessTokenAge)
	assert.Equal(t, time.Duration(0), cfg.RateLimitThread)
	assert.True(t, cfg.LimiterEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("DATABASE_URL", "postgres://u:p@h:5432/forum")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("RATE_LIMIT_THREAD", "30s")
	t.Setenv("LIMITER_ENABLED", "false")
	t.Setenv("LIMITER_BURST", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@h:5432/forum", cfg.DatabaseURL)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, 30*time.Second, cfg.RateLimitThread)
	assert.False(t, cfg.LimiterEnabled)
	assert.Equal(t, 5, cfg.LimiterBurst)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("ACCESS_TOKEN_AGE", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "ACCESS_TOKEN_AGE")
}

func TestLoadRequiresKeysInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ACCESS_TOKEN_KEY", "")
	t.Setenv("REFRESH_TOKEN_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}
