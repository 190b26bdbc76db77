package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"anoa.com/forumapi/pkg/database"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Host           string
	Port           string
	AllowedOrigins string

	DatabaseURL string
	RedisURL    string

	AccessTokenKey  string
	RefreshTokenKey string
	AccessTokenAge  time.Duration

	RateLimitThread  time.Duration
	RateLimitComment time.Duration

	LimiterEnabled bool
	LimiterRPS     float64
	LimiterBurst   int

	LogLevel  string
	LogFormat string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Host:           getEnv("HOST", ""),
		Port:           getEnv("PORT", "5000"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		AccessTokenKey:  os.Getenv("ACCESS_TOKEN_KEY"),
		RefreshTokenKey: os.Getenv("REFRESH_TOKEN_KEY"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = database.DSN(
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			os.Getenv("DB_PASS"),
			getEnv("DB_NAME", "forumapi"),
		)
	}

	var err error
	if cfg.AccessTokenAge, err = time.ParseDuration(getEnv("ACCESS_TOKEN_AGE", "3h")); err != nil {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_AGE: %w", err)
	}
	if cfg.RateLimitThread, err = time.ParseDuration(getEnv("RATE_LIMIT_THREAD", "0s")); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_THREAD: %w", err)
	}
	if cfg.RateLimitComment, err = time.ParseDuration(getEnv("RATE_LIMIT_COMMENT", "0s")); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_COMMENT: %w", err)
	}
	if cfg.LimiterEnabled, err = strconv.ParseBool(getEnv("LIMITER_ENABLED", "true")); err != nil {
		return nil, fmt.Errorf("invalid LIMITER_ENABLED: %w", err)
	}
	if cfg.LimiterRPS, err = strconv.ParseFloat(getEnv("LIMITER_RPS", "10"), 64); err != nil {
		return nil, fmt.Errorf("invalid LIMITER_RPS: %w", err)
	}
	if cfg.LimiterBurst, err = strconv.Atoi(getEnv("LIMITER_BURST", "20")); err != nil {
		return nil, fmt.Errorf("invalid LIMITER_BURST: %w", err)
	}

	if cfg.AppEnv == "production" && (cfg.AccessTokenKey == "" || cfg.RefreshTokenKey == "") {
		return nil, fmt.Errorf("ACCESS_TOKEN_KEY and REFRESH_TOKEN_KEY are required in production")
	}
	if cfg.AccessTokenKey == "" {
		cfg.AccessTokenKey = "dev-access-secret"
	}
	if cfg.RefreshTokenKey == "" {
		cfg.RefreshTokenKey = "dev-refresh-secret"
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
