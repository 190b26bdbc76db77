package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anoa.com/forumapi/internal/config"
	"anoa.com/forumapi/internal/entity"
	"anoa.com/forumapi/internal/server"
	"anoa.com/forumapi/pkg/database"
	"anoa.com/forumapi/pkg/logger"
	"anoa.com/forumapi/pkg/ratelimiter"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Initialize(cfg.LogLevel, cfg.LogFormat == "json")
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbLogLevel := gormlogger.Warn
	if cfg.LogLevel == "debug" {
		dbLogLevel = gormlogger.Info
	}
	db, err := database.Connect(database.Options{
		DSN:          cfg.DatabaseURL,
		MaxOpenConns: 25,
		MaxIdleConns: 25,
		LogLevel:     dbLogLevel,
	})
	if err != nil {
		logger.Log.Error("database unavailable", "error", err)
		os.Exit(1)
	}

	if err := entity.Migrate(db); err != nil {
		logger.Log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Log.Error("invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		redisClient = redis.NewClient(opt)
		defer redisClient.Close()
	} else {
		logger.Log.Info("REDIS_URL not set, write cooldowns disabled")
	}
	cooldown := ratelimiter.NewCooldown(redisClient)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(ctx, server.Options{
		Config:   cfg,
		Repos:    server.NewRepositories(db),
		Cooldown: cooldown,
		Ready: func(ctx context.Context) error {
			if err := database.Ping(ctx, db); err != nil {
				return err
			}
			return cooldown.Ping(ctx)
		},
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Log.Error("server exited with error", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("graceful shutdown failed", "error", err)
		}
	}
}
