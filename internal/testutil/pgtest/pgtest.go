//go:build integration

// Package pgtest starts a throwaway postgres for repository integration tests.
package pgtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"anoa.com/forumapi/internal/entity"
	"anoa.com/forumapi/pkg/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Start runs postgres, migrates the schema and returns a connected gorm handle.
// The returned func terminates the container.
func Start(ctx context.Context) (*gorm.DB, func(), error) {
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("forumapi_test"),
		postgres.WithUsername("forum"),
		postgres.WithPassword("forum"),
		testcontainers.WithWaitStrategy(
			// postgres restarts once after init, so wait for the second ready line
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("start postgres: %w", err)
	}
	terminate := func() {
		_ = container.Terminate(context.Background())
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate()
		return nil, nil, err
	}

	db, err := database.Connect(database.Options{DSN: dsn, LogLevel: gormlogger.Silent})
	if err != nil {
		terminate()
		return nil, nil, err
	}
	if err := entity.Migrate(db); err != nil {
		terminate()
		return nil, nil, err
	}

	return db, terminate, nil
}

// Reset empties every table between tests.
func Reset(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Exec("TRUNCATE likes, replies, comments, threads, authentications, users CASCADE").Error
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

// SeedUser inserts a user with a fixed password hash placeholder.
func SeedUser(t *testing.T, db *gorm.DB, id, username string) {
	t.Helper()
	user := entity.User{ID: id, Username: username, Password: "secret", Fullname: username}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func SeedThread(t *testing.T, db *gorm.DB, id, owner string) {
	t.Helper()
	thread := entity.Thread{ID: id, Title: "sebuah thread", Body: "sebuah body", Owner: owner}
	if err := db.Omit("User").Create(&thread).Error; err != nil {
		t.Fatalf("seed thread: %v", err)
	}
}

func SeedComment(t *testing.T, db *gorm.DB, id, threadID, owner string, date time.Time) {
	t.Helper()
	comment := entity.Comment{ID: id, Content: "sebuah comment", ThreadID: threadID, Owner: owner, Date: date}
	if err := db.Omit("User", "Thread").Create(&comment).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}
}
