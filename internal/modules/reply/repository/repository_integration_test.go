//go:build integration

package repository

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	replyDto "anoa.com/forumapi/internal/modules/reply/dto"
	"anoa.com/forumapi/internal/testutil/pgtest"
	"anoa.com/forumapi/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	db, terminate, err := pgtest.Start(context.Background())
	if err != nil {
		log.Fatalf("failed to start postgres: %s", err)
	}
	testDB = db

	code := m.Run()
	terminate()
	os.Exit(code)
}

func TestReplyRepositoryPostgres(t *testing.T) {
	ctx := context.Background()
	pgtest.Reset(t, testDB)
	pgtest.SeedUser(t, testDB, "user-123", "dicoding")
	pgtest.SeedThread(t, testDB, "thread-123", "user-123")
	pgtest.SeedComment(t, testDB, "comment-123", "thread-123", "user-123", time.Now())

	repo := NewReplyRepository(testDB, func() string { return "reply-123" })

	added, err := repo.AddReply(ctx, replyDto.AddReply{Content: "sebuah balasan", Owner: "user-123", CommentID: "comment-123"})
	require.NoError(t, err)
	assert.Equal(t, "reply-123", added.ID)

	ref := replyDto.ReplyRef{ThreadID: "thread-123", CommentID: "comment-123", ReplyID: "reply-123"}
	assert.NoError(t, repo.VerifyReplyAvailability(ctx, ref))

	wrongThread := ref
	wrongThread.ThreadID = "thread-999"
	assert.ErrorIs(t, repo.VerifyReplyAvailability(ctx, wrongThread), apperror.ErrNotFound)

	assert.ErrorIs(t, repo.VerifyReplyOwner(ctx, replyDto.ReplyOwner{ReplyID: "reply-123", Owner: "user-999"}), apperror.ErrForbidden)

	require.NoError(t, repo.DeleteReplyByID(ctx, "reply-123"))
	assert.ErrorIs(t, repo.VerifyReplyAvailability(ctx, ref), apperror.ErrNotFound)

	rows, err := repo.GetRepliesByThreadID(ctx, "thread-123")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsDeleted)
	assert.Equal(t, "dicoding", rows[0].Username)
	assert.Equal(t, "comment-123", rows[0].CommentID)
}
