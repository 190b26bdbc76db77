package service

import (
	"context"
	"errors"
	"testing"

	commentDto "anoa.com/forumapi/internal/modules/comment/dto"
	commentMocks "anoa.com/forumapi/internal/modules/comment/repository/mocks"
	likeDto "anoa.com/forumapi/internal/modules/like/dto"
	likeMocks "anoa.com/forumapi/internal/modules/like/repository/mocks"
	"anoa.com/forumapi/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAddLikeUseCase(t *testing.T) {
	ctx := context.Background()
	params := likeDto.LikeParams{ThreadID: "thread-123", CommentID: "comment-123"}
	ref := commentDto.CommentRef{CommentID: "comment-123", ThreadID: "thread-123"}
	like := likeDto.AddLike{CommentID: "comment-123", Owner: "user-123"}

	t.Run("likes when not yet liked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		comments := commentMocks.NewMockCommentRepository(ctrl)
		likes := likeMocks.NewMockLikeRepository(ctrl)

		gomock.InOrder(
			comments.EXPECT().VerifyCommentAvailability(ctx, ref).Return(nil),
			likes.EXPECT().VerifyLikeComment(ctx, like).Return(false, nil),
			likes.EXPECT().LikeComment(ctx, like).Return(nil),
		)

		assert.NoError(t, NewAddLikeUseCase(comments, likes).Execute(ctx, params, "user-123"))
	})

	t.Run("unlikes when already liked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		comments := commentMocks.NewMockCommentRepository(ctrl)
		likes := likeMocks.NewMockLikeRepository(ctrl)

		gomock.InOrder(
			comments.EXPECT().VerifyCommentAvailability(ctx, ref).Return(nil),
			likes.EXPECT().VerifyLikeComment(ctx, like).Return(true, nil),
			likes.EXPECT().UnlikeComment(ctx, like).Return(nil),
		)

		assert.NoError(t, NewAddLikeUseCase(comments, likes).Execute(ctx, params, "user-123"))
	})

	t.Run("missing comment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		comments := commentMocks.NewMockCommentRepository(ctrl)
		likes := likeMocks.NewMockLikeRepository(ctrl)

		comments.EXPECT().VerifyCommentAvailability(ctx, ref).Return(apperror.NotFound("comment tidak ditemukan"))

		err := NewAddLikeUseCase(comments, likes).Execute(ctx, params, "user-123")
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})
}
