package service

import (
	"context"

	commentDto "anoa.com/forumapi/internal/modules/comment/dto"
	commentRepo "anoa.com/forumapi/internal/modules/comment/repository"
	likeDto "anoa.com/forumapi/internal/modules/like/dto"
	likeRepo "anoa.com/forumapi/internal/modules/like/repository"
)

type AddLikeUseCase struct {
	commentRepo commentRepo.CommentRepository
	likeRepo    likeRepo.LikeRepository
}

func NewAddLikeUseCase(commentRepo commentRepo.CommentRepository, likeRepo likeRepo.LikeRepository) *AddLikeUseCase {
	return &AddLikeUseCase{commentRepo: commentRepo, likeRepo: likeRepo}
}

// Execute toggles owner's like on the comment.
// The check and the write are separate statements, so two concurrent toggles may both see the same state.
func (uc *AddLikeUseCase) Execute(ctx context.Context, params likeDto.LikeParams, owner string) error {
	if err := uc.commentRepo.VerifyCommentAvailability(ctx, commentDto.CommentRef{
		CommentID: params.CommentID,
		ThreadID:  params.ThreadID,
	}); err != nil {
		return err
	}

	like, err := likeDto.NewAddLike(map[string]any{
		"commentId": params.CommentID,
		"owner":     owner,
	})
	if err != nil {
		return err
	}

	liked, err := uc.likeRepo.VerifyLikeComment(ctx, like)
	if err != nil {
		return err
	}

	if liked {
		return uc.likeRepo.UnlikeComment(ctx, like)
	}
	return uc.likeRepo.LikeComment(ctx, like)
}
