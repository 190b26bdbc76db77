package service

import (
	"context"

	commentDto "anoa.com/forumapi/internal/modules/comment/dto"
	commentRepo "anoa.com/forumapi/internal/modules/comment/repository"
	threadRepo "anoa.com/forumapi/internal/modules/thread/repository"
	"anoa.com/forumapi/pkg/payload"
)

type AddCommentUseCase struct {
	threadRepo  threadRepo.ThreadRepository
	commentRepo commentRepo.CommentRepository
}

func NewAddCommentUseCase(threadRepo threadRepo.ThreadRepository, commentRepo commentRepo.CommentRepository) *AddCommentUseCase {
	return &AddCommentUseCase{threadRepo: threadRepo, commentRepo: commentRepo}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, p map[string]any, params commentDto.CommentParams, owner string) (commentDto.AddedComment, error) {
	if err := uc.threadRepo.ValidateThreadAvailability(ctx, params.ThreadID); err != nil {
		return commentDto.AddedComment{}, err
	}

	comment, err := commentDto.NewAddComment(payload.Merge(p, map[string]any{
		"owner":    owner,
		"threadId": params.ThreadID,
	}))
	if err != nil {
		return commentDto.AddedComment{}, err
	}

	return uc.commentRepo.AddComment(ctx, comment)
}

type DeleteCommentUseCase struct {
	commentRepo commentRepo.CommentRepository
}

func NewDeleteCommentUseCase(commentRepo commentRepo.CommentRepository) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{commentRepo: commentRepo}
}

// Execute soft deletes the comment. Ownership is only checked once the comment is known to exist.
func (uc *DeleteCommentUseCase) Execute(ctx context.Context, ref commentDto.CommentRef, owner string) error {
	if err := uc.commentRepo.VerifyCommentAvailability(ctx, ref); err != nil {
		return err
	}

	if err := uc.commentRepo.ValidateCommentOwner(ctx, commentDto.CommentOwner{
		CommentID: ref.CommentID,
		Owner:     owner,
	}); err != nil {
		return err
	}

	return uc.commentRepo.DeleteComment(ctx, ref.CommentID)
}
