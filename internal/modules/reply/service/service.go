package service

import (
	"context"

	commentDto "anoa.com/forumapi/internal/modules/comment/dto"
	commentRepo "anoa.com/forumapi/internal/modules/comment/repository"
	replyDto "anoa.com/forumapi/internal/modules/reply/dto"
	replyRepo "anoa.com/forumapi/internal/modules/reply/repository"
	"anoa.com/forumapi/pkg/payload"
)

type AddReplyUseCase struct {
	commentRepo commentRepo.CommentRepository
	replyRepo   replyRepo.ReplyRepository
}

func NewAddReplyUseCase(commentRepo commentRepo.CommentRepository, replyRepo replyRepo.ReplyRepository) *AddReplyUseCase {
	return &AddReplyUseCase{commentRepo: commentRepo, replyRepo: replyRepo}
}

func (uc *AddReplyUseCase) Execute(ctx context.Context, p map[string]any, params replyDto.ReplyParams, owner string) (replyDto.AddedReply, error) {
	if err := uc.commentRepo.VerifyCommentAvailability(ctx, commentDto.CommentRef{
		CommentID: params.CommentID,
		ThreadID:  params.ThreadID,
	}); err != nil {
		return replyDto.AddedReply{}, err
	}

	reply, err := replyDto.NewAddReply(payload.Merge(p, map[string]any{
		"owner":     owner,
		"commentId": params.CommentID,
	}))
	if err != nil {
		return replyDto.AddedReply{}, err
	}

	return uc.replyRepo.AddReply(ctx, reply)
}

type DeleteReplyUseCase struct {
	replyRepo replyRepo.ReplyRepository
}

func NewDeleteReplyUseCase(replyRepo replyRepo.ReplyRepository) *DeleteReplyUseCase {
	return &DeleteReplyUseCase{replyRepo: replyRepo}
}

func (uc *DeleteReplyUseCase) Execute(ctx context.Context, ref replyDto.ReplyRef, owner string) error {
	if err := uc.replyRepo.VerifyReplyAvailability(ctx, ref); err != nil {
		return err
	}

	if err := uc.replyRepo.VerifyReplyOwner(ctx, replyDto.ReplyOwner{
		ReplyID: ref.ReplyID,
		Owner:   owner,
	}); err != nil {
		return err
	}

	return uc.replyRepo.DeleteReplyByID(ctx, ref.ReplyID)
}
