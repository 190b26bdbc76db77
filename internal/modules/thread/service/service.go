package service

import (
	"context"

	commentDto "anoa.com/forumapi/internal/modules/comment/dto"
	commentRepo "anoa.com/forumapi/internal/modules/comment/repository"
	likeRepo "anoa.com/forumapi/internal/modules/like/repository"
	replyDto "anoa.com/forumapi/internal/modules/reply/dto"
	replyRepo "anoa.com/forumapi/internal/modules/reply/repository"
	threadDto "anoa.com/forumapi/internal/modules/thread/dto"
	threadRepo "anoa.com/forumapi/internal/modules/thread/repository"
	"anoa.com/forumapi/pkg/payload"
)

type AddThreadUseCase struct {
	threadRepo threadRepo.ThreadRepository
}

func NewAddThreadUseCase(threadRepo threadRepo.ThreadRepository) *AddThreadUseCase {
	return &AddThreadUseCase{threadRepo: threadRepo}
}

// Execute creates a thread owned by owner. An owner field in the payload is ignored.
func (uc *AddThreadUseCase) Execute(ctx context.Context, p map[string]any, owner string) (threadDto.AddedThread, error) {
	thread, err := threadDto.NewAddThread(payload.Merge(p, map[string]any{"owner": owner}))
	if err != nil {
		return threadDto.AddedThread{}, err
	}

	return uc.threadRepo.AddThread(ctx, thread)
}

type GetThreadUseCase struct {
	threadRepo  threadRepo.ThreadRepository
	commentRepo commentRepo.CommentRepository
	replyRepo   replyRepo.ReplyRepository
	likeRepo    likeRepo.LikeRepository
}

func NewGetThreadUseCase(
	threadRepo threadRepo.ThreadRepository,
	commentRepo commentRepo.CommentRepository,
	replyRepo replyRepo.ReplyRepository,
	likeRepo likeRepo.LikeRepository,
) *GetThreadUseCase {
	return &GetThreadUseCase{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
		likeRepo:    likeRepo,
	}
}

// Execute loads a thread with its comments, their replies and like counts.
// Comments and replies keep the order the repositories return them in.
func (uc *GetThreadUseCase) Execute(ctx context.Context, params threadDto.GetThreadParams) (*threadDto.DetailThread, error) {
	thread, err := uc.threadRepo.GetThreadByID(ctx, params.ThreadID)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.GetCommentsByThreadID(ctx, params.ThreadID)
	if err != nil {
		return nil, err
	}

	replies, err := uc.replyRepo.GetRepliesByThreadID(ctx, params.ThreadID)
	if err != nil {
		return nil, err
	}

	thread.Comments = make([]commentDto.CommentWithReplies, 0, len(comments))
	for _, row := range comments {
		likeCount, err := uc.likeRepo.GetLikeCountByCommentID(ctx, row.ID)
		if err != nil {
			return nil, err
		}

		thread.Comments = append(thread.Comments, commentDto.NewCommentWithReplies(
			commentDto.DetailCommentFromRow(row),
			repliesOf(row.ID, replies),
			likeCount,
		))
	}

	return thread, nil
}

func repliesOf(commentID string, rows []replyDto.ReplyRow) []replyDto.DetailReply {
	replies := make([]replyDto.DetailReply, 0)
	for _, row := range rows {
		if row.CommentID == commentID {
			replies = append(replies, replyDto.DetailReplyFromRow(row))
		}
	}
	return replies
}
