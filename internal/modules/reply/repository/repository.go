package repository

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"time"

	"anoa.com/forumapi/internal/entity"
	replyDto "anoa.com/forumapi/internal/modules/reply/dto"
	"anoa.com/forumapi/pkg/apperror"
	"anoa.com/forumapi/pkg/dto"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	msgReplyNotFound     = "balasan tidak ditemukan"
	msgReplyForbidden    = "anda tidak memiliki akses terhadap balasan ini"
	msgReplyDeleteFailed = "gagal menghapus balasan"
)

type ReplyRepository interface {
	AddReply(ctx context.Context, reply replyDto.AddReply) (replyDto.AddedReply, error)
	// VerifyReplyAvailability checks the whole thread -> comment -> reply chain.
	VerifyReplyAvailability(ctx context.Context, ref replyDto.ReplyRef) error
	VerifyReplyOwner(ctx context.Context, owner replyDto.ReplyOwner) error
	DeleteReplyByID(ctx context.Context, replyID string) error
	GetRepliesByThreadID(ctx context.Context, threadID string) ([]replyDto.ReplyRow, error)
}

type replyRepository struct {
	db    *gorm.DB
	newID entity.IDGenerator
}

var _ ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB, newID entity.IDGenerator) ReplyRepository {
	return &replyRepository{db: db, newID: newID}
}

func (r *replyRepository) AddReply(ctx context.Context, reply replyDto.AddReply) (replyDto.AddedReply, error) {
	row := entity.Reply{
		ID:        r.newID(),
		Content:   reply.Content,
		Owner:     reply.Owner,
		CommentID: reply.CommentID,
		Date:      time.Now(),
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return replyDto.AddedReply{}, err
	}

	return replyDto.AddedReply{ID: row.ID, Content: row.Content, Owner: row.Owner}, nil
}

func (r *replyRepository) VerifyReplyAvailability(ctx context.Context, ref replyDto.ReplyRef) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("replies").
		Joins("JOIN comments ON comments.id = replies.comment_id").
		Where("replies.id = ? AND replies.comment_id = ? AND comments.thread_id = ?", ref.ReplyID, ref.CommentID, ref.ThreadID).
		Where("replies.is_deleted = ?", false).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return apperror.NotFound(msgReplyNotFound)
	}
	return nil
}

func (r *replyRepository) VerifyReplyOwner(ctx context.Context, owner replyDto.ReplyOwner) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Reply{}).
		Where("id = ? AND owner = ?", owner.ReplyID, owner.Owner).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return apperror.Forbidden(msgReplyForbidden)
	}
	return nil
}

func (r *replyRepository) DeleteReplyByID(ctx context.Context, replyID string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Reply{}).
		Where("id = ?", replyID).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperror.Invariant(msgReplyDeleteFailed)
	}
	return nil
}

func (r *replyRepository) GetRepliesByThreadID(ctx context.Context, threadID string) ([]replyDto.ReplyRow, error) {
	type replyRow struct {
		ID        string
		Content   string
		Date      time.Time
		Username  string
		CommentID string
		IsDeleted bool
	}

	var rows []replyRow
	if err := r.db.WithContext(ctx).
		Table("replies").
		Select("replies.id, replies.content, replies.date, users.username, replies.comment_id, replies.is_deleted").
		Joins("JOIN comments ON comments.id = replies.comment_id").
		Joins("LEFT JOIN users ON users.id = replies.owner").
		Where("comments.thread_id = ?", threadID).
		Order("replies.date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	replies := make([]replyDto.ReplyRow, 0, len(rows))
	for _, row := range rows {
		replies = append(replies, replyDto.ReplyRow{
			ID:        row.ID,
			Content:   row.Content,
			Date:      dto.FormatDate(row.Date),
			Username:  row.Username,
			CommentID: row.CommentID,
			IsDeleted: row.IsDeleted,
		})
	}
	return replies, nil
}
