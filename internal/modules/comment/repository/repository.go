package repository

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"time"

	"anoa.com/forumapi/internal/entity"
	commentDto "anoa.com/forumapi/internal/modules/comment/dto"
	"anoa.com/forumapi/pkg/apperror"
	"anoa.com/forumapi/pkg/dto"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	msgCommentNotFound     = "comment tidak ditemukan"
	msgCommentForbidden    = "anda tidak memiliki akses terhadap comment ini"
	msgCommentDeleteFailed = "gagal menghapus comment"
)

type CommentRepository interface {
	AddComment(ctx context.Context, comment commentDto.AddComment) (commentDto.AddedComment, error)
	// VerifyCommentAvailability fails with NotFound when the comment is missing,
	// deleted, or belongs to another thread.
	VerifyCommentAvailability(ctx context.Context, ref commentDto.CommentRef) error
	ValidateCommentOwner(ctx context.Context, owner commentDto.CommentOwner) error
	DeleteComment(ctx context.Context, commentID string) error
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]commentDto.CommentRow, error)
}

type commentRepository struct {
	db    *gorm.DB
	newID entity.IDGenerator
}

var _ CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB, newID entity.IDGenerator) CommentRepository {
	return &commentRepository{db: db, newID: newID}
}

func (r *commentRepository) AddComment(ctx context.Context, comment commentDto.AddComment) (commentDto.AddedComment, error) {
	row := entity.Comment{
		ID:       r.newID(),
		Content:  comment.Content,
		Owner:    comment.Owner,
		ThreadID: comment.ThreadID,
		Date:     time.Now(),
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return commentDto.AddedComment{}, err
	}

	return commentDto.AddedComment{ID: row.ID, Content: row.Content, Owner: row.Owner}, nil
}

func (r *commentRepository) VerifyCommentAvailability(ctx context.Context, ref commentDto.CommentRef) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Comment{}).
		Where("id = ? AND thread_id = ? AND is_deleted = ?", ref.CommentID, ref.ThreadID, false).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return apperror.NotFound(msgCommentNotFound)
	}
	return nil
}

func (r *commentRepository) ValidateCommentOwner(ctx context.Context, owner commentDto.CommentOwner) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Comment{}).
		Where("id = ? AND owner = ?", owner.CommentID, owner.Owner).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return apperror.Forbidden(msgCommentForbidden)
	}
	return nil
}

func (r *commentRepository) DeleteComment(ctx context.Context, commentID string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Comment{}).
		Where("id = ?", commentID).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperror.Invariant(msgCommentDeleteFailed)
	}
	return nil
}

func (r *commentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]commentDto.CommentRow, error) {
	type commentRow struct {
		ID        string
		Username  string
		Date      time.Time
		Content   string
		IsDeleted bool
	}

	var rows []commentRow
	if err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, users.username, comments.date, comments.content, comments.is_deleted").
		Joins("LEFT JOIN users ON users.id = comments.owner").
		Where("comments.thread_id = ?", threadID).
		Order("comments.date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	comments := make([]commentDto.CommentRow, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, commentDto.CommentRow{
			ID:        row.ID,
			Username:  row.Username,
			Date:      dto.FormatDate(row.Date),
			Content:   row.Content,
			IsDeleted: row.IsDeleted,
		})
	}
	return comments, nil
}
