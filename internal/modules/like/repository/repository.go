package repository

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"

	"anoa.com/forumapi/internal/entity"
	likeDto "anoa.com/forumapi/internal/modules/like/dto"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	VerifyLikeComment(ctx context.Context, like likeDto.AddLike) (bool, error)
	LikeComment(ctx context.Context, like likeDto.AddLike) error
	UnlikeComment(ctx context.Context, like likeDto.AddLike) error
	GetLikeCountByCommentID(ctx context.Context, commentID string) (int, error)
}

type likeRepository struct {
	db    *gorm.DB
	newID entity.IDGenerator
}

var _ LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB, newID entity.IDGenerator) LikeRepository {
	return &likeRepository{db: db, newID: newID}
}

func (r *likeRepository) VerifyLikeComment(ctx context.Context, like likeDto.AddLike) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Like{}).
		Where("comment_id = ? AND owner = ?", like.CommentID, like.Owner).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *likeRepository) LikeComment(ctx context.Context, like likeDto.AddLike) error {
	row := entity.Like{
		ID:        r.newID(),
		CommentID: like.CommentID,
		Owner:     like.Owner,
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error
}

func (r *likeRepository) UnlikeComment(ctx context.Context, like likeDto.AddLike) error {
	return r.db.WithContext(ctx).
		Where("comment_id = ? AND owner = ?", like.CommentID, like.Owner).
		Delete(&entity.Like{}).Error
}

func (r *likeRepository) GetLikeCountByCommentID(ctx context.Context, commentID string) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Like{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
