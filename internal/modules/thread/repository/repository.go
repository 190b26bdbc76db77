package repository

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"time"

	"anoa.com/forumapi/internal/entity"
	commentDto "anoa.com/forumapi/internal/modules/comment/dto"
	threadDto "anoa.com/forumapi/internal/modules/thread/dto"
	"anoa.com/forumapi/pkg/apperror"
	"anoa.com/forumapi/pkg/dto"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const msgThreadNotFound = "thread tidak ditemukan"

type ThreadRepository interface {
	AddThread(ctx context.Context, thread threadDto.AddThread) (threadDto.AddedThread, error)
	ValidateThreadAvailability(ctx context.Context, threadID string) error
	GetThreadByID(ctx context.Context, threadID string) (*threadDto.DetailThread, error)
}

type threadRepository struct {
	db    *gorm.DB
	newID entity.IDGenerator
}

var _ ThreadRepository = (*threadRepository)(nil)

func NewThreadRepository(db *gorm.DB, newID entity.IDGenerator) ThreadRepository {
	return &threadRepository{db: db, newID: newID}
}

func (r *threadRepository) AddThread(ctx context.Context, thread threadDto.AddThread) (threadDto.AddedThread, error) {
	row := entity.Thread{
		ID:    r.newID(),
		Title: thread.Title,
		Body:  thread.Body,
		Owner: thread.Owner,
		Date:  time.Now(),
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return threadDto.AddedThread{}, err
	}

	return threadDto.AddedThread{ID: row.ID, Title: row.Title, Owner: row.Owner}, nil
}

func (r *threadRepository) ValidateThreadAvailability(ctx context.Context, threadID string) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Thread{}).
		Where("id = ?", threadID).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return apperror.NotFound(msgThreadNotFound)
	}
	return nil
}

func (r *threadRepository) GetThreadByID(ctx context.Context, threadID string) (*threadDto.DetailThread, error) {
	type threadRow struct {
		ID       string
		Title    string
		Body     string
		Date     time.Time
		Username string
	}

	// Find into a slice so a missing thread is not logged as a gorm error
	var rows []threadRow
	if err := r.db.WithContext(ctx).
		Table("threads").
		Select("threads.id, threads.title, threads.body, threads.date, users.username").
		Joins("LEFT JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", threadID).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, apperror.NotFound(msgThreadNotFound)
	}

	row := rows[0]
	return &threadDto.DetailThread{
		ID:       row.ID,
		Title:    row.Title,
		Body:     row.Body,
		Date:     dto.FormatDate(row.Date),
		Username: row.Username,
		Comments: []commentDto.CommentWithReplies{},
	}, nil
}
