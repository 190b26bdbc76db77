package entity

import (
	"time"
)

// Like is one user's like on one comment. A pair (comment, owner) appears at most once.
type Like struct {
	ID        string    `gorm:"size:50;primaryKey" json:"id"`
	CommentID string    `gorm:"size:50;not null;uniqueIndex:idx_likes_unique,priority:1" json:"comment_id"`
	Comment   Comment   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Owner     string    `gorm:"size:50;not null;uniqueIndex:idx_likes_unique,priority:2" json:"owner"`
	User      User      `gorm:"foreignKey:Owner;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (l *Like) TableName() string {
	return "likes"
}
