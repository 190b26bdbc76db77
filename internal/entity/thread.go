package entity

import (
	"time"

	"gorm.io/gorm"
)

type Thread struct {
	ID    string    `gorm:"size:50;primaryKey" json:"id"`
	Title string    `gorm:"type:text;not null" json:"title"`
	Body  string    `gorm:"type:text;not null" json:"body"`
	Owner string    `gorm:"size:50;not null;index" json:"owner"`
	User  User      `gorm:"foreignKey:Owner;constraint:OnDelete:CASCADE" json:"-"`
	Date  time.Time `gorm:"not null" json:"date"`
}

type Comment struct {
	ID        string    `gorm:"size:50;primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Owner     string    `gorm:"size:50;not null;index" json:"owner"`
	User      User      `gorm:"foreignKey:Owner;constraint:OnDelete:CASCADE" json:"-"`
	ThreadID  string    `gorm:"size:50;not null;index" json:"thread_id"`
	Thread    Thread    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	Date      time.Time `gorm:"not null" json:"date"`
}

type Reply struct {
	ID        string    `gorm:"size:50;primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Owner     string    `gorm:"size:50;not null;index" json:"owner"`
	User      User      `gorm:"foreignKey:Owner;constraint:OnDelete:CASCADE" json:"-"`
	CommentID string    `gorm:"size:50;not null;index" json:"comment_id"`
	Comment   Comment   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	Date      time.Time `gorm:"not null" json:"date"`
}

func (t *Thread) BeforeCreate(tx *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	return nil
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.Date.IsZero() {
		c.Date = time.Now()
	}
	return nil
}

func (r *Reply) BeforeCreate(tx *gorm.DB) error {
	if r.Date.IsZero() {
		r.Date = time.Now()
	}
	return nil
}
