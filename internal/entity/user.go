package entity

import "time"

type User struct {
	ID        string    `gorm:"size:50;primaryKey" json:"id"`
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Fullname  string    `gorm:"type:text;not null" json:"fullname"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Authentication stores a refresh token that has been issued and not yet revoked.
type Authentication struct {
	Token     string    `gorm:"type:text;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
