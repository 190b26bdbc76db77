package entity

import "gorm.io/gorm"

// Migrate creates or updates every table the API needs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Authentication{},
		&Thread{},
		&Comment{},
		&Reply{},
		&Like{},
	)
}
