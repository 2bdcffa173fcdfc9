package models

import "gorm.io/gorm"

// AutoMigrate creates the schema without goose; used for sqlite and tests.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&News{},
		&Comment{},
		&NewsLike{},
		&CommentLike{},
		&RevokedToken{},
	)
}
