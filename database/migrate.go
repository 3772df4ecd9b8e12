package database

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date. Order matters: referenced tables
// first.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Job{},
		&models.Application{},
	)
}
