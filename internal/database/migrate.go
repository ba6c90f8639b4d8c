package database

import (
	"workhubb_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the four WorkHubb tables. AutoMigrate is
// additive only, so running it on every start is safe for both the
// sqlite and the managed adapters.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Experience{},
	)
}
