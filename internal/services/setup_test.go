package services

import (
	"fmt"
	"testing"

	"workhubb_backend/internal/database"
	"workhubb_backend/internal/models"
	"workhubb_backend/internal/repositories"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database for one test. The DSN is
// keyed by test name so parallel tests never share state, while
// cache=shared keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newUserService(t *testing.T) (*UserService, *gorm.DB) {
	db := newTestDB(t)
	return NewUserService(repositories.NewUserRepository(db)), db
}

func newJobService(t *testing.T) (*JobService, *gorm.DB) {
	db := newTestDB(t)
	return NewJobService(repositories.NewJobRepository(db), repositories.NewUserRepository(db)), db
}

func seedUser(t *testing.T, db *gorm.DB, id, name, email string) *models.User {
	t.Helper()
	user := &models.User{ID: id, Name: name, Email: email, Type: models.UserTypeProfessional}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	return user
}
