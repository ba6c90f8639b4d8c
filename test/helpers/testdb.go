package helpers

import (
	"encoding/json"
	"testing"

	"workhubb_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateTestUser inserts a user directly, bypassing the API.
func CreateTestUser(t *testing.T, db *gorm.DB, id, name, email string, userType models.UserType) *models.User {
	t.Helper()

	user := &models.User{
		ID:    id,
		Name:  name,
		Email: email,
		Type:  userType,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user %s: %v", email, err)
	}
	return user
}

// CreateTestJob inserts a job listing for the given author.
func CreateTestJob(t *testing.T, db *gorm.DB, id, title, authorID string, requirements []string) *models.Job {
	t.Helper()

	raw, err := json.Marshal(requirements)
	if err != nil {
		t.Fatalf("failed to encode requirements: %v", err)
	}

	job := &models.Job{
		ID:           id,
		Title:        title,
		Company:      "Test Company",
		Location:     "Remote",
		Remote:       true,
		Description:  "Test description",
		Requirements: datatypes.JSON(raw),
		AuthorID:     authorID,
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("failed to create test job %s: %v", id, err)
	}
	return job
}

// CreateTestApplication inserts an application row.
func CreateTestApplication(t *testing.T, db *gorm.DB, id, userID, jobID, message string) *models.Application {
	t.Helper()

	application := &models.Application{
		ID:      id,
		UserID:  userID,
		JobID:   jobID,
		Message: message,
	}
	if err := db.Create(application).Error; err != nil {
		t.Fatalf("failed to create test application %s: %v", id, err)
	}
	return application
}
