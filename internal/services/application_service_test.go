package services

import (
	"testing"

	"workhubb_backend/internal/apperrors"
	"workhubb_backend/internal/dto"
	"workhubb_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newApplicationService(t *testing.T) (*ApplicationService, *JobService, *gorm.DB) {
	db := newTestDB(t)
	jobSvc := NewJobService(repositories.NewJobRepository(db), repositories.NewUserRepository(db))
	appSvc := NewApplicationService(repositories.NewApplicationRepository(db), jobSvc)
	return appSvc, jobSvc, db
}

func TestApplicationService_Create(t *testing.T) {
	t.Run("check flips from false to true after applying", func(t *testing.T) {
		svc, jobSvc, db := newApplicationService(t)
		seedUser(t, db, "u1", "Ana", "a@b.c")
		job, err := jobSvc.Create(createJobRequest("u1"))
		require.NoError(t, err)

		applied, err := svc.HasApplied("u1", job.ID)
		require.NoError(t, err)
		assert.False(t, applied)

		_, err = svc.Create(&dto.CreateApplicationRequest{
			UserID: "u1", JobID: job.ID, Message: "hire me",
		})
		require.NoError(t, err)

		applied, err = svc.HasApplied("u1", job.ID)
		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("second application for the same pair conflicts", func(t *testing.T) {
		svc, jobSvc, db := newApplicationService(t)
		seedUser(t, db, "u1", "Ana", "a@b.c")
		job, err := jobSvc.Create(createJobRequest("u1"))
		require.NoError(t, err)

		req := &dto.CreateApplicationRequest{UserID: "u1", JobID: job.ID, Message: "hire me"}
		_, err = svc.Create(req)
		require.NoError(t, err)

		_, err = svc.Create(req)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)

		// Exactly one row survives.
		applications, err := svc.ListByUser("u1")
		require.NoError(t, err)
		assert.Len(t, applications, 1)
	})

	t.Run("same user may apply to different jobs", func(t *testing.T) {
		svc, jobSvc, db := newApplicationService(t)
		seedUser(t, db, "u1", "Ana", "a@b.c")
		job1, err := jobSvc.Create(createJobRequest("u1"))
		require.NoError(t, err)
		job2, err := jobSvc.Create(createJobRequest("u1"))
		require.NoError(t, err)

		_, err = svc.Create(&dto.CreateApplicationRequest{UserID: "u1", JobID: job1.ID, Message: "one"})
		require.NoError(t, err)
		_, err = svc.Create(&dto.CreateApplicationRequest{UserID: "u1", JobID: job2.ID, Message: "two"})
		require.NoError(t, err)

		applications, err := svc.ListByUser("u1")
		require.NoError(t, err)
		assert.Len(t, applications, 2)
	})
}

func TestApplicationService_ListByJob(t *testing.T) {
	svc, jobSvc, db := newApplicationService(t)
	seedUser(t, db, "u1", "Ana", "a@b.c")
	seedUser(t, db, "u2", "Bob", "b@b.c")
	job, err := jobSvc.Create(createJobRequest("u1"))
	require.NoError(t, err)

	_, err = svc.Create(&dto.CreateApplicationRequest{UserID: "u2", JobID: job.ID, Message: "hi"})
	require.NoError(t, err)

	applicants, err := svc.ListByJob(job.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	require.NotNil(t, applicants[0].User)
	assert.Equal(t, "Bob", applicants[0].User.Name)
}

func TestApplicationService_ListWithDetails(t *testing.T) {
	svc, jobSvc, db := newApplicationService(t)
	seedUser(t, db, "u1", "Ana", "a@b.c")
	job, err := jobSvc.Create(createJobRequest("u1"))
	require.NoError(t, err)

	_, err = svc.Create(&dto.CreateApplicationRequest{UserID: "u1", JobID: job.ID, Message: "hi"})
	require.NoError(t, err)

	details, err := svc.ListWithDetails()
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.NotNil(t, details[0].User)
	require.NotNil(t, details[0].Job)
	assert.Equal(t, []string{"React", "Node"}, details[0].Job.Requirements)
}
