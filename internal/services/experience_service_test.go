package services

import (
	"testing"

	"workhubb_backend/internal/apperrors"
	"workhubb_backend/internal/dto"
	"workhubb_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExperienceService(t *testing.T) *ExperienceService {
	return NewExperienceService(repositories.NewExperienceRepository(newTestDB(t)))
}

func TestExperienceService_Create(t *testing.T) {
	t.Run("current position drops any end date", func(t *testing.T) {
		svc := newExperienceService(t)

		created, err := svc.Create(&dto.CreateExperienceRequest{
			UserID:    "u1",
			Title:     "Engineer",
			Company:   "Acme",
			StartDate: "Jan 2023",
			EndDate:   strPtr("Dec 2024"),
			Current:   true,
		})
		require.NoError(t, err)
		assert.True(t, created.Current)
		assert.Nil(t, created.EndDate)
	})

	t.Run("past position keeps its end date", func(t *testing.T) {
		svc := newExperienceService(t)

		created, err := svc.Create(&dto.CreateExperienceRequest{
			UserID:    "u1",
			Title:     "Engineer",
			Company:   "Acme",
			StartDate: "Jan 2020",
			EndDate:   strPtr("Dec 2022"),
		})
		require.NoError(t, err)
		require.NotNil(t, created.EndDate)
		assert.Equal(t, "Dec 2022", *created.EndDate)
	})
}

func TestExperienceService_Update(t *testing.T) {
	t.Run("marking current clears the stored end date", func(t *testing.T) {
		svc := newExperienceService(t)

		created, err := svc.Create(&dto.CreateExperienceRequest{
			UserID:    "u1",
			Title:     "Engineer",
			Company:   "Acme",
			StartDate: "Jan 2020",
			EndDate:   strPtr("Dec 2022"),
		})
		require.NoError(t, err)

		current := true
		updated, err := svc.Update(created.ID, &dto.UpdateExperienceRequest{Current: &current})
		require.NoError(t, err)
		assert.True(t, updated.Current)
		assert.Nil(t, updated.EndDate)
	})

	t.Run("unknown id is not-found", func(t *testing.T) {
		svc := newExperienceService(t)

		title := "X"
		_, err := svc.Update("missing", &dto.UpdateExperienceRequest{Title: &title})
		assert.ErrorIs(t, err, apperrors.ErrExperienceNotFound)
	})
}

func TestExperienceService_Delete(t *testing.T) {
	t.Run("removes the entry", func(t *testing.T) {
		svc := newExperienceService(t)

		created, err := svc.Create(&dto.CreateExperienceRequest{
			UserID:    "u1",
			Title:     "Engineer",
			Company:   "Acme",
			StartDate: "Jan 2023",
			Current:   true,
		})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(created.ID))

		_, err = svc.GetByID(created.ID)
		assert.ErrorIs(t, err, apperrors.ErrExperienceNotFound)
	})

	t.Run("deleting a missing entry is not-found", func(t *testing.T) {
		svc := newExperienceService(t)
		assert.ErrorIs(t, svc.Delete("missing"), apperrors.ErrExperienceNotFound)
	})
}
