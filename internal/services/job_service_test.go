package services

import (
	"testing"

	"workhubb_backend/internal/apperrors"
	"workhubb_backend/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func createJobRequest(authorID string) *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		Title:        "Backend Engineer",
		Company:      "Acme",
		Location:     "Lisbon",
		Remote:       boolPtr(true),
		Description:  "Build the API",
		Requirements: []string{"React", "Node"},
		AuthorID:     authorID,
	}
}

func TestJobService_Create(t *testing.T) {
	t.Run("requirements survive the round trip in order", func(t *testing.T) {
		svc, db := newJobService(t)
		seedUser(t, db, "author1", "Ana", "a@b.c")

		created, err := svc.Create(createJobRequest("author1"))
		require.NoError(t, err)
		assert.Equal(t, []string{"React", "Node"}, created.Requirements)

		fetched, err := svc.GetByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"React", "Node"}, fetched.Requirements)
	})

	t.Run("assigns an id when the client sends none", func(t *testing.T) {
		svc, db := newJobService(t)
		seedUser(t, db, "author1", "Ana", "a@b.c")

		created, err := svc.Create(createJobRequest("author1"))
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("unknown author is rejected up front", func(t *testing.T) {
		svc, _ := newJobService(t)

		_, err := svc.Create(createJobRequest("ghost"))
		assert.ErrorIs(t, err, apperrors.ErrAuthorNotFound)
	})
}

func TestJobService_Update(t *testing.T) {
	t.Run("replaces requirements wholesale", func(t *testing.T) {
		svc, db := newJobService(t)
		seedUser(t, db, "author1", "Ana", "a@b.c")

		created, err := svc.Create(createJobRequest("author1"))
		require.NoError(t, err)

		updated, err := svc.Update(created.ID, &dto.UpdateJobRequest{
			Requirements: []string{"Go"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Go"}, updated.Requirements)
		assert.Equal(t, "Backend Engineer", updated.Title)
	})

	t.Run("unknown id is not-found", func(t *testing.T) {
		svc, _ := newJobService(t)

		title := "X"
		_, err := svc.Update("missing", &dto.UpdateJobRequest{Title: &title})
		assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
	})
}

func TestJobService_Delete(t *testing.T) {
	t.Run("removes the listing", func(t *testing.T) {
		svc, db := newJobService(t)
		seedUser(t, db, "author1", "Ana", "a@b.c")

		created, err := svc.Create(createJobRequest("author1"))
		require.NoError(t, err)

		require.NoError(t, svc.Delete(created.ID))

		_, err = svc.GetByID(created.ID)
		assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
	})

	t.Run("unknown id is not-found", func(t *testing.T) {
		svc, _ := newJobService(t)
		assert.ErrorIs(t, svc.Delete("missing"), apperrors.ErrJobNotFound)
	})
}

func TestJobService_ListByAuthor(t *testing.T) {
	svc, db := newJobService(t)
	seedUser(t, db, "author1", "Ana", "a@b.c")
	seedUser(t, db, "author2", "Bob", "b@b.c")

	_, err := svc.Create(createJobRequest("author1"))
	require.NoError(t, err)
	_, err = svc.Create(createJobRequest("author2"))
	require.NoError(t, err)

	jobs, err := svc.ListByAuthor("author1")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "author1", jobs[0].AuthorID)
}
