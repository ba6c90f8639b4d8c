package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	s, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/files"})
	require.NoError(t, err)
	return s
}

func TestLocalStorageSaveGetDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	err := s.Save(ctx, "profile-photos/avatar-1.jpg", strings.NewReader("fake-image-bytes"), "image/jpeg")
	require.NoError(t, err)

	exists, err := s.Exists(ctx, "profile-photos/avatar-1.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := s.Get(ctx, "profile-photos/avatar-1.jpg")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, "fake-image-bytes", string(data))

	require.NoError(t, s.Delete(ctx, "profile-photos/avatar-1.jpg"))

	exists, err = s.Exists(ctx, "profile-photos/avatar-1.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorageDeleteMissingIsNoop(t *testing.T) {
	s := newTestStorage(t)
	assert.NoError(t, s.Delete(context.Background(), "never-existed.jpg"))
}

func TestLocalStorageGetURL(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	url, err := s.GetURL(ctx, "profile-photos/a.png")
	assert.NoError(t, err)
	assert.Equal(t, "/files/profile-photos/a.png", url)
}
