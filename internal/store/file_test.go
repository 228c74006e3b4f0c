package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medidash/clinic-api/internal/model"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	patients := []*model.Patient{
		{ID: "P-1", Name: "Asha", Age: 30, Gender: "F", Email: "asha@example.com", CreatedAt: time.Now().Truncate(time.Second)},
		{ID: "P-2", Name: "Paul", Gender: "M"},
	}
	s.Set(ctx, KeyPatients, patients)

	var loaded []*model.Patient
	require.True(t, s.Get(ctx, KeyPatients, &loaded))
	require.Len(t, loaded, 2)
	assert.Equal(t, "P-1", loaded[0].ID)
	assert.Equal(t, "Asha", loaded[0].Name)
	assert.Equal(t, 30, loaded[0].Age)
	assert.Equal(t, "P-2", loaded[1].ID)
}

func TestFileStoreUserSlotRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Set(ctx, KeyUser, &model.User{Email: "admin@clinic.com"})

	var user *model.User
	require.True(t, s.Get(ctx, KeyUser, &user))
	require.NotNil(t, user)
	assert.Equal(t, "admin@clinic.com", user.Email)

	// Clearing the session persists an explicit null.
	s.Set(ctx, KeyUser, nil)
	var cleared *model.User
	require.True(t, s.Get(ctx, KeyUser, &cleared))
	assert.Nil(t, cleared)
}

func TestFileStoreMissingSlotKeepsFallback(t *testing.T) {
	s := newTestStore(t)

	medicines := []*model.Medicine{{ID: "M-1", Name: "fallback"}}
	assert.False(t, s.Get(context.Background(), KeyMedicines, &medicines))
	// The fallback the caller brought in is untouched.
	require.Len(t, medicines, 1)
	assert.Equal(t, "fallback", medicines[0].Name)
}

func TestFileStoreCorruptSlotKeepsFallback(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyPatients+".json"), []byte("{not json"), 0o644))

	var patients []*model.Patient
	assert.False(t, s.Get(context.Background(), KeyPatients, &patients))
	assert.Nil(t, patients)
}

func TestFileStoreSetOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Set(ctx, KeyMedicines, []*model.Medicine{{ID: "M-1", Stock: 5}})
	s.Set(ctx, KeyMedicines, []*model.Medicine{{ID: "M-2", Stock: 9}})

	var loaded []*model.Medicine
	require.True(t, s.Get(ctx, KeyMedicines, &loaded))
	require.Len(t, loaded, 1)
	assert.Equal(t, "M-2", loaded[0].ID)
}
