package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medidash/clinic-api/internal/model"
	"github.com/medidash/clinic-api/internal/store"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestPatientRepositorySeedsOnEmptyStore(t *testing.T) {
	repo := NewPatientRepository(newTestStore(t))
	patients := repo.List(context.Background())
	require.Len(t, patients, 8)
	assert.Equal(t, "P-1000", patients[0].ID)
}

func TestPatientRepositorySeedIsIdempotent(t *testing.T) {
	kv := newTestStore(t)
	ctx := context.Background()

	first := NewPatientRepository(kv)
	first.Delete(ctx, "P-1000")

	// A fresh process sees the persisted collection, not a re-seed.
	second := NewPatientRepository(kv)
	patients := second.List(ctx)
	require.Len(t, patients, 7)
	for _, p := range patients {
		assert.NotEqual(t, "P-1000", p.ID)
	}
}

func TestPatientRepositoryCreatePrepends(t *testing.T) {
	kv := newTestStore(t)
	repo := NewPatientRepository(kv)
	ctx := context.Background()

	before := repo.List(ctx)
	repo.Create(ctx, &model.Patient{Name: "New Patient"})

	after := repo.List(ctx)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, "New Patient", after[0].Name)
	assert.NotEmpty(t, after[0].ID)
	assert.False(t, after[0].CreatedAt.IsZero())

	seen := make(map[string]bool)
	for _, p := range after {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}

	// The write went through to the store.
	var persisted []*model.Patient
	require.True(t, kv.Get(ctx, store.KeyPatients, &persisted))
	assert.Len(t, persisted, len(before)+1)
}

func TestPatientRepositoryUpdateMerges(t *testing.T) {
	repo := NewPatientRepository(newTestStore(t))
	ctx := context.Background()

	original, ok := repo.Get(ctx, "P-1001")
	require.True(t, ok)

	name := "Renamed"
	age := 44
	require.True(t, repo.Update(ctx, "P-1001", &model.UpdatePatientRequest{Name: &name, Age: &age}))

	updated, ok := repo.Get(ctx, "P-1001")
	require.True(t, ok)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 44, updated.Age)
	// Untouched fields and the immutable ones survive the merge.
	assert.Equal(t, original.Gender, updated.Gender)
	assert.Equal(t, original.Phone, updated.Phone)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
}

func TestPatientRepositoryUpdateUnknownIDIsNoOp(t *testing.T) {
	repo := NewPatientRepository(newTestStore(t))
	ctx := context.Background()

	before := repo.List(ctx)
	name := "Ghost"
	assert.False(t, repo.Update(ctx, "P-nope", &model.UpdatePatientRequest{Name: &name}))
	assert.Equal(t, before, repo.List(ctx))
}

func TestPatientRepositoryDelete(t *testing.T) {
	repo := NewPatientRepository(newTestStore(t))
	ctx := context.Background()

	before := repo.List(ctx)
	require.True(t, repo.Delete(ctx, "P-1002"))

	after := repo.List(ctx)
	require.Len(t, after, len(before)-1)
	for _, p := range after {
		assert.NotEqual(t, "P-1002", p.ID)
	}

	// Deleting an unknown id changes nothing.
	assert.False(t, repo.Delete(ctx, "P-1002"))
	assert.Equal(t, after, repo.List(ctx))
}
