package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medidash/clinic-api/internal/model"
)

func TestMedicineRepositorySeedsOnEmptyStore(t *testing.T) {
	repo := NewMedicineRepository(newTestStore(t))
	medicines := repo.List(context.Background())
	require.Len(t, medicines, 5)
	assert.Equal(t, "Paracetamol", medicines[0].Name)
	assert.Equal(t, 20, medicines[0].Stock)
}

func TestMedicineRepositoryCreatePrepends(t *testing.T) {
	repo := NewMedicineRepository(newTestStore(t))
	ctx := context.Background()

	before := repo.List(ctx)
	repo.Create(ctx, &model.Medicine{Name: "Ibuprofen", Stock: 12, Price: 8})

	after := repo.List(ctx)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, "Ibuprofen", after[0].Name)
	assert.NotEmpty(t, after[0].ID)
}

func TestMedicineRepositoryIncrementStock(t *testing.T) {
	repo := NewMedicineRepository(newTestStore(t))
	ctx := context.Background()

	require.True(t, repo.IncrementStock(ctx, "M-300"))
	require.True(t, repo.IncrementStock(ctx, "M-300"))

	medicines := repo.List(ctx)
	assert.Equal(t, 22, medicines[0].Stock)
}

func TestMedicineRepositoryIncrementUnknownIDIsNoOp(t *testing.T) {
	repo := NewMedicineRepository(newTestStore(t))
	ctx := context.Background()

	before := repo.List(ctx)
	assert.False(t, repo.IncrementStock(ctx, "M-nope"))
	assert.Equal(t, before, repo.List(ctx))
}
