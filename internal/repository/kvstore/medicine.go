package kvstore

import (
	"context"
	"sync"

	"github.com/medidash/clinic-api/internal/model"
	"github.com/medidash/clinic-api/internal/seed"
	"github.com/medidash/clinic-api/internal/store"
)

type MedicineRepository struct {
	store store.Store

	mu        sync.Mutex
	loaded    bool
	medicines []*model.Medicine
}

func NewMedicineRepository(s store.Store) *MedicineRepository {
	return &MedicineRepository{store: s}
}

func (r *MedicineRepository) load(ctx context.Context) {
	if r.loaded {
		return
	}
	r.loaded = true

	var medicines []*model.Medicine
	if r.store.Get(ctx, store.KeyMedicines, &medicines) {
		r.medicines = medicines
		return
	}
	r.medicines = seed.Medicines()
	r.store.Set(ctx, store.KeyMedicines, r.medicines)
}

func (r *MedicineRepository) List(ctx context.Context) []*model.Medicine {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)

	out := make([]*model.Medicine, len(r.medicines))
	copy(out, r.medicines)
	return out
}

func (r *MedicineRepository) Create(ctx context.Context, medicine *model.Medicine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)

	medicine.ID = newID("M-")

	updated := make([]*model.Medicine, 0, len(r.medicines)+1)
	updated = append(updated, medicine)
	updated = append(updated, r.medicines...)

	r.medicines = updated
	r.store.Set(ctx, store.KeyMedicines, r.medicines)
}

// IncrementStock bumps the matching record's stock by exactly one.
func (r *MedicineRepository) IncrementStock(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)

	found := false
	updated := make([]*model.Medicine, len(r.medicines))
	for i, m := range r.medicines {
		if m.ID != id {
			updated[i] = m
			continue
		}
		found = true
		changed := *m
		changed.Stock++
		updated[i] = &changed
	}
	if !found {
		return false
	}

	r.medicines = updated
	r.store.Set(ctx, store.KeyMedicines, r.medicines)
	return true
}
