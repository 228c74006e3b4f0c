package kvstore

import (
	"context"
	"sync"
	"time"

	"github.com/medidash/clinic-api/internal/model"
	"github.com/medidash/clinic-api/internal/seed"
	"github.com/medidash/clinic-api/internal/store"
)

type PatientRepository struct {
	store store.Store

	mu       sync.Mutex
	loaded   bool
	patients []*model.Patient
}

func NewPatientRepository(s store.Store) *PatientRepository {
	return &PatientRepository{store: s}
}

// load pulls the collection from the store once, seeding the sample dataset
// when the slot is empty. Callers must hold r.mu.
func (r *PatientRepository) load(ctx context.Context) {
	if r.loaded {
		return
	}
	r.loaded = true

	var patients []*model.Patient
	if r.store.Get(ctx, store.KeyPatients, &patients) {
		r.patients = patients
		return
	}
	r.patients = seed.Patients(time.Now())
	r.store.Set(ctx, store.KeyPatients, r.patients)
}

func (r *PatientRepository) List(ctx context.Context) []*model.Patient {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)

	out := make([]*model.Patient, len(r.patients))
	copy(out, r.patients)
	return out
}

func (r *PatientRepository) Get(ctx context.Context, id string) (*model.Patient, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)

	for _, p := range r.patients {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Create assigns a fresh id and creation time, prepends the record and
// persists the collection.
func (r *PatientRepository) Create(ctx context.Context, patient *model.Patient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)

	patient.ID = newID("P-")
	patient.CreatedAt = time.Now()

	updated := make([]*model.Patient, 0, len(r.patients)+1)
	updated = append(updated, patient)
	updated = append(updated, r.patients...)

	r.patients = updated
	r.store.Set(ctx, store.KeyPatients, r.patients)
}

// Update merges the non-nil request fields into the matching record. Id and
// creation time are immutable. A missing id is a no-op.
func (r *PatientRepository) Update(ctx context.Context, id string, req *model.UpdatePatientRequest) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)

	found := false
	updated := make([]*model.Patient, len(r.patients))
	for i, p := range r.patients {
		if p.ID != id {
			updated[i] = p
			continue
		}
		found = true
		merged := *p
		if req.Name != nil {
			merged.Name = *req.Name
		}
		if req.Age != nil {
			merged.Age = *req.Age
		}
		if req.Gender != nil {
			merged.Gender = *req.Gender
		}
		if req.Phone != nil {
			merged.Phone = *req.Phone
		}
		if req.Email != nil {
			merged.Email = *req.Email
		}
		if req.Notes != nil {
			merged.Notes = *req.Notes
		}
		updated[i] = &merged
	}
	if !found {
		return false
	}

	r.patients = updated
	r.store.Set(ctx, store.KeyPatients, r.patients)
	return true
}

func (r *PatientRepository) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)

	updated := make([]*model.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		if p.ID != id {
			updated = append(updated, p)
		}
	}
	if len(updated) == len(r.patients) {
		return false
	}

	r.patients = updated
	r.store.Set(ctx, store.KeyPatients, r.patients)
	return true
}
