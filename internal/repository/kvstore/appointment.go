package kvstore

import (
	"context"
	"sync"
	"time"

	"github.com/medidash/clinic-api/internal/model"
	"github.com/medidash/clinic-api/internal/repository"
	"github.com/medidash/clinic-api/internal/seed"
	"github.com/medidash/clinic-api/internal/store"
)

type AppointmentRepository struct {
	store    store.Store
	patients repository.PatientRepository

	mu           sync.Mutex
	loaded       bool
	appointments []*model.Appointment
}

// NewAppointmentRepository needs the patient repository so that first-run
// seeding can target the current patient records, one appointment each.
func NewAppointmentRepository(s store.Store, patients repository.PatientRepository) *AppointmentRepository {
	return &AppointmentRepository{store: s, patients: patients}
}

func (r *AppointmentRepository) load(ctx context.Context) {
	if r.loaded {
		return
	}
	r.loaded = true

	var appointments []*model.Appointment
	if r.store.Get(ctx, store.KeyAppointments, &appointments) {
		r.appointments = appointments
		return
	}
	r.appointments = seed.Appointments(r.patients.List(ctx), time.Now())
	r.store.Set(ctx, store.KeyAppointments, r.appointments)
}

func (r *AppointmentRepository) List(ctx context.Context) []*model.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)

	out := make([]*model.Appointment, len(r.appointments))
	copy(out, r.appointments)
	return out
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)

	appointment.ID = newID("A-")

	updated := make([]*model.Appointment, 0, len(r.appointments)+1)
	updated = append(updated, appointment)
	updated = append(updated, r.appointments...)

	r.appointments = updated
	r.store.Set(ctx, store.KeyAppointments, r.appointments)
}

// UpdateStatus sets the status on the matching record. A missing id leaves
// the collection untouched.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)

	found := false
	updated := make([]*model.Appointment, len(r.appointments))
	for i, a := range r.appointments {
		if a.ID != id {
			updated[i] = a
			continue
		}
		found = true
		changed := *a
		changed.Status = status
		updated[i] = &changed
	}
	if !found {
		return false
	}

	r.appointments = updated
	r.store.Set(ctx, store.KeyAppointments, r.appointments)
	return true
}
