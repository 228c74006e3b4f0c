package repository

import (
	"context"

	"github.com/medidash/clinic-api/internal/model"
)

// Collection repositories own the in-memory ordered sequences and mirror
// every mutation write-through to the store adapter. Mutators are total:
// they cannot fail, and a missing id is a silent no-op reported through the
// boolean return.

type PatientRepository interface {
	List(ctx context.Context) []*model.Patient
	Get(ctx context.Context, id string) (*model.Patient, bool)
	Create(ctx context.Context, patient *model.Patient)
	Update(ctx context.Context, id string, req *model.UpdatePatientRequest) bool
	Delete(ctx context.Context, id string) bool
}

type AppointmentRepository interface {
	List(ctx context.Context) []*model.Appointment
	Create(ctx context.Context, appointment *model.Appointment)
	UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) bool
}

type MedicineRepository interface {
	List(ctx context.Context) []*model.Medicine
	Create(ctx context.Context, medicine *model.Medicine)
	IncrementStock(ctx context.Context, id string) bool
}

// SessionRepository persists the current operator identity to the user slot.
type SessionRepository interface {
	Get(ctx context.Context) *model.User
	Set(ctx context.Context, user *model.User)
	Clear(ctx context.Context)
}
