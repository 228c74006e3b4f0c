package report

import (
	"context"
	"time"

	"github.com/medidash/clinic-api/internal/model"
)

type fakePatientRepo struct {
	empty bool
}

func (f *fakePatientRepo) List(context.Context) []*model.Patient {
	if f.empty {
		return nil
	}
	return []*model.Patient{
		{ID: "P-1", Name: "Asha", Age: 30, Gender: "F", CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func (f *fakePatientRepo) Get(context.Context, string) (*model.Patient, bool) { return nil, false }
func (f *fakePatientRepo) Create(context.Context, *model.Patient)             {}
func (f *fakePatientRepo) Update(context.Context, string, *model.UpdatePatientRequest) bool {
	return false
}
func (f *fakePatientRepo) Delete(context.Context, string) bool { return false }

type fakeAppointmentRepo struct {
	empty bool
}

func (f *fakeAppointmentRepo) List(context.Context) []*model.Appointment {
	if f.empty {
		return nil
	}
	return []*model.Appointment{
		{ID: "A-1", PatientID: "P-1", Title: "Checkup", Doctor: "Dr. Sen",
			Datetime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			Status:   model.AppointmentStatusScheduled},
	}
}

func (f *fakeAppointmentRepo) Create(context.Context, *model.Appointment) {}
func (f *fakeAppointmentRepo) UpdateStatus(context.Context, string, model.AppointmentStatus) bool {
	return false
}
