package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medidash/clinic-api/internal/model"
)

func TestPatientsFixture(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	patients := Patients(now)
	require.Len(t, patients, 8)

	assert.Equal(t, "P-1000", patients[0].ID)
	assert.Equal(t, "Asha", patients[0].Name)
	assert.Equal(t, 20, patients[0].Age)
	assert.Equal(t, "F", patients[0].Gender)
	assert.Equal(t, "asha@example.com", patients[0].Email)
	assert.Equal(t, now, patients[0].CreatedAt)

	// Genders alternate, ages step by 5 mod 60, createdAt backdates by i days.
	for i, p := range patients {
		assert.Equal(t, []string{"F", "M"}[i%2], p.Gender)
		assert.Equal(t, 20+(i*5)%60, p.Age)
		assert.Equal(t, now.AddDate(0, 0, -i), p.CreatedAt)
		assert.NotEmpty(t, p.Phone)
	}

	// Multi-word names keep only the first word in the email.
	assert.Equal(t, "john@example.com", patients[3].Email)
	assert.Equal(t, "lina@example.com", patients[6].Email)
}

func TestAppointmentsFixture(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	patients := Patients(now)
	appointments := Appointments(patients, now)
	require.Len(t, appointments, 8)

	roster := []string{"Dr. Suraj", "Dr. Sen", "Dr. Alex"}
	statuses := []model.AppointmentStatus{
		model.AppointmentStatusScheduled,
		model.AppointmentStatusCompleted,
		model.AppointmentStatusCancelled,
	}
	for i, a := range appointments {
		assert.Equal(t, patients[i].ID, a.PatientID)
		assert.Equal(t, "General Consultation", a.Title)
		assert.Equal(t, roster[i%3], a.Doctor)
		assert.Equal(t, statuses[i%3], a.Status)
		assert.Equal(t, now.AddDate(0, 0, i), a.Datetime)
	}
}

func TestMedicinesFixture(t *testing.T) {
	medicines := Medicines()
	require.Len(t, medicines, 5)

	assert.Equal(t, "M-300", medicines[0].ID)
	assert.Equal(t, "Paracetamol", medicines[0].Name)
	for i, m := range medicines {
		assert.Equal(t, 20+i*5, m.Stock)
		assert.Equal(t, float64(10+i*15), m.Price)
	}
}

func TestFixturesAreDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Patients(now), Patients(now))
	assert.Equal(t, Medicines(), Medicines())
}
