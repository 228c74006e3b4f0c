// Package seed synthesizes the deterministic sample dataset a fresh install
// starts with. Every value is derived from the record index so repeated runs
// against an empty store produce the same fixtures.
package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/medidash/clinic-api/internal/model"
)

var (
	patientNames = []string{"Asha", "Rakesh", "Maya", "John Doe", "Fatima", "Arjun", "Lina Gomez", "Paul"}
	doctorRoster = []string{"Dr. Suraj", "Dr. Sen", "Dr. Alex"}
	medicineName = []string{"Paracetamol", "Amoxicillin", "Metformin", "Amlodipine", "Cetirizine"}

	statusCycle = []model.AppointmentStatus{
		model.AppointmentStatusScheduled,
		model.AppointmentStatusCompleted,
		model.AppointmentStatusCancelled,
	}
)

// Patients returns the 8 sample patients, createdAt backdated by the record
// index in days so the list reads newest-first.
func Patients(now time.Time) []*model.Patient {
	patients := make([]*model.Patient, 0, len(patientNames))
	for i, name := range patientNames {
		first := strings.ToLower(strings.Fields(name)[0])
		patients = append(patients, &model.Patient{
			ID:        fmt.Sprintf("P-%d", 1000+i),
			Name:      name,
			Age:       20 + (i*5)%60,
			Gender:    []string{"F", "M"}[i%2],
			Phone:     fmt.Sprintf("+91-90000%d", 10000+i),
			Email:     first + "@example.com",
			Notes:     "No critical allergies",
			CreatedAt: now.AddDate(0, 0, -i),
		})
	}
	return patients
}

// Appointments returns one appointment per sample patient, offset forwards
// by the index in days, with doctor and status cycled.
func Appointments(patients []*model.Patient, now time.Time) []*model.Appointment {
	appointments := make([]*model.Appointment, 0, len(patients))
	for i, p := range patients {
		appointments = append(appointments, &model.Appointment{
			ID:        fmt.Sprintf("A-%d", 2000+i),
			PatientID: p.ID,
			Title:     "General Consultation",
			Doctor:    doctorRoster[i%len(doctorRoster)],
			Datetime:  now.AddDate(0, 0, i),
			Status:    statusCycle[i%len(statusCycle)],
		})
	}
	return appointments
}

// Medicines returns the 5 sample inventory entries.
func Medicines() []*model.Medicine {
	medicines := make([]*model.Medicine, 0, len(medicineName))
	for i, name := range medicineName {
		medicines = append(medicines, &model.Medicine{
			ID:    fmt.Sprintf("M-%d", 300+i),
			Name:  name,
			Stock: 20 + i*5,
			Price: float64(10 + i*15),
		})
	}
	return medicines
}
