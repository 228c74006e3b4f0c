package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Valid reports whether s is one of the three appointment states.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment references a patient by id only; a dangling PatientID is
// tolerated and rendered as the raw id string.
type Appointment struct {
	ID        string            `json:"id"`
	PatientID string            `json:"patientId"`
	Title     string            `json:"title"`
	Doctor    string            `json:"doctor"`
	Datetime  time.Time         `json:"datetime"`
	Status    AppointmentStatus `json:"status"`
}

type CreateAppointmentRequest struct {
	PatientID string    `json:"patientId" binding:"required"`
	Title     string    `json:"title"`
	Doctor    string    `json:"doctor"`
	Datetime  time.Time `json:"datetime"`
	Status    string    `json:"status" binding:"omitempty,oneof=Scheduled Completed Cancelled"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Scheduled Completed Cancelled"`
}
