package analytics

import (
	"context"
	"time"

	"github.com/medidash/clinic-api/internal/model"
	"github.com/medidash/clinic-api/internal/repository"
)

// Summary backs the dashboard landing screen.
type Summary struct {
	TotalPatients     int                  `json:"totalPatients"`
	UpcomingCount     int                  `json:"upcomingAppointments"`
	LowStockCount     int                  `json:"lowStockMedicines"`
	RecentPatients    []*model.Patient     `json:"recentPatients"`
	TodayAppointments []*model.Appointment `json:"todayAppointments"`
}

// Overview backs the analytics screen.
type Overview struct {
	PatientsByGender     map[string]int    `json:"patientsByGender"`
	AppointmentsByDoctor map[string]int    `json:"appointmentsByDoctor"`
	MedicineStock        []*model.Medicine `json:"medicineStock"`
}

type Service struct {
	patients     repository.PatientRepository
	appointments repository.AppointmentRepository
	medicines    repository.MedicineRepository

	lowStockThreshold int
	todayListCap      int
}

func NewService(
	patients repository.PatientRepository,
	appointments repository.AppointmentRepository,
	medicines repository.MedicineRepository,
	lowStockThreshold, todayListCap int,
) *Service {
	return &Service{
		patients:          patients,
		appointments:      appointments,
		medicines:         medicines,
		lowStockThreshold: lowStockThreshold,
		todayListCap:      todayListCap,
	}
}

// Dashboard recomputes the summary from current snapshots.
func (s *Service) Dashboard(ctx context.Context, now time.Time) *Summary {
	patients := s.patients.List(ctx)
	appointments := s.appointments.List(ctx)
	medicines := s.medicines.List(ctx)

	recent := patients
	if len(recent) > s.todayListCap {
		recent = recent[:s.todayListCap]
	}

	return &Summary{
		TotalPatients:     len(patients),
		UpcomingCount:     UpcomingCount(appointments, now),
		LowStockCount:     LowStock(medicines, s.lowStockThreshold),
		RecentPatients:    recent,
		TodayAppointments: TodayAppointments(appointments, now, s.todayListCap),
	}
}

func (s *Service) Analytics(ctx context.Context) *Overview {
	return &Overview{
		PatientsByGender:     CountByGender(s.patients.List(ctx)),
		AppointmentsByDoctor: CountByDoctor(s.appointments.List(ctx)),
		MedicineStock:        s.medicines.List(ctx),
	}
}
