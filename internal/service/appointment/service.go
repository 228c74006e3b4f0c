package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/medidash/clinic-api/internal/model"
	"github.com/medidash/clinic-api/internal/repository"
	apperrors "github.com/medidash/clinic-api/pkg/errors"
)

type AppointmentService interface {
	ListAppointments(ctx context.Context) []*model.Appointment
	CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}

type Service struct {
	repo repository.AppointmentRepository
}

func NewService(repo repository.AppointmentRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAppointments(ctx context.Context) []*model.Appointment {
	return s.repo.List(ctx)
}

// CreateAppointment requires a patient id; the reference is not checked
// against the patient collection. Status defaults to Scheduled and the time
// defaults to now, matching the booking form's prefill.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if strings.TrimSpace(req.PatientID) == "" {
		return nil, apperrors.NewValidation("patient is required")
	}

	status := model.AppointmentStatus(req.Status)
	if req.Status == "" {
		status = model.AppointmentStatusScheduled
	}
	if !status.Valid() {
		return nil, apperrors.NewValidation("invalid appointment status")
	}

	datetime := req.Datetime
	if datetime.IsZero() {
		datetime = time.Now()
	}

	appointment := &model.Appointment{
		PatientID: req.PatientID,
		Title:     req.Title,
		Doctor:    req.Doctor,
		Datetime:  datetime,
		Status:    status,
	}
	s.repo.Create(ctx, appointment)
	return appointment, nil
}

// UpdateStatus moves the matching appointment into the given state. An
// unknown id is a silent no-op.
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) error {
	next := model.AppointmentStatus(status)
	if !next.Valid() {
		return apperrors.NewValidation("invalid appointment status")
	}

	if !s.repo.UpdateStatus(ctx, id, next) {
		log.Debug().Str("id", id).Msg("status change targeted unknown appointment")
	}
	return nil
}
