package patient

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/medidash/clinic-api/internal/model"
	"github.com/medidash/clinic-api/internal/repository"
	apperrors "github.com/medidash/clinic-api/pkg/errors"
)

type PatientService interface {
	ListPatients(ctx context.Context, search string) []*model.Patient
	GetPatient(ctx context.Context, id string) (*model.Patient, error)
	CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id string, req *model.UpdatePatientRequest) error
	DeletePatient(ctx context.Context, id string) error
}

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

// ListPatients returns the collection newest-first, optionally filtered by a
// case-insensitive match against name or email.
func (s *Service) ListPatients(ctx context.Context, search string) []*model.Patient {
	patients := s.repo.List(ctx)
	if search == "" {
		return patients
	}

	term := strings.ToLower(search)
	filtered := make([]*model.Patient, 0, len(patients))
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Email), term) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (s *Service) GetPatient(ctx context.Context, id string) (*model.Patient, error) {
	patient, ok := s.repo.Get(ctx, id)
	if !ok {
		return nil, apperrors.NewNotFound("patient", nil)
	}
	return patient, nil
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidation("name is required")
	}

	patient := &model.Patient{
		Name:   req.Name,
		Age:    req.Age,
		Gender: req.Gender,
		Phone:  req.Phone,
		Email:  req.Email,
		Notes:  req.Notes,
	}
	s.repo.Create(ctx, patient)
	return patient, nil
}

// UpdatePatient merges the request into the matching record. An unknown id
// is a silent no-op.
func (s *Service) UpdatePatient(ctx context.Context, id string, req *model.UpdatePatientRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return apperrors.NewValidation("name is required")
	}

	if !s.repo.Update(ctx, id, req) {
		log.Debug().Str("id", id).Msg("update targeted unknown patient")
	}
	return nil
}

func (s *Service) DeletePatient(ctx context.Context, id string) error {
	if !s.repo.Delete(ctx, id) {
		log.Debug().Str("id", id).Msg("delete targeted unknown patient")
	}
	return nil
}
