package medicine

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/medidash/clinic-api/internal/model"
	"github.com/medidash/clinic-api/internal/repository"
	apperrors "github.com/medidash/clinic-api/pkg/errors"
)

type MedicineService interface {
	ListMedicines(ctx context.Context) []*model.Medicine
	CreateMedicine(ctx context.Context, req *model.CreateMedicineRequest) (*model.Medicine, error)
	IncrementStock(ctx context.Context, id string) error
}

type Service struct {
	repo repository.MedicineRepository
}

func NewService(repo repository.MedicineRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListMedicines(ctx context.Context) []*model.Medicine {
	return s.repo.List(ctx)
}

func (s *Service) CreateMedicine(ctx context.Context, req *model.CreateMedicineRequest) (*model.Medicine, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidation("medicine name is required")
	}

	medicine := &model.Medicine{
		Name:  req.Name,
		Stock: req.Stock,
		Price: req.Price,
	}
	s.repo.Create(ctx, medicine)
	return medicine, nil
}

// IncrementStock adds exactly one unit. An unknown id is a silent no-op.
func (s *Service) IncrementStock(ctx context.Context, id string) error {
	if !s.repo.IncrementStock(ctx, id) {
		log.Debug().Str("id", id).Msg("stock increment targeted unknown medicine")
	}
	return nil
}
