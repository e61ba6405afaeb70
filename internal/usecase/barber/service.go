package barber

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// Repository é o contrato de persistência que o CRUD de barbeiros
// precisa. A implementação gorm vive em internal/infra/repository.
type Repository interface {
	Create(ctx context.Context, barber *models.Barber) error
	GetByID(ctx context.Context, id uint) (*models.Barber, error)
	GetByName(ctx context.Context, name string) (*models.Barber, error)
	List(ctx context.Context, offset, limit int) ([]models.Barber, int64, error)
	Update(ctx context.Context, barber *models.Barber) error
	Delete(ctx context.Context, id uint) error
}

type CreateInput struct {
	Name  string
	Phone string
}

type UpdateInput struct {
	Name  *string
	Phone *string
}

type Service struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewService(repo Repository, audit *audit.Dispatcher) *Service {
	return &Service{repo: repo, audit: audit}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Barber, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrValidation("invalid_name", "Nome do barbeiro é obrigatório.")
	}

	if existing, err := s.repo.GetByName(ctx, name); err == nil && existing != nil {
		return nil, httperr.ErrConflict("barber_already_exists", "Já existe um barbeiro com esse nome.")
	}

	barber := &models.Barber{
		Name:  name,
		Phone: strings.TrimSpace(in.Phone),
	}

	if err := s.repo.Create(ctx, barber); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	return barber, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Barber, error) {
	barber, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("barber_not_found", "Barbeiro não encontrado.")
		}
		return nil, err
	}
	return barber, nil
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]models.Barber, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *Service) Update(ctx context.Context, id uint, in UpdateInput) (*models.Barber, error) {
	barber, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.ErrValidation("invalid_name", "Nome do barbeiro é obrigatório.")
		}
		if existing, err := s.repo.GetByName(ctx, name); err == nil && existing != nil && existing.ID != id {
			return nil, httperr.ErrConflict("barber_already_exists", "Já existe um barbeiro com esse nome.")
		}
		barber.Name = name
	}
	if in.Phone != nil {
		barber.Phone = strings.TrimSpace(*in.Phone)
	}

	if err := s.repo.Update(ctx, barber); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "barber_updated",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	return barber, nil
}

// Delete remove o barbeiro permanentemente. Os agendamentos do
// barbeiro caem junto via FK em cascata.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrNotFound("barber_not_found", "Barbeiro não encontrado.")
		}
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: &id,
	})

	return nil
}
