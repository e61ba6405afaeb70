package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type Repository interface {
	Create(ctx context.Context, svc *models.Service) error
	GetByID(ctx context.Context, id uint) (*models.Service, error)
	GetByName(ctx context.Context, name string) (*models.Service, error)
	List(ctx context.Context, offset, limit int) ([]models.Service, int64, error)
	Update(ctx context.Context, svc *models.Service) error
	Delete(ctx context.Context, id uint) error
}

type CreateInput struct {
	Name        string
	DurationMin int
	Price       float64
}

type UpdateInput struct {
	Name        *string
	DurationMin *int
	Price       *float64
}

type Service struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewService(repo Repository, audit *audit.Dispatcher) *Service {
	return &Service{repo: repo, audit: audit}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Service, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrValidation("invalid_name", "Nome do serviço é obrigatório.")
	}
	if in.DurationMin <= 0 {
		return nil, httperr.ErrValidation("invalid_duration", "Duração deve ser maior que zero.")
	}
	if in.Price <= 0 {
		return nil, httperr.ErrValidation("invalid_price", "Preço deve ser maior que zero.")
	}

	if existing, err := s.repo.GetByName(ctx, name); err == nil && existing != nil {
		return nil, httperr.ErrConflict("service_already_exists", "Já existe um serviço com esse nome.")
	}

	svc := &models.Service{
		Name:        name,
		DurationMin: in.DurationMin,
		Price:       in.Price,
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return svc, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("service_not_found", "Serviço não encontrado.")
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]models.Service, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *Service) Update(ctx context.Context, id uint, in UpdateInput) (*models.Service, error) {
	svc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.ErrValidation("invalid_name", "Nome do serviço é obrigatório.")
		}
		if existing, err := s.repo.GetByName(ctx, name); err == nil && existing != nil && existing.ID != id {
			return nil, httperr.ErrConflict("service_already_exists", "Já existe um serviço com esse nome.")
		}
		svc.Name = name
	}
	if in.DurationMin != nil {
		if *in.DurationMin <= 0 {
			return nil, httperr.ErrValidation("invalid_duration", "Duração deve ser maior que zero.")
		}
		svc.DurationMin = *in.DurationMin
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, httperr.ErrValidation("invalid_price", "Preço deve ser maior que zero.")
		}
		svc.Price = *in.Price
	}

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return svc, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrNotFound("service_not_found", "Serviço não encontrado.")
		}
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})

	return nil
}
