package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type ListAppointmentsByBarber struct {
	repo domain.Repository
}

func NewListAppointmentsByBarber(repo domain.Repository) *ListAppointmentsByBarber {
	return &ListAppointmentsByBarber{repo: repo}
}

func (uc *ListAppointmentsByBarber) Execute(
	ctx context.Context,
	barberID uint,
) ([]models.Appointment, error) {

	if _, err := uc.repo.GetBarberByID(ctx, barberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("barber_not_found", "Barbeiro não encontrado.")
		}
		return nil, err
	}

	return uc.repo.ListAppointmentsByBarber(ctx, barberID)
}
