package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/timezone"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type ListAppointmentsInput struct {
	Status   string
	BarberID *uint
	Date     string

	Offset int
	Limit  int
}

type ListAppointments struct {
	repo domain.Repository
	tz   string
}

func NewListAppointments(repo domain.Repository, tz string) *ListAppointments {
	return &ListAppointments{repo: repo, tz: tz}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]models.Appointment, int64, error) {

	if in.Status != "" && !domain.Status(in.Status).Valid() {
		return nil, 0, httperr.ErrValidation("invalid_status", "Status inválido.")
	}

	filter := domain.ListFilter{
		Status:   in.Status,
		BarberID: in.BarberID,
		Offset:   in.Offset,
		Limit:    in.Limit,
	}

	if in.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", in.Date, timezone.Location(uc.tz))
		if err != nil {
			return nil, 0, httperr.ErrValidation("invalid_date", "Data inválida. Use YYYY-MM-DD.")
		}
		filter.Date = &day
	}

	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	return uc.repo.ListAppointments(ctx, filter)
}
