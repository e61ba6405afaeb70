package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
	tz   string
}

func NewGetAvailability(repo domain.Repository, tz string) *GetAvailability {
	return &GetAvailability{repo: repo, tz: tz}
}

// Execute devolve os horários livres do dia, em ordem crescente.
// Cada agendamento ativo ocupa exatamente o seu slot; a duração do
// serviço não entra no cálculo.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]string, error) {

	loc := timezone.Location(uc.tz)

	dayStart, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date", "Data inválida. Use YYYY-MM-DD.")
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	booked, err := uc.repo.ListBookedTimes(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	// normaliza para o timezone local antes de comparar com a grade
	local := make([]time.Time, 0, len(booked))
	for _, t := range booked {
		local = append(local, t.In(loc))
	}

	return domain.AvailableSlots(local), nil
}
