package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/timezone"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

// Campos nil ficam intocados (update parcial).
type UpdateAppointmentInput struct {
	ClientName  *string
	ClientPhone *string
	ClientEmail *string

	BarberID  *uint
	ServiceID *uint

	Date   *string
	Time   *string
	Status *string
	Notes  *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado.")
		}
		return nil, err
	}

	if in.ClientName != nil {
		if *in.ClientName == "" {
			return nil, httperr.ErrValidation("invalid_client_name", "Nome do cliente é obrigatório.")
		}
		ap.ClientName = *in.ClientName
	}
	if in.ClientPhone != nil {
		ap.ClientPhone = *in.ClientPhone
	}
	if in.ClientEmail != nil {
		if *in.ClientEmail != "" && !validators.IsEmailDomainValid(*in.ClientEmail) {
			return nil, httperr.ErrValidation("invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		}
		ap.ClientEmail = *in.ClientEmail
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if in.BarberID != nil && *in.BarberID != ap.BarberID {
		if _, err := uc.repo.GetBarberByID(ctx, *in.BarberID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ErrNotFound("barber_not_found", "Barbeiro não encontrado.")
			}
			return nil, err
		}
		ap.BarberID = *in.BarberID
	}

	if in.ServiceID != nil && *in.ServiceID != ap.ServiceID {
		if _, err := uc.repo.GetServiceByID(ctx, *in.ServiceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ErrNotFound("service_not_found", "Serviço não encontrado.")
			}
			return nil, err
		}
		ap.ServiceID = *in.ServiceID
	}

	slotChanged := in.BarberID != nil || in.Date != nil || in.Time != nil

	if in.Date != nil || in.Time != nil {
		loc := timezone.Location(uc.tz)
		current := ap.AppointmentTime.In(loc)

		date := current.Format("2006-01-02")
		hm := current.Format("15:04")
		if in.Date != nil {
			date = *in.Date
		}
		if in.Time != nil {
			hm = *in.Time
		}

		start, err := parseSlotTime(date, hm, uc.tz)
		if err != nil {
			return nil, err
		}
		if start.Before(timezone.NowIn(uc.tz)) {
			return nil, httperr.ErrValidation("past_date", "Não é possível agendar em data passada.")
		}
		ap.AppointmentTime = start
	}

	// Só re-checa conflito quando barbeiro ou horário mudou; o próprio
	// registro é excluído da busca (auto-exclusão).
	if slotChanged {
		conflict, err := uc.repo.HasConflict(ctx, ap.BarberID, ap.AppointmentTime, &ap.ID)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, httperr.ErrConflict("time_conflict", "O barbeiro já tem um agendamento nesse horário.")
		}
	}

	if in.Status != nil {
		if err := domain.ChangeStatus(ap, domain.Status(*in.Status), timezone.NowIn(uc.tz)); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
