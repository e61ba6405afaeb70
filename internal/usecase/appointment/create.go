package appointment

import (
	"context"
	"errors"
	"time"

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

type CreateAppointmentInput struct {
	ClientName  string
	ClientPhone string
	ClientEmail string

	BarberID  uint
	ServiceID uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	start, err := parseSlotTime(in.Date, in.Time, uc.tz)
	if err != nil {
		return nil, err
	}

	if start.Before(timezone.NowIn(uc.tz)) {
		return nil, httperr.ErrValidation("past_date", "Não é possível agendar em data passada.")
	}

	if in.ClientEmail != "" && !validators.IsEmailDomainValid(in.ClientEmail) {
		return nil, httperr.ErrValidation("invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
	}

	if _, err := uc.repo.GetBarberByID(ctx, in.BarberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("barber_not_found", "Barbeiro não encontrado.")
		}
		return nil, err
	}

	if _, err := uc.repo.GetServiceByID(ctx, in.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("service_not_found", "Serviço não encontrado.")
		}
		return nil, err
	}

	// Pre-check amigável; o índice único parcial do banco decide a
	// corrida entre dois creates simultâneos.
	conflict, err := uc.repo.HasConflict(ctx, in.BarberID, start, nil)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, httperr.ErrConflict("time_conflict", "O barbeiro já tem um agendamento nesse horário.")
	}

	ap := &models.Appointment{
		ClientName:      in.ClientName,
		ClientPhone:     in.ClientPhone,
		ClientEmail:     in.ClientEmail,
		BarberID:        in.BarberID,
		ServiceID:       in.ServiceID,
		AppointmentTime: start,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// parseSlotTime monta o timestamp do agendamento no timezone da
// barbearia e garante que ele caia na grade de 30 minutos do
// expediente.
func parseSlotTime(date, hm, tz string) (time.Time, error) {
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		date+" "+hm,
		timezone.Location(tz),
	)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_date_or_time", "Data ou hora inválida. Use YYYY-MM-DD e HH:MM.")
	}

	if !domain.OnSlotGrid(start) {
		return time.Time{}, httperr.ErrValidation("outside_business_hours", "Horário de atendimento: 09:00 - 19:30, a cada 30 minutos.")
	}

	return start, nil
}
