package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// ListFilter define os filtros opcionais de listagem de agendamentos.
// Date filtra o dia inteiro no timezone configurado.
type ListFilter struct {
	Status   string
	BarberID *uint
	Date     *time.Time

	Offset int
	Limit  int
}

type Repository interface {
	// -------- Lookups --------
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment (CRUD) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, int64, error)

	ListAppointmentsByBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Conflict / Availability --------
	HasConflict(
		ctx context.Context,
		barberID uint,
		at time.Time,
		excludeID *uint,
	) (bool, error)

	ListBookedTimes(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]time.Time, error)
}
