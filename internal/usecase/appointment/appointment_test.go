package appointment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	barbers      map[uint]models.Barber
	services     map[uint]models.Service
	appointments map[uint]models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	r := &fakeRepo{
		barbers:      make(map[uint]models.Barber),
		services:     make(map[uint]models.Service),
		appointments: make(map[uint]models.Appointment),
		nextID:       1,
	}
	r.barbers[1] = models.Barber{ID: 1, Name: "Carlos"}
	r.barbers[2] = models.Barber{ID: 2, Name: "Miguel"}
	r.services[1] = models.Service{ID: 1, Name: "Corte", DurationMin: 60, Price: 50}
	return r
}

func (r *fakeRepo) GetBarberByID(_ context.Context, id uint) (*models.Barber, error) {
	b, ok := r.barbers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (r *fakeRepo) GetServiceByID(_ context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	// simula o índice único parcial do banco
	for _, other := range r.appointments {
		if other.BarberID == ap.BarberID &&
			other.AppointmentTime.Equal(ap.AppointmentTime) &&
			other.Status != string(domain.StatusCancelled) {
			return httperr.ErrConflict("time_conflict", "slot ocupado")
		}
	}

	ap.ID = r.nextID
	r.nextID++
	ap.CreatedAt = time.Now()
	ap.UpdatedAt = ap.CreatedAt
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &ap, nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, filter domain.ListFilter) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if filter.Status != "" && ap.Status != filter.Status {
			continue
		}
		if filter.BarberID != nil && ap.BarberID != *filter.BarberID {
			continue
		}
		if filter.Date != nil {
			dayEnd := filter.Date.Add(24 * time.Hour)
			if ap.AppointmentTime.Before(*filter.Date) || !ap.AppointmentTime.Before(dayEnd) {
				continue
			}
		}
		out = append(out, ap)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) ListAppointmentsByBarber(_ context.Context, barberID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID == barberID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	ap.UpdatedAt = time.Now()
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	if _, ok := r.appointments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) HasConflict(_ context.Context, barberID uint, at time.Time, excludeID *uint) (bool, error) {
	for _, ap := range r.appointments {
		if excludeID != nil && ap.ID == *excludeID {
			continue
		}
		if ap.BarberID == barberID &&
			ap.AppointmentTime.Equal(at) &&
			ap.Status != string(domain.StatusCancelled) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) ListBookedTimes(_ context.Context, dayStart, dayEnd time.Time) ([]time.Time, error) {
	var out []time.Time
	for _, ap := range r.appointments {
		if ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if ap.AppointmentTime.Before(dayStart) || !ap.AppointmentTime.Before(dayEnd) {
			continue
		}
		out = append(out, ap.AppointmentTime)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ======================================================
// HELPERS
// ======================================================

const testTZ = "UTC"

// um dia bem no futuro para nunca esbarrar na validação de passado
func futureDate() string {
	return time.Now().AddDate(1, 0, 0).Format("2006-01-02")
}

func createInput(barberID uint, hm string) CreateAppointmentInput {
	return CreateAppointmentInput{
		ClientName: "João Silva",
		BarberID:   barberID,
		ServiceID:  1,
		Date:       futureDate(),
		Time:       hm,
	}
}

func mustCreate(t *testing.T, repo *fakeRepo, in CreateAppointmentInput) *models.Appointment {
	t.Helper()
	ap, err := NewCreateAppointment(repo, nil, testTZ).Execute(context.Background(), in)
	require.NoError(t, err)
	return ap
}

// ======================================================
// CREATE
// ======================================================

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	repo := newFakeRepo()

	ap := mustCreate(t, repo, createInput(1, "10:00"))

	assert.NotZero(t, ap.ID)
	assert.False(t, ap.CreatedAt.IsZero())
	assert.False(t, ap.UpdatedAt.IsZero())
	assert.Equal(t, "pending", ap.Status)
}

func TestCreateDoubleBookingFails(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, nil, testTZ)

	mustCreate(t, repo, createInput(1, "10:00"))

	_, err := uc.Execute(context.Background(), createInput(1, "10:00"))
	assert.True(t, httperr.IsConflict(err))

	// outro barbeiro no mesmo horário não conflita
	_, err = uc.Execute(context.Background(), createInput(2, "10:00"))
	assert.NoError(t, err)
}

func TestCreateUnknownBarberOrService(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, nil, testTZ)

	in := createInput(99, "10:00")
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsNotFound(err))

	in = createInput(1, "10:00")
	in.ServiceID = 99
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsNotFound(err))
}

func TestCreateRejectsPastDate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, nil, testTZ)

	in := createInput(1, "10:00")
	in.Date = "2020-01-01"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "past_date"))
}

func TestCreateRejectsOffGridTime(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, nil, testTZ)

	for _, hm := range []string{"08:30", "20:00", "10:15"} {
		_, err := uc.Execute(context.Background(), createInput(1, hm))
		assert.True(t, httperr.IsBusiness(err, "outside_business_hours"), hm)
	}
}

// ======================================================
// CANCEL
// ======================================================

func TestCancelFreesSlot(t *testing.T) {
	repo := newFakeRepo()

	ap := mustCreate(t, repo, createInput(1, "10:00"))

	cancelled, err := NewCancelAppointment(repo, nil, testTZ).Execute(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)

	// o horário volta a ficar disponível
	_, err = NewCreateAppointment(repo, nil, testTZ).Execute(context.Background(), createInput(1, "10:00"))
	assert.NoError(t, err)
}

func TestCancelUnknownAppointment(t *testing.T) {
	repo := newFakeRepo()

	_, err := NewCancelAppointment(repo, nil, testTZ).Execute(context.Background(), 42)
	assert.True(t, httperr.IsNotFound(err))
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdateTimestampConflict(t *testing.T) {
	repo := newFakeRepo()

	mustCreate(t, repo, createInput(1, "10:00"))
	second := mustCreate(t, repo, createInput(1, "11:00"))

	uc := NewUpdateAppointment(repo, nil, testTZ)

	occupied := "10:00"
	_, err := uc.Execute(context.Background(), second.ID, UpdateAppointmentInput{Time: &occupied})
	assert.True(t, httperr.IsConflict(err))

	// mover para o próprio horário atual não conflita (auto-exclusão)
	own := "11:00"
	_, err = uc.Execute(context.Background(), second.ID, UpdateAppointmentInput{Time: &own})
	assert.NoError(t, err)
}

func TestUpdatePartialKeepsOtherFields(t *testing.T) {
	repo := newFakeRepo()

	ap := mustCreate(t, repo, createInput(1, "10:00"))

	notes := "cliente prefere máquina 2"
	updated, err := NewUpdateAppointment(repo, nil, testTZ).
		Execute(context.Background(), ap.ID, UpdateAppointmentInput{Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, notes, updated.Notes)
	assert.True(t, updated.AppointmentTime.Equal(ap.AppointmentTime))
	assert.Equal(t, ap.Status, updated.Status)
	assert.Equal(t, ap.ClientName, updated.ClientName)
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateAppointment(repo, nil, testTZ)

	ap := mustCreate(t, repo, createInput(1, "10:00"))

	confirmed := "confirmed"
	updated, err := uc.Execute(context.Background(), ap.ID, UpdateAppointmentInput{Status: &confirmed})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", updated.Status)

	pending := "pending"
	_, err = uc.Execute(context.Background(), ap.ID, UpdateAppointmentInput{Status: &pending})
	assert.True(t, httperr.IsValidation(err), "confirmed não volta para pending")

	completed := "completed"
	updated, err = uc.Execute(context.Background(), ap.ID, UpdateAppointmentInput{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
}

func TestUpdateUnknownAppointment(t *testing.T) {
	repo := newFakeRepo()

	notes := "x"
	_, err := NewUpdateAppointment(repo, nil, testTZ).
		Execute(context.Background(), 42, UpdateAppointmentInput{Notes: &notes})
	assert.True(t, httperr.IsNotFound(err))
}

// ======================================================
// DELETE
// ======================================================

func TestDeleteRemovesPermanently(t *testing.T) {
	repo := newFakeRepo()

	ap := mustCreate(t, repo, createInput(1, "10:00"))

	require.NoError(t, NewDeleteAppointment(repo, nil).Execute(context.Background(), ap.ID))

	_, err := NewGetAppointment(repo).Execute(context.Background(), ap.ID)
	assert.True(t, httperr.IsNotFound(err))
}

func TestDeleteUnknownAppointment(t *testing.T) {
	repo := newFakeRepo()

	err := NewDeleteAppointment(repo, nil).Execute(context.Background(), 42)
	assert.True(t, httperr.IsNotFound(err))
}

// ======================================================
// AVAILABILITY
// ======================================================

func TestAvailabilityFullGridWhenEmpty(t *testing.T) {
	repo := newFakeRepo()

	slots, err := NewGetAvailability(repo, testTZ).Execute(context.Background(), futureDate())
	require.NoError(t, err)

	require.Len(t, slots, 22)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "19:30", slots[21])
}

func TestAvailabilityExcludesBookedSlots(t *testing.T) {
	repo := newFakeRepo()

	mustCreate(t, repo, createInput(1, "10:30"))
	cancelled := mustCreate(t, repo, createInput(1, "15:00"))
	_, err := NewCancelAppointment(repo, nil, testTZ).Execute(context.Background(), cancelled.ID)
	require.NoError(t, err)

	slots, err := NewGetAvailability(repo, testTZ).Execute(context.Background(), futureDate())
	require.NoError(t, err)

	assert.Len(t, slots, 21)
	assert.NotContains(t, slots, "10:30")
	assert.Contains(t, slots, "15:00", "agendamento cancelado libera o slot")
}

func TestAvailabilityInvalidDate(t *testing.T) {
	repo := newFakeRepo()

	_, err := NewGetAvailability(repo, testTZ).Execute(context.Background(), "15/02/2026")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

// ======================================================
// LIST
// ======================================================

func TestListFilters(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()

	mustCreate(t, repo, createInput(1, "10:00"))
	mustCreate(t, repo, createInput(2, "10:00"))

	uc := NewListAppointments(repo, testTZ)

	apps, total, err := uc.Execute(ctx, ListAppointmentsInput{})
	require.NoError(t, err)
	assert.Len(t, apps, 2)
	assert.EqualValues(t, 2, total)

	barberID := uint(1)
	apps, _, err = uc.Execute(ctx, ListAppointmentsInput{BarberID: &barberID})
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	_, _, err = uc.Execute(ctx, ListAppointmentsInput{Status: "whatever"})
	assert.True(t, httperr.IsValidation(err))
}

func TestListByBarberUnknownBarber(t *testing.T) {
	repo := newFakeRepo()

	_, err := NewListAppointmentsByBarber(repo).Execute(context.Background(), 99)
	assert.True(t, httperr.IsNotFound(err))
}

// sanity: o fake repo devolve IDs distintos
func TestFakeRepoIDs(t *testing.T) {
	repo := newFakeRepo()

	a := mustCreate(t, repo, createInput(1, "09:00"))
	b := mustCreate(t, repo, createInput(1, "09:30"))

	assert.NotEqual(t, a.ID, b.ID, fmt.Sprintf("ids %d/%d", a.ID, b.ID))
}
