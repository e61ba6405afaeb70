package barber

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type fakeRepo struct {
	barbers map[uint]models.Barber
	nextID  uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{barbers: make(map[uint]models.Barber), nextID: 1}
}

func (r *fakeRepo) Create(_ context.Context, b *models.Barber) error {
	b.ID = r.nextID
	r.nextID++
	r.barbers[b.ID] = *b
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uint) (*models.Barber, error) {
	b, ok := r.barbers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (r *fakeRepo) GetByName(_ context.Context, name string) (*models.Barber, error) {
	for _, b := range r.barbers {
		if b.Name == name {
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) List(_ context.Context, offset, limit int) ([]models.Barber, int64, error) {
	var out []models.Barber
	for _, b := range r.barbers {
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) Update(_ context.Context, b *models.Barber) error {
	if _, ok := r.barbers[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.barbers[b.ID] = *b
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.barbers[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.barbers, id)
	return nil
}

var _ Repository = (*fakeRepo)(nil)

func TestCreateDuplicateName(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "Carlos"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = svc.Create(ctx, CreateInput{Name: "Carlos"})
	assert.True(t, httperr.IsConflict(err))
}

func TestCreateEmptyName(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	_, err := svc.Create(context.Background(), CreateInput{Name: "   "})
	assert.True(t, httperr.IsValidation(err))
}

func TestUpdateKeepsNameWhenOnlyPhoneChanges(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "Carlos", Phone: "111"})
	require.NoError(t, err)

	phone := "222"
	updated, err := svc.Update(ctx, created.ID, UpdateInput{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, "Carlos", updated.Name)
	assert.Equal(t, "222", updated.Phone)
}

func TestUpdateNameSelfExclusion(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "Carlos"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateInput{Name: "Miguel"})
	require.NoError(t, err)

	// manter o próprio nome não conflita
	same := "Carlos"
	_, err = svc.Update(ctx, created.ID, UpdateInput{Name: &same})
	assert.NoError(t, err)

	// tomar o nome de outro barbeiro conflita
	taken := "Miguel"
	_, err = svc.Update(ctx, created.ID, UpdateInput{Name: &taken})
	assert.True(t, httperr.IsConflict(err))
}

func TestDeleteUnknownBarber(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	err := svc.Delete(context.Background(), 42)
	assert.True(t, httperr.IsNotFound(err))
}
