package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	ucbarber "github.com/BruksfildServices01/barbershop-api/internal/usecase/barber"
)

type BarberGormRepository struct {
	db *gorm.DB
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{db: db}
}

func (r *BarberGormRepository) Create(
	ctx context.Context,
	barber *models.Barber,
) error {

	if err := r.db.WithContext(ctx).Create(barber).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrConflict("barber_already_exists", "Já existe um barbeiro com esse nome.")
		}
		return err
	}
	return nil
}

func (r *BarberGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BarberGormRepository) GetByName(
	ctx context.Context,
	name string,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BarberGormRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]models.Barber, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&barbers).Error; err != nil {
		return nil, 0, err
	}

	return barbers, total, nil
}

func (r *BarberGormRepository) Update(
	ctx context.Context,
	barber *models.Barber,
) error {

	if err := r.db.WithContext(ctx).Save(barber).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrConflict("barber_already_exists", "Já existe um barbeiro com esse nome.")
		}
		return err
	}
	return nil
}

func (r *BarberGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Barber{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Compile-time check
var _ ucbarber.Repository = (*BarberGormRepository)(nil)
