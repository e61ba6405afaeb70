package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	ucservice "github.com/BruksfildServices01/barbershop-api/internal/usecase/service"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) Create(
	ctx context.Context,
	svc *models.Service,
) error {

	if err := r.db.WithContext(ctx).Create(svc).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrConflict("service_already_exists", "Já existe um serviço com esse nome.")
		}
		return err
	}
	return nil
}

func (r *ServiceGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *ServiceGormRepository) GetByName(
	ctx context.Context,
	name string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *ServiceGormRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]models.Service, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&services).Error; err != nil {
		return nil, 0, err
	}

	return services, total, nil
}

func (r *ServiceGormRepository) Update(
	ctx context.Context,
	svc *models.Service,
) error {

	if err := r.db.WithContext(ctx).Save(svc).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrConflict("service_already_exists", "Já existe um serviço com esse nome.")
		}
		return err
	}
	return nil
}

func (r *ServiceGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Compile-time check
var _ ucservice.Repository = (*ServiceGormRepository)(nil)
