package repository

import (
	"context"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OfficeRepository struct {
	db *gorm.DB
}

func NewOfficeRepository(db *gorm.DB) *OfficeRepository {
	return &OfficeRepository{db: db}
}

func (r *OfficeRepository) Create(ctx context.Context, office *domain.Office) error {
	return r.db.WithContext(ctx).Create(office).Error
}

func (r *OfficeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Office, error) {
	var office domain.Office
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&office).Error
	if err != nil {
		return nil, err
	}
	return &office, nil
}

func (r *OfficeRepository) Update(ctx context.Context, office *domain.Office) error {
	return r.db.WithContext(ctx).Save(office).Error
}

func (r *OfficeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Office{}, "id = ?", id).Error
}

func (r *OfficeRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Office, error) {
	var offices []domain.Office
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("is_head_office DESC, created_at ASC").
		Find(&offices).Error
	return offices, err
}

type PlantRepository struct {
	db *gorm.DB
}

func NewPlantRepository(db *gorm.DB) *PlantRepository {
	return &PlantRepository{db: db}
}

func (r *PlantRepository) Create(ctx context.Context, plant *domain.Plant) error {
	return r.db.WithContext(ctx).Create(plant).Error
}

func (r *PlantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Plant, error) {
	var plant domain.Plant
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&plant).Error
	if err != nil {
		return nil, err
	}
	return &plant, nil
}

func (r *PlantRepository) Update(ctx context.Context, plant *domain.Plant) error {
	return r.db.WithContext(ctx).Save(plant).Error
}

func (r *PlantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Plant{}, "id = ?", id).Error
}

func (r *PlantRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Plant, error) {
	var plants []domain.Plant
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&plants).Error
	return plants, err
}
