package repository

import (
	"context"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommunicationRepository struct {
	db *gorm.DB
}

func NewCommunicationRepository(db *gorm.DB) *CommunicationRepository {
	return &CommunicationRepository{db: db}
}

func (r *CommunicationRepository) Create(ctx context.Context, comm *domain.Communication) error {
	return r.db.WithContext(ctx).Create(comm).Error
}

func (r *CommunicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Communication, error) {
	var comm domain.Communication
	err := r.db.WithContext(ctx).
		Preload("ContactPerson").
		Where("id = ?", id).
		First(&comm).Error
	if err != nil {
		return nil, err
	}
	return &comm, nil
}

func (r *CommunicationRepository) Update(ctx context.Context, comm *domain.Communication) error {
	return r.db.WithContext(ctx).Save(comm).Error
}

func (r *CommunicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Communication{}, "id = ?", id).Error
}

func (r *CommunicationRepository) List(ctx context.Context, page, pageSize int, commType domain.CommunicationType, companyID *uuid.UUID) ([]domain.Communication, int64, error) {
	var comms []domain.Communication
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Communication{})
	if commType != "" {
		query = query.Where("type = ?", commType)
	}
	if companyID != nil {
		query = query.Where("company_id = ?", *companyID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("occurred_at DESC").Find(&comms).Error

	return comms, total, err
}

func (r *CommunicationRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Communication{}).Count(&count).Error
	return int(count), err
}
