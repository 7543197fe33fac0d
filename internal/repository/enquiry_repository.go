package repository

import (
	"context"
	"strings"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnquiryRepository struct {
	db *gorm.DB
}

func NewEnquiryRepository(db *gorm.DB) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

func (r *EnquiryRepository) Create(ctx context.Context, enquiry *domain.Enquiry) error {
	return r.db.WithContext(ctx).Create(enquiry).Error
}

func (r *EnquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Enquiry, error) {
	var enquiry domain.Enquiry
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Quotations").
		Where("id = ?", id).
		First(&enquiry).Error
	if err != nil {
		return nil, err
	}
	return &enquiry, nil
}

func (r *EnquiryRepository) Update(ctx context.Context, enquiry *domain.Enquiry) error {
	return r.db.WithContext(ctx).Save(enquiry).Error
}

func (r *EnquiryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Enquiry{}, "id = ?", id).Error
}

func (r *EnquiryRepository) List(ctx context.Context, page, pageSize int, search string, status domain.EnquiryStatus, companyID *uuid.UUID) ([]domain.Enquiry, int64, error) {
	var enquiries []domain.Enquiry
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Enquiry{})

	if search != "" {
		searchPattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(subject) LIKE ?", searchPattern)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if companyID != nil {
		query = query.Where("company_id = ?", *companyID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("received_at DESC").Find(&enquiries).Error

	return enquiries, total, err
}

func (r *EnquiryRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Enquiry{}).Count(&count).Error
	return int(count), err
}

func (r *EnquiryRepository) CountByStatus(ctx context.Context, status domain.EnquiryStatus) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Enquiry{}).Where("status = ?", status).Count(&count).Error
	return int(count), err
}
