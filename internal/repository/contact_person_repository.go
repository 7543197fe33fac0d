package repository

import (
	"context"
	"strings"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactPersonRepository struct {
	db *gorm.DB
}

func NewContactPersonRepository(db *gorm.DB) *ContactPersonRepository {
	return &ContactPersonRepository{db: db}
}

func (r *ContactPersonRepository) Create(ctx context.Context, person *domain.ContactPerson) error {
	return r.db.WithContext(ctx).Create(person).Error
}

func (r *ContactPersonRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactPerson, error) {
	var person domain.ContactPerson
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *ContactPersonRepository) Update(ctx context.Context, person *domain.ContactPerson) error {
	return r.db.WithContext(ctx).Save(person).Error
}

func (r *ContactPersonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ContactPerson{}, "id = ?", id).Error
}

func (r *ContactPersonRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.ContactPerson, error) {
	var persons []domain.ContactPerson
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("is_primary DESC, name ASC").
		Find(&persons).Error
	return persons, err
}

// SetPrimary marks one contact person as the primary for its company and
// clears the flag on every other contact of the same company.
func (r *ContactPersonRepository) SetPrimary(ctx context.Context, companyID, personID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.ContactPerson{}).
			Where("company_id = ?", companyID).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Model(&domain.ContactPerson{}).
			Where("id = ? AND company_id = ?", personID, companyID).
			Update("is_primary", true).Error
	})
}

func (r *ContactPersonRepository) Search(ctx context.Context, searchQuery string, limit int) ([]domain.ContactPerson, error) {
	var persons []domain.ContactPerson
	searchPattern := "%" + strings.ToLower(searchQuery) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", searchPattern, searchPattern).
		Limit(limit).
		Find(&persons).Error
	return persons, err
}
