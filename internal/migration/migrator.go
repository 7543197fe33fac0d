package migration

import (
	"context"
	"errors"
	"fmt"

	"github.com/fabrimet/salesops-api/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrAlreadyMigrated is returned when companies already exist in the target
// database. The guard is coarse: it does not detect partial migrations.
var ErrAlreadyMigrated = errors.New("companies already exist, migration appears to have run")

// ErrLegacySchemaAbsent is returned when the legacy tables have already
// been dropped and there is nothing to migrate from.
var ErrLegacySchemaAbsent = errors.New("legacy customer tables not found")

// Migrator converts every legacy customer into the new schema. All database
// access goes through the injected handle; there is no package-level state.
type Migrator struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewMigrator creates a schema migrator
func NewMigrator(db *gorm.DB, logger *zap.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

// Summary reports the outcome of a migration run
type Summary struct {
	Migrated int
	Skipped  int
	Failed   int
}

// Run migrates all legacy customers. Each customer is converted inside its
// own transaction; a failure rolls that customer back, is logged with the
// customer's name and id, and does not stop the rest of the batch.
func (m *Migrator) Run(ctx context.Context) (*Summary, error) {
	if DetectSchemaState(m.db) != SchemaStateLegacy {
		return nil, ErrLegacySchemaAbsent
	}

	var companyCount int64
	if err := m.db.WithContext(ctx).Model(&domain.Company{}).Count(&companyCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count companies: %w", err)
	}
	if companyCount > 0 {
		return nil, ErrAlreadyMigrated
	}

	var customers []domain.LegacyCustomer
	if err := m.db.WithContext(ctx).Order("created_at").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to load legacy customers: %w", err)
	}

	m.logger.Info("starting schema migration", zap.Int("customers", len(customers)))

	summary := &Summary{}
	for _, customer := range customers {
		migrated, err := m.migrateCustomer(ctx, customer)
		switch {
		case err != nil:
			summary.Failed++
			m.logger.Error("failed to migrate customer",
				zap.String("customer", customer.Name),
				zap.String("customer_id", customer.ID.String()),
				zap.Error(err),
			)
		case !migrated:
			summary.Skipped++
		default:
			summary.Migrated++
		}
	}

	m.logger.Info("schema migration finished",
		zap.Int("migrated", summary.Migrated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

// migrateCustomer converts one customer and repoints its dependent rows,
// all within a single transaction. Returns false when the customer was
// skipped because a company with the same name already exists.
func (m *Migrator) migrateCustomer(ctx context.Context, customer domain.LegacyCustomer) (bool, error) {
	var duplicates int64
	if err := m.db.WithContext(ctx).Model(&domain.Company{}).
		Where("name = ?", customer.Name).Count(&duplicates).Error; err != nil {
		return false, fmt.Errorf("duplicate check: %w", err)
	}
	if duplicates > 0 {
		m.logger.Warn("skipping customer, company with same name exists",
			zap.String("customer", customer.Name),
			zap.String("customer_id", customer.ID.String()),
		)
		return false, nil
	}

	var locations []domain.LegacyLocation
	if err := m.db.WithContext(ctx).
		Where("customer_id = ?", customer.ID).Order("created_at").Find(&locations).Error; err != nil {
		return false, fmt.Errorf("load locations: %w", err)
	}

	var contacts []domain.LegacyContact
	if err := m.db.WithContext(ctx).
		Where("customer_id = ?", customer.ID).Order("created_at").Find(&contacts).Error; err != nil {
		return false, fmt.Errorf("load contacts: %w", err)
	}

	result := ConvertCustomer(customer, locations, contacts, ConvertOptions{})

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&result.Company).Error; err != nil {
			return fmt.Errorf("create company: %w", err)
		}
		if len(result.Offices) > 0 {
			if err := tx.Create(&result.Offices).Error; err != nil {
				return fmt.Errorf("create offices: %w", err)
			}
		}
		if len(result.Plants) > 0 {
			if err := tx.Create(&result.Plants).Error; err != nil {
				return fmt.Errorf("create plants: %w", err)
			}
		}
		if len(result.ContactPersons) > 0 {
			if err := tx.Create(&result.ContactPersons).Error; err != nil {
				return fmt.Errorf("create contact persons: %w", err)
			}
		}

		// Repoint dependents from the legacy customer to the new company
		// and clear the legacy reference.
		if err := tx.Model(&domain.Enquiry{}).
			Where("customer_id = ?", customer.ID).
			Updates(map[string]interface{}{"company_id": result.Company.ID, "customer_id": nil}).Error; err != nil {
			return fmt.Errorf("repoint enquiries: %w", err)
		}
		if err := tx.Model(&domain.Communication{}).
			Where("customer_id = ?", customer.ID).
			Updates(map[string]interface{}{"company_id": result.Company.ID, "customer_id": nil}).Error; err != nil {
			return fmt.Errorf("repoint communications: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	if result.SynthesizedMainOffice {
		m.logger.Info("synthesized placeholder office for direct contacts",
			zap.String("company", result.Company.Name),
		)
	}
	m.logger.Info("migrated customer",
		zap.String("company", result.Company.Name),
		zap.Int("offices", len(result.Offices)),
		zap.Int("plants", len(result.Plants)),
		zap.Int("contact_persons", len(result.ContactPersons)),
	)
	return true, nil
}
