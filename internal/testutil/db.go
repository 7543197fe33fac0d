// Package testutil provides database helpers for tests. Tests run against
// an in-memory SQLite database so no server is required; the schema is
// created through the same models the application uses.
package testutil

import (
	"testing"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory database with both the legacy and the
// current schema migrated.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open in-memory database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&domain.Employee{},
		&domain.LegacyCustomer{},
		&domain.LegacyLocation{},
		&domain.LegacyContact{},
		&domain.Company{},
		&domain.Office{},
		&domain.Plant{},
		&domain.ContactPerson{},
		&domain.Enquiry{},
		&domain.Quotation{},
		&domain.QuotationItem{},
		&domain.Communication{},
		&domain.Document{},
	))

	return db
}

// SetupNewSchemaDB creates an in-memory database with only the current
// schema, as a database looks after legacy cleanup and table drops.
func SetupNewSchemaDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open in-memory database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&domain.Employee{},
		&domain.Company{},
		&domain.Office{},
		&domain.Plant{},
		&domain.ContactPerson{},
		&domain.Enquiry{},
		&domain.Quotation{},
		&domain.QuotationItem{},
		&domain.Communication{},
		&domain.Document{},
	))

	return db
}

// NewTestLogger returns a no-op logger for components that require one.
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// CreateLegacyCustomer inserts a legacy customer row.
func CreateLegacyCustomer(t *testing.T, db *gorm.DB, name string) *domain.LegacyCustomer {
	t.Helper()
	customer := &domain.LegacyCustomer{
		Name:         name,
		POStructures: true,
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

// CreateLegacyLocation inserts a legacy location row for a customer.
func CreateLegacyLocation(t *testing.T, db *gorm.DB, customerID uuid.UUID, locationType domain.LocationType, city string) *domain.LegacyLocation {
	t.Helper()
	location := &domain.LegacyLocation{
		CustomerID:   customerID,
		LocationType: locationType,
		City:         city,
	}
	require.NoError(t, db.Create(location).Error)
	return location
}

// CreateLegacyContact inserts a legacy contact row for a customer.
func CreateLegacyContact(t *testing.T, db *gorm.DB, customerID uuid.UUID, locationID *uuid.UUID, name string) *domain.LegacyContact {
	t.Helper()
	contact := &domain.LegacyContact{
		CustomerID:   customerID,
		LocationID:   locationID,
		Name:         name,
		OfficialCell: "111-222",
	}
	require.NoError(t, db.Create(contact).Error)
	return contact
}

// CreateCompany inserts a company row.
func CreateCompany(t *testing.T, db *gorm.DB, name string) *domain.Company {
	t.Helper()
	company := &domain.Company{Name: name}
	require.NoError(t, db.Create(company).Error)
	return company
}
