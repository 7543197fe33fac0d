package migration_test

import (
	"context"
	"testing"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/fabrimet/salesops-api/internal/migration"
	"github.com/fabrimet/salesops-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanup_DeletesLegacyRows(t *testing.T) {
	db := testutil.SetupTestDB(t)
	log := testutil.NewTestLogger()

	customer := testutil.CreateLegacyCustomer(t, db, "Acme Industries")
	office := testutil.CreateLegacyLocation(t, db, customer.ID, domain.LocationTypeOffice, "Pune")
	testutil.CreateLegacyContact(t, db, customer.ID, &office.ID, "Asha")
	testutil.CreateLegacyContact(t, db, customer.ID, nil, "Ravi")

	legacyComm := &domain.Communication{Type: domain.CommunicationTypeCall, CustomerID: &customer.ID}
	require.NoError(t, db.Create(legacyComm).Error)

	company := testutil.CreateCompany(t, db, "Bharat Steel")
	migratedComm := &domain.Communication{Type: domain.CommunicationTypeEmail, CompanyID: &company.ID}
	require.NoError(t, db.Create(migratedComm).Error)

	summary, err := migration.Cleanup(context.Background(), db, log)
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.Communications)
	assert.Equal(t, int64(2), summary.Contacts)
	assert.Equal(t, int64(1), summary.Locations)
	assert.Equal(t, int64(1), summary.Customers)

	var customers int64
	require.NoError(t, db.Model(&domain.LegacyCustomer{}).Count(&customers).Error)
	assert.Zero(t, customers)

	// Communications already repointed to a company survive.
	var comms []domain.Communication
	require.NoError(t, db.Find(&comms).Error)
	require.Len(t, comms, 1)
	assert.Equal(t, migratedComm.ID, comms[0].ID)

	// The migrated side is untouched.
	var companies int64
	require.NoError(t, db.Model(&domain.Company{}).Count(&companies).Error)
	assert.Equal(t, int64(1), companies)
}

func TestCleanup_SkipsMissingTables(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	log := testutil.NewTestLogger()

	company := testutil.CreateCompany(t, db, "Acme Industries")
	comm := &domain.Communication{Type: domain.CommunicationTypeCall, CompanyID: &company.ID}
	require.NoError(t, db.Create(comm).Error)

	summary, err := migration.Cleanup(context.Background(), db, log)
	require.NoError(t, err)

	assert.Zero(t, summary.Contacts)
	assert.Zero(t, summary.Locations)
	assert.Zero(t, summary.Customers)

	var comms int64
	require.NoError(t, db.Model(&domain.Communication{}).Count(&comms).Error)
	assert.Equal(t, int64(1), comms)
}

func TestCleanup_SecondRunDeletesNothing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	log := testutil.NewTestLogger()

	testutil.CreateLegacyCustomer(t, db, "Acme Industries")

	_, err := migration.Cleanup(context.Background(), db, log)
	require.NoError(t, err)

	summary, err := migration.Cleanup(context.Background(), db, log)
	require.NoError(t, err)
	assert.Zero(t, summary.Customers)
	assert.Zero(t, summary.Locations)
	assert.Zero(t, summary.Contacts)
	assert.Zero(t, summary.Communications)
}
