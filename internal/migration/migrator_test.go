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

func TestMigrator_Run(t *testing.T) {
	db := testutil.SetupTestDB(t)
	log := testutil.NewTestLogger()

	customer := testutil.CreateLegacyCustomer(t, db, "Acme Industries")
	office := testutil.CreateLegacyLocation(t, db, customer.ID, domain.LocationTypeOffice, "Pune")
	testutil.CreateLegacyLocation(t, db, customer.ID, domain.LocationTypePlant, "Nashik")
	testutil.CreateLegacyContact(t, db, customer.ID, &office.ID, "Asha")
	testutil.CreateLegacyContact(t, db, customer.ID, nil, "Ravi")

	other := testutil.CreateLegacyCustomer(t, db, "Bharat Steel")
	testutil.CreateLegacyLocation(t, db, other.ID, domain.LocationTypeOffice, "Mumbai")

	migrator := migration.NewMigrator(db, log)
	summary, err := migrator.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Migrated)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)

	var companies []domain.Company
	require.NoError(t, db.Order("name").Find(&companies).Error)
	require.Len(t, companies, 2)
	assert.Equal(t, "Acme Industries", companies[0].Name)
	assert.True(t, companies[0].POStructures)

	var offices []domain.Office
	require.NoError(t, db.Where("company_id = ?", companies[0].ID).Find(&offices).Error)
	require.Len(t, offices, 1)
	assert.True(t, offices[0].IsHeadOffice)
	assert.Equal(t, "Pune", offices[0].City)

	var plants []domain.Plant
	require.NoError(t, db.Where("company_id = ?", companies[0].ID).Find(&plants).Error)
	require.Len(t, plants, 1)
	assert.Equal(t, "Nashik", plants[0].City)

	var persons []domain.ContactPerson
	require.NoError(t, db.Where("company_id = ?", companies[0].ID).Order("name").Find(&persons).Error)
	require.Len(t, persons, 2)
	require.NotNil(t, persons[0].OfficeID)
	assert.Equal(t, offices[0].ID, *persons[0].OfficeID)
	require.NotNil(t, persons[1].OfficeID)
	assert.Equal(t, offices[0].ID, *persons[1].OfficeID)
}

func TestMigrator_RepointsEnquiriesAndCommunications(t *testing.T) {
	db := testutil.SetupTestDB(t)
	log := testutil.NewTestLogger()

	customer := testutil.CreateLegacyCustomer(t, db, "Acme Industries")
	enquiry := &domain.Enquiry{Subject: "Warehouse shed", Status: domain.EnquiryStatusOpen, CustomerID: &customer.ID}
	require.NoError(t, db.Create(enquiry).Error)
	comm := &domain.Communication{Type: domain.CommunicationTypeCall, Notes: "intro call", CustomerID: &customer.ID}
	require.NoError(t, db.Create(comm).Error)

	migrator := migration.NewMigrator(db, log)
	summary, err := migrator.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Migrated)

	var company domain.Company
	require.NoError(t, db.Where("name = ?", "Acme Industries").First(&company).Error)

	var gotEnquiry domain.Enquiry
	require.NoError(t, db.First(&gotEnquiry, "id = ?", enquiry.ID).Error)
	require.NotNil(t, gotEnquiry.CompanyID)
	assert.Equal(t, company.ID, *gotEnquiry.CompanyID)
	assert.Nil(t, gotEnquiry.CustomerID)

	var gotComm domain.Communication
	require.NoError(t, db.First(&gotComm, "id = ?", comm.ID).Error)
	require.NotNil(t, gotComm.CompanyID)
	assert.Equal(t, company.ID, *gotComm.CompanyID)
	assert.Nil(t, gotComm.CustomerID)
}

func TestMigrator_RefusesSecondRun(t *testing.T) {
	db := testutil.SetupTestDB(t)
	log := testutil.NewTestLogger()

	testutil.CreateLegacyCustomer(t, db, "Acme Industries")

	migrator := migration.NewMigrator(db, log)
	_, err := migrator.Run(context.Background())
	require.NoError(t, err)

	_, err = migrator.Run(context.Background())
	assert.ErrorIs(t, err, migration.ErrAlreadyMigrated)
}

func TestMigrator_LegacySchemaAbsent(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	log := testutil.NewTestLogger()

	migrator := migration.NewMigrator(db, log)
	_, err := migrator.Run(context.Background())
	assert.ErrorIs(t, err, migration.ErrLegacySchemaAbsent)
}

func TestMigrator_SkipsDuplicateCompanyName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	log := testutil.NewTestLogger()

	testutil.CreateLegacyCustomer(t, db, "Acme Industries")
	duplicate := testutil.CreateLegacyCustomer(t, db, "Acme Industries")
	testutil.CreateLegacyLocation(t, db, duplicate.ID, domain.LocationTypeOffice, "Pune")

	migrator := migration.NewMigrator(db, log)
	summary, err := migrator.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Migrated)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)

	var count int64
	require.NoError(t, db.Model(&domain.Company{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMigrator_SynthesizesOfficeForDirectContacts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	log := testutil.NewTestLogger()

	customer := testutil.CreateLegacyCustomer(t, db, "Acme Industries")
	testutil.CreateLegacyContact(t, db, customer.ID, nil, "Asha")

	migrator := migration.NewMigrator(db, log)
	summary, err := migrator.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Migrated)

	var offices []domain.Office
	require.NoError(t, db.Find(&offices).Error)
	require.Len(t, offices, 1)
	assert.Equal(t, "Main Office", offices[0].Address)
	assert.True(t, offices[0].IsHeadOffice)

	var person domain.ContactPerson
	require.NoError(t, db.First(&person).Error)
	require.NotNil(t, person.OfficeID)
	assert.Equal(t, offices[0].ID, *person.OfficeID)
	assert.True(t, person.IsPrimary)
	assert.Equal(t, "111-222", person.Phone)
}

func TestMigrator_LeavesLegacyRowsInPlace(t *testing.T) {
	db := testutil.SetupTestDB(t)
	log := testutil.NewTestLogger()

	customer := testutil.CreateLegacyCustomer(t, db, "Acme Industries")
	testutil.CreateLegacyLocation(t, db, customer.ID, domain.LocationTypeOffice, "Pune")

	migrator := migration.NewMigrator(db, log)
	_, err := migrator.Run(context.Background())
	require.NoError(t, err)

	var customers int64
	require.NoError(t, db.Model(&domain.LegacyCustomer{}).Count(&customers).Error)
	assert.Equal(t, int64(1), customers)
	var locations int64
	require.NoError(t, db.Model(&domain.LegacyLocation{}).Count(&locations).Error)
	assert.Equal(t, int64(1), locations)
}
