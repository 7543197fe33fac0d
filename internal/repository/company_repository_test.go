package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/fabrimet/salesops-api/internal/repository"
	"github.com/fabrimet/salesops-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCompanyRepository_Create(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	repo := repository.NewCompanyRepository(db)

	company := &domain.Company{
		Name:          "Acme Industries",
		POStructures:  true,
		PORoofing:     true,
		SupplierNotes: "prefers rail freight",
	}

	err := repo.Create(context.Background(), company)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, company.ID)
}

func TestCompanyRepository_GetByID(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	repo := repository.NewCompanyRepository(db)

	company := testutil.CreateCompany(t, db, "Acme Industries")
	require.NoError(t, db.Create(&domain.Office{CompanyID: company.ID, City: "Pune", IsHeadOffice: true}).Error)
	require.NoError(t, db.Create(&domain.Plant{CompanyID: company.ID, City: "Nashik"}).Error)
	require.NoError(t, db.Create(&domain.ContactPerson{CompanyID: company.ID, Name: "Asha", IsPrimary: true}).Error)

	found, err := repo.GetByID(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Industries", found.Name)
	assert.Len(t, found.Offices, 1)
	assert.Len(t, found.Plants, 1)
	assert.Len(t, found.ContactPersons, 1)
}

func TestCompanyRepository_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	repo := repository.NewCompanyRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCompanyRepository_GetByName(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	repo := repository.NewCompanyRepository(db)

	testutil.CreateCompany(t, db, "Acme Industries")

	found, err := repo.GetByName(context.Background(), "Acme Industries")
	require.NoError(t, err)
	assert.Equal(t, "Acme Industries", found.Name)

	_, err = repo.GetByName(context.Background(), "Nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCompanyRepository_Update(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	repo := repository.NewCompanyRepository(db)

	company := testutil.CreateCompany(t, db, "Acme Industries")
	company.Name = "Acme Industries Ltd"
	company.POCladding = true

	require.NoError(t, repo.Update(context.Background(), company))

	found, err := repo.GetByID(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Industries Ltd", found.Name)
	assert.True(t, found.POCladding)
}

func TestCompanyRepository_Delete(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	repo := repository.NewCompanyRepository(db)

	company := testutil.CreateCompany(t, db, "Acme Industries")
	require.NoError(t, repo.Delete(context.Background(), company.ID))

	_, err := repo.GetByID(context.Background(), company.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCompanyRepository_List(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	repo := repository.NewCompanyRepository(db)

	for i := 0; i < 5; i++ {
		testutil.CreateCompany(t, db, fmt.Sprintf("Steel Works %d", i))
	}
	testutil.CreateCompany(t, db, "Acme Industries")

	companies, total, err := repo.List(context.Background(), 1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	assert.Len(t, companies, 6)
	assert.Equal(t, "Acme Industries", companies[0].Name)
}

func TestCompanyRepository_List_Pagination(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	repo := repository.NewCompanyRepository(db)

	for i := 0; i < 5; i++ {
		testutil.CreateCompany(t, db, fmt.Sprintf("Company %d", i))
	}

	page1, total, err := repo.List(context.Background(), 1, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page1, 2)

	page3, total, err := repo.List(context.Background(), 3, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page3, 1)
}

func TestCompanyRepository_List_Search(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	repo := repository.NewCompanyRepository(db)

	testutil.CreateCompany(t, db, "Acme Industries")
	testutil.CreateCompany(t, db, "Bharat Steel")

	companies, total, err := repo.List(context.Background(), 1, 10, "acme")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, companies, 1)
	assert.Equal(t, "Acme Industries", companies[0].Name)
}

func TestCompanyRepository_Counts(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	repo := repository.NewCompanyRepository(db)

	company := testutil.CreateCompany(t, db, "Acme Industries")
	require.NoError(t, db.Create(&domain.Enquiry{Subject: "Shed", Status: domain.EnquiryStatusOpen, CompanyID: &company.ID}).Error)
	require.NoError(t, db.Create(&domain.Communication{Type: domain.CommunicationTypeCall, CompanyID: &company.ID}).Error)
	require.NoError(t, db.Create(&domain.Communication{Type: domain.CommunicationTypeEmail, CompanyID: &company.ID}).Error)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	enquiries, err := repo.GetEnquiriesCount(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, enquiries)

	comms, err := repo.GetCommunicationsCount(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, comms)
}
