package service_test

import (
	"context"
	"testing"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/fabrimet/salesops-api/internal/repository"
	"github.com/fabrimet/salesops-api/internal/service"
	"github.com/fabrimet/salesops-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetMetrics(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	svc := service.NewDashboardService(
		db,
		repository.NewCompanyRepository(db),
		repository.NewEnquiryRepository(db),
		repository.NewQuotationRepository(db),
		repository.NewCommunicationRepository(db),
		testutil.NewTestLogger(),
	)

	company := testutil.CreateCompany(t, db, "Acme Industries")
	require.NoError(t, db.Create(&domain.Office{CompanyID: company.ID, City: "Pune"}).Error)
	require.NoError(t, db.Create(&domain.Plant{CompanyID: company.ID, City: "Nashik"}).Error)
	require.NoError(t, db.Create(&domain.ContactPerson{CompanyID: company.ID, Name: "Asha"}).Error)

	open := &domain.Enquiry{Subject: "Shed", Status: domain.EnquiryStatusOpen, CompanyID: &company.ID}
	require.NoError(t, db.Create(open).Error)
	won := &domain.Enquiry{Subject: "Mezzanine", Status: domain.EnquiryStatusWon, CompanyID: &company.ID}
	require.NoError(t, db.Create(won).Error)
	require.NoError(t, db.Create(&domain.Quotation{EnquiryID: won.ID, QuotationNumber: "Q-1", Status: domain.QuotationStatusAccepted, Currency: "INR"}).Error)
	require.NoError(t, db.Create(&domain.Communication{Type: domain.CommunicationTypeCall, CompanyID: &company.ID}).Error)

	metrics, err := svc.GetMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), metrics.Companies)
	assert.Equal(t, int64(1), metrics.Offices)
	assert.Equal(t, int64(1), metrics.Plants)
	assert.Equal(t, int64(1), metrics.ContactPersons)
	assert.Equal(t, int64(2), metrics.Enquiries)
	assert.Equal(t, int64(1), metrics.Quotations)
	assert.Equal(t, int64(1), metrics.Communications)
	assert.Equal(t, int64(1), metrics.EnquiriesByStatus["open"])
	assert.Equal(t, int64(1), metrics.EnquiriesByStatus["won"])
	assert.Equal(t, int64(0), metrics.EnquiriesByStatus["lost"])
}

func TestBackupService_RunBackup(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	dir := t.TempDir()
	svc := service.NewBackupService(db, testutil.NewTestLogger(), dir, 0)

	testutil.CreateCompany(t, db, "Acme Industries")

	path, err := svc.RunBackup(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Contains(t, path, dir)
}
