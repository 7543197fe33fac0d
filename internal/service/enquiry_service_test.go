package service_test

import (
	"context"
	"testing"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/fabrimet/salesops-api/internal/repository"
	"github.com/fabrimet/salesops-api/internal/service"
	"github.com/fabrimet/salesops-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newEnquiryService(t *testing.T) (*service.EnquiryService, *gorm.DB) {
	t.Helper()
	db := testutil.SetupNewSchemaDB(t)
	svc := service.NewEnquiryService(
		repository.NewEnquiryRepository(db),
		repository.NewCompanyRepository(db),
		testutil.NewTestLogger(),
	)
	return svc, db
}

func TestEnquiryService_Create(t *testing.T) {
	svc, db := newEnquiryService(t)
	company := testutil.CreateCompany(t, db, "Acme Industries")

	due := "2026-09-30"
	dto, err := svc.Create(context.Background(), &domain.CreateEnquiryRequest{
		Subject:   "Warehouse shed",
		CompanyID: &company.ID,
		DueDate:   &due,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.EnquiryStatusOpen, dto.Status)
	assert.Equal(t, "2026-09-30T00:00:00Z", dto.DueDate)
	assert.NotEmpty(t, dto.ReceivedAt)
}

func TestEnquiryService_Create_UnknownCompany(t *testing.T) {
	svc, _ := newEnquiryService(t)

	companyID := uuid.New()
	_, err := svc.Create(context.Background(), &domain.CreateEnquiryRequest{
		Subject:   "Warehouse shed",
		CompanyID: &companyID,
	})
	assert.ErrorIs(t, err, service.ErrCompanyNotFound)
}

func TestEnquiryService_Create_BadDueDate(t *testing.T) {
	svc, db := newEnquiryService(t)
	company := testutil.CreateCompany(t, db, "Acme Industries")

	due := "30/09/2026"
	_, err := svc.Create(context.Background(), &domain.CreateEnquiryRequest{
		Subject:   "Warehouse shed",
		CompanyID: &company.ID,
		DueDate:   &due,
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestEnquiryService_Update(t *testing.T) {
	svc, db := newEnquiryService(t)
	company := testutil.CreateCompany(t, db, "Acme Industries")

	created, err := svc.Create(context.Background(), &domain.CreateEnquiryRequest{
		Subject:   "Warehouse shed",
		CompanyID: &company.ID,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &domain.UpdateEnquiryRequest{
		Subject: "Warehouse shed, revised",
		Status:  domain.EnquiryStatusLost,
	})
	require.NoError(t, err)
	assert.Equal(t, "Warehouse shed, revised", updated.Subject)
	assert.Equal(t, domain.EnquiryStatusLost, updated.Status)
}

func TestEnquiryService_Update_InvalidStatus(t *testing.T) {
	svc, db := newEnquiryService(t)
	company := testutil.CreateCompany(t, db, "Acme Industries")

	created, err := svc.Create(context.Background(), &domain.CreateEnquiryRequest{
		Subject:   "Warehouse shed",
		CompanyID: &company.ID,
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &domain.UpdateEnquiryRequest{
		Subject: "Warehouse shed",
		Status:  "bogus",
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestEnquiryService_List_InvalidStatusFilter(t *testing.T) {
	svc, _ := newEnquiryService(t)

	_, err := svc.List(context.Background(), 1, 10, "", "bogus", nil)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestEnquiryService_Delete_NotFound(t *testing.T) {
	svc, _ := newEnquiryService(t)

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrEnquiryNotFound)
}
