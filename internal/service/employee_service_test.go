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
)

func TestEmployeeService_List(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	svc := service.NewEmployeeService(repository.NewEmployeeRepository(db), testutil.NewTestLogger())
	ctx := context.Background()

	require.NoError(t, db.Create(&domain.Employee{Name: "Sunil", Email: "sunil@fabrimet.test", Role: domain.EmployeeRoleSales, IsActive: true}).Error)
	require.NoError(t, db.Create(&domain.Employee{Name: "Meera", Email: "meera@fabrimet.test", Role: domain.EmployeeRoleAdmin, IsActive: false}).Error)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Sunil", active[0].Name)
	assert.True(t, active[0].IsActive)
}

func TestEmployeeService_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	svc := service.NewEmployeeService(repository.NewEmployeeRepository(db), testutil.NewTestLogger())

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDocumentService_ListByEnquiry(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	svc := service.NewDocumentService(
		repository.NewDocumentRepository(db),
		repository.NewEnquiryRepository(db),
		repository.NewQuotationRepository(db),
		testutil.NewTestLogger(),
	)
	ctx := context.Background()

	company := &domain.Company{Name: "Acme Industries"}
	require.NoError(t, db.Create(company).Error)
	enquiry := &domain.Enquiry{Subject: "Warehouse shed", Status: domain.EnquiryStatusOpen, CompanyID: &company.ID}
	require.NoError(t, db.Create(enquiry).Error)
	require.NoError(t, db.Create(&domain.Document{
		Filename:    "drawing-rev2.pdf",
		ContentType: "application/pdf",
		Size:        204800,
		StoragePath: "enquiries/drawing-rev2.pdf",
		EnquiryID:   &enquiry.ID,
	}).Error)

	docs, err := svc.ListByEnquiry(ctx, enquiry.ID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "drawing-rev2.pdf", docs[0].Filename)
	assert.Equal(t, int64(204800), docs[0].Size)
}

func TestDocumentService_ListByEnquiry_UnknownEnquiry(t *testing.T) {
	db := testutil.SetupNewSchemaDB(t)
	svc := service.NewDocumentService(
		repository.NewDocumentRepository(db),
		repository.NewEnquiryRepository(db),
		repository.NewQuotationRepository(db),
		testutil.NewTestLogger(),
	)

	_, err := svc.ListByEnquiry(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrEnquiryNotFound)
}
