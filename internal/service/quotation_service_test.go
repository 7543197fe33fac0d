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

func newQuotationService(t *testing.T) (*service.QuotationService, *gorm.DB) {
	t.Helper()
	db := testutil.SetupNewSchemaDB(t)
	svc := service.NewQuotationService(
		repository.NewQuotationRepository(db),
		repository.NewEnquiryRepository(db),
		testutil.NewTestLogger(),
	)
	return svc, db
}

func createOpenEnquiry(t *testing.T, db *gorm.DB) *domain.Enquiry {
	t.Helper()
	company := testutil.CreateCompany(t, db, "Acme Industries")
	enquiry := &domain.Enquiry{Subject: "Warehouse shed", Status: domain.EnquiryStatusOpen, CompanyID: &company.ID}
	require.NoError(t, db.Create(enquiry).Error)
	return enquiry
}

func TestQuotationService_Create(t *testing.T) {
	svc, db := newQuotationService(t)
	enquiry := createOpenEnquiry(t, db)

	dto, err := svc.Create(context.Background(), &domain.CreateQuotationRequest{
		EnquiryID:       enquiry.ID,
		QuotationNumber: "Q-2026-001",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.QuotationStatusDraft, dto.Status)
	assert.Equal(t, "INR", dto.Currency)

	// Creating a quotation moves an open enquiry to quoted.
	var gotEnquiry domain.Enquiry
	require.NoError(t, db.First(&gotEnquiry, "id = ?", enquiry.ID).Error)
	assert.Equal(t, domain.EnquiryStatusQuoted, gotEnquiry.Status)
}

func TestQuotationService_Create_EnquiryNotFound(t *testing.T) {
	svc, _ := newQuotationService(t)

	_, err := svc.Create(context.Background(), &domain.CreateQuotationRequest{EnquiryID: uuid.New()})
	assert.ErrorIs(t, err, service.ErrEnquiryNotFound)
}

func TestQuotationService_AddItem(t *testing.T) {
	svc, db := newQuotationService(t)
	enquiry := createOpenEnquiry(t, db)

	dto, err := svc.Create(context.Background(), &domain.CreateQuotationRequest{EnquiryID: enquiry.ID, QuotationNumber: "Q-1"})
	require.NoError(t, err)

	dto, err = svc.AddItem(context.Background(), dto.ID, &domain.AddQuotationItemRequest{
		Description: "beam",
		Quantity:    "4.000000000000000000000000000000",
		Unit:        "pcs",
		Rate:        1500,
	})
	require.NoError(t, err)
	require.Len(t, dto.Items, 1)
	// Drifted decimal text is normalized at the boundary.
	assert.Equal(t, "4", dto.Items[0].Quantity)
	assert.Equal(t, 6000.0, dto.TotalAmount)

	dto, err = svc.AddItem(context.Background(), dto.ID, &domain.AddQuotationItemRequest{
		Description: "sheet",
		Quantity:    "9.50",
		Unit:        "sqm",
		Rate:        100,
	})
	require.NoError(t, err)
	require.Len(t, dto.Items, 2)
	assert.Equal(t, 6950.0, dto.TotalAmount)

	// The items and the recomputed total are persisted, not just echoed.
	reloaded, err := svc.GetByID(context.Background(), dto.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 2)
	assert.Equal(t, 6950.0, reloaded.TotalAmount)
}

func TestQuotationService_UpdateStatus_AcceptedWinsEnquiry(t *testing.T) {
	svc, db := newQuotationService(t)
	enquiry := createOpenEnquiry(t, db)

	dto, err := svc.Create(context.Background(), &domain.CreateQuotationRequest{EnquiryID: enquiry.ID, QuotationNumber: "Q-1"})
	require.NoError(t, err)

	dto, err = svc.UpdateStatus(context.Background(), dto.ID, domain.QuotationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.QuotationStatusAccepted, dto.Status)

	var gotEnquiry domain.Enquiry
	require.NoError(t, db.First(&gotEnquiry, "id = ?", enquiry.ID).Error)
	assert.Equal(t, domain.EnquiryStatusWon, gotEnquiry.Status)
}

func TestQuotationService_UpdateStatus_Invalid(t *testing.T) {
	svc, db := newQuotationService(t)
	enquiry := createOpenEnquiry(t, db)

	dto, err := svc.Create(context.Background(), &domain.CreateQuotationRequest{EnquiryID: enquiry.ID})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), dto.ID, "bogus")
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestQuotationService_Delete_NotFound(t *testing.T) {
	svc, _ := newQuotationService(t)

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}
