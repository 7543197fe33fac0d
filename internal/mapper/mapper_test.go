package mapper_test

import (
	"testing"
	"time"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/fabrimet/salesops-api/internal/mapper"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCompanyDTO(t *testing.T) {
	created := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	companyID := uuid.New()
	company := &domain.Company{
		BaseModel:     domain.BaseModel{ID: companyID, CreatedAt: created, UpdatedAt: created},
		Name:          "Acme Industries",
		SupplierNotes: "prefers rail freight",
		Offices: []domain.Office{
			{BaseModel: domain.BaseModel{ID: uuid.New()}, CompanyID: companyID, Address: "12 Dock Rd", City: "Pune", IsHeadOffice: true},
		},
		Plants: []domain.Plant{
			{BaseModel: domain.BaseModel{ID: uuid.New()}, CompanyID: companyID, Address: "Plot 7", City: "Chakan"},
		},
		ContactPersons: []domain.ContactPerson{
			{BaseModel: domain.BaseModel{ID: uuid.New()}, CompanyID: companyID, Name: "Asha", IsPrimary: true},
		},
	}

	dto := mapper.ToCompanyDTO(company)

	assert.Equal(t, companyID, dto.ID)
	assert.Equal(t, "Acme Industries", dto.Name)
	assert.Equal(t, "prefers rail freight", dto.SupplierNotes)
	assert.Equal(t, "2026-03-15T10:30:00Z", dto.CreatedAt)
	require.Len(t, dto.Offices, 1)
	assert.True(t, dto.Offices[0].IsHeadOffice)
	require.Len(t, dto.Plants, 1)
	assert.Equal(t, "Chakan", dto.Plants[0].City)
	require.Len(t, dto.ContactPersons, 1)
	assert.True(t, dto.ContactPersons[0].IsPrimary)
}

func TestToEnquiryDTO_TimestampsAndCompanyName(t *testing.T) {
	received := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	due := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	enquiry := &domain.Enquiry{
		BaseModel:  domain.BaseModel{ID: uuid.New()},
		Subject:    "Warehouse shed",
		Status:     domain.EnquiryStatusOpen,
		ReceivedAt: received,
		DueDate:    &due,
		Company:    &domain.Company{Name: "Acme Industries"},
	}

	dto := mapper.ToEnquiryDTO(enquiry)

	assert.Equal(t, "2026-06-01T09:00:00Z", dto.ReceivedAt)
	assert.Equal(t, "2026-09-30T00:00:00Z", dto.DueDate)
	assert.Equal(t, "Acme Industries", dto.CompanyName)
}

func TestToEnquiryDTO_NilDueDate(t *testing.T) {
	enquiry := &domain.Enquiry{
		BaseModel:  domain.BaseModel{ID: uuid.New()},
		Subject:    "Walkway",
		Status:     domain.EnquiryStatusOpen,
		ReceivedAt: time.Now(),
	}

	dto := mapper.ToEnquiryDTO(enquiry)

	assert.Empty(t, dto.DueDate)
	assert.Empty(t, dto.CompanyName)
}

func TestToQuotationDTO_IncludesItems(t *testing.T) {
	quotationID := uuid.New()
	quotation := &domain.Quotation{
		BaseModel:       domain.BaseModel{ID: quotationID},
		QuotationNumber: "Q-2026-0001",
		Status:          domain.QuotationStatusDraft,
		TotalAmount:     6000,
		Currency:        "INR",
		Items: []domain.QuotationItem{
			{BaseModel: domain.BaseModel{ID: uuid.New()}, QuotationID: quotationID, Description: "ISMB 200 beam", Quantity: "4", Unit: "MT", Rate: 1500},
		},
	}

	dto := mapper.ToQuotationDTO(quotation)

	assert.Equal(t, "Q-2026-0001", dto.QuotationNumber)
	require.Len(t, dto.Items, 1)
	assert.Equal(t, "4", dto.Items[0].Quantity)
	assert.Empty(t, dto.ValidUntil)
}
