package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/fabrimet/salesops-api/internal/http/handler"
	"github.com/fabrimet/salesops-api/internal/repository"
	"github.com/fabrimet/salesops-api/internal/service"
	"github.com/fabrimet/salesops-api/internal/testutil"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newEnquiryRouter(t *testing.T) (chi.Router, *gorm.DB) {
	t.Helper()
	db := testutil.SetupNewSchemaDB(t)
	logger := testutil.NewTestLogger()

	enquiryRepo := repository.NewEnquiryRepository(db)
	enquirySvc := service.NewEnquiryService(enquiryRepo, repository.NewCompanyRepository(db), logger)
	quotationSvc := service.NewQuotationService(repository.NewQuotationRepository(db), enquiryRepo, logger)
	h := handler.NewEnquiryHandler(enquirySvc, quotationSvc, logger)

	r := chi.NewRouter()
	r.Route("/enquiries", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Get("/{id}/quotations", h.ListQuotations)
	})
	return r, db
}

func TestEnquiryHandler_Create(t *testing.T) {
	router, db := newEnquiryRouter(t)
	company := testutil.CreateCompany(t, db, "Acme Industries")

	rr := doJSON(t, router, http.MethodPost, "/enquiries", domain.CreateEnquiryRequest{
		Subject:   "Warehouse shed",
		CompanyID: &company.ID,
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var dto domain.EnquiryDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
	assert.Equal(t, domain.EnquiryStatusOpen, dto.Status)
	assert.Equal(t, "Warehouse shed", dto.Subject)
}

func TestEnquiryHandler_Create_UnknownCompany(t *testing.T) {
	router, _ := newEnquiryRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/enquiries", map[string]string{
		"subject":   "Warehouse shed",
		"companyId": "5bb31f57-9017-4904-b4a4-b1c85fabe169",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestEnquiryHandler_List_StatusFilter(t *testing.T) {
	router, db := newEnquiryRouter(t)
	company := testutil.CreateCompany(t, db, "Acme Industries")
	require.NoError(t, db.Create(&domain.Enquiry{Subject: "A", Status: domain.EnquiryStatusOpen, CompanyID: &company.ID}).Error)
	require.NoError(t, db.Create(&domain.Enquiry{Subject: "B", Status: domain.EnquiryStatusWon, CompanyID: &company.ID}).Error)

	rr := doJSON(t, router, http.MethodGet, "/enquiries?status=won", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data  []domain.EnquiryDTO `json:"data"`
		Total int64               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Total)

	rr = doJSON(t, router, http.MethodGet, "/enquiries?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestEnquiryHandler_ListQuotations(t *testing.T) {
	router, db := newEnquiryRouter(t)
	company := testutil.CreateCompany(t, db, "Acme Industries")
	enquiry := &domain.Enquiry{Subject: "Shed", Status: domain.EnquiryStatusOpen, CompanyID: &company.ID}
	require.NoError(t, db.Create(enquiry).Error)
	require.NoError(t, db.Create(&domain.Quotation{EnquiryID: enquiry.ID, QuotationNumber: "Q-1", Status: domain.QuotationStatusDraft, Currency: "INR"}).Error)

	rr := doJSON(t, router, http.MethodGet, "/enquiries/"+enquiry.ID.String()+"/quotations", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var quotations []domain.QuotationDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &quotations))
	require.Len(t, quotations, 1)
	assert.Equal(t, "Q-1", quotations[0].QuotationNumber)
}

func TestEnquiryHandler_Update_InvalidStatus(t *testing.T) {
	router, db := newEnquiryRouter(t)
	company := testutil.CreateCompany(t, db, "Acme Industries")
	enquiry := &domain.Enquiry{Subject: "Shed", Status: domain.EnquiryStatusOpen, CompanyID: &company.ID}
	require.NoError(t, db.Create(enquiry).Error)

	rr := doJSON(t, router, http.MethodPut, "/enquiries/"+enquiry.ID.String(), map[string]string{
		"subject": "Shed",
		"status":  "bogus",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
