package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func newCompanyRouter(t *testing.T) (chi.Router, *gorm.DB) {
	t.Helper()
	db := testutil.SetupNewSchemaDB(t)
	logger := testutil.NewTestLogger()

	svc := service.NewCompanyService(
		repository.NewCompanyRepository(db),
		repository.NewOfficeRepository(db),
		repository.NewPlantRepository(db),
		repository.NewContactPersonRepository(db),
		logger,
	)
	h := handler.NewCompanyHandler(svc, logger)

	r := chi.NewRouter()
	r.Route("/companies", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/offices", h.AddOffice)
		r.Post("/{id}/plants", h.AddPlant)
		r.Post("/{id}/contact-persons", h.AddContactPerson)
	})
	return r, db
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCompanyHandler_Create(t *testing.T) {
	router, _ := newCompanyRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/companies", domain.CreateCompanyRequest{
		Name:         "Acme Industries",
		POStructures: true,
	})
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Location"))

	var dto domain.CompanyDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
	assert.Equal(t, "Acme Industries", dto.Name)
	assert.True(t, dto.POStructures)
}

func TestCompanyHandler_Create_ValidationError(t *testing.T) {
	router, _ := newCompanyRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/companies", domain.CreateCompanyRequest{Name: ""})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
	assert.Equal(t, domain.ErrorTypeValidation, apiErr.Type)
	assert.Contains(t, apiErr.Errors, "name")
}

func TestCompanyHandler_Create_Conflict(t *testing.T) {
	router, _ := newCompanyRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/companies", domain.CreateCompanyRequest{Name: "Acme Industries"})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/companies", domain.CreateCompanyRequest{Name: "Acme Industries"})
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestCompanyHandler_GetByID(t *testing.T) {
	router, db := newCompanyRouter(t)
	company := testutil.CreateCompany(t, db, "Acme Industries")

	rr := doJSON(t, router, http.MethodGet, "/companies/"+company.ID.String(), nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var dto domain.CompanyDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
	assert.Equal(t, "Acme Industries", dto.Name)
}

func TestCompanyHandler_GetByID_BadID(t *testing.T) {
	router, _ := newCompanyRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/companies/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCompanyHandler_GetByID_NotFound(t *testing.T) {
	router, _ := newCompanyRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/companies/5bb31f57-9017-4904-b4a4-b1c85fabe169", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCompanyHandler_List(t *testing.T) {
	router, db := newCompanyRouter(t)
	testutil.CreateCompany(t, db, "Acme Industries")
	testutil.CreateCompany(t, db, "Bharat Steel")

	rr := doJSON(t, router, http.MethodGet, "/companies?search=acme", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data  []domain.CompanyDTO `json:"data"`
		Total int64               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Acme Industries", resp.Data[0].Name)
}

func TestCompanyHandler_Delete(t *testing.T) {
	router, db := newCompanyRouter(t)
	company := testutil.CreateCompany(t, db, "Acme Industries")

	rr := doJSON(t, router, http.MethodDelete, "/companies/"+company.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, router, http.MethodDelete, "/companies/"+company.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCompanyHandler_AddOffice(t *testing.T) {
	router, db := newCompanyRouter(t)
	company := testutil.CreateCompany(t, db, "Acme Industries")

	rr := doJSON(t, router, http.MethodPost, "/companies/"+company.ID.String()+"/offices", domain.CreateOfficeRequest{
		City:         "Pune",
		IsHeadOffice: true,
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var dto domain.OfficeDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
	assert.Equal(t, "Pune", dto.City)
	assert.True(t, dto.IsHeadOffice)
}

func TestCompanyHandler_AddContactPerson_BothLocations(t *testing.T) {
	router, db := newCompanyRouter(t)
	company := testutil.CreateCompany(t, db, "Acme Industries")

	officeID := company.ID
	plantID := company.ID
	rr := doJSON(t, router, http.MethodPost, "/companies/"+company.ID.String()+"/contact-persons", domain.CreateContactPersonRequest{
		Name:     "Asha",
		OfficeID: &officeID,
		PlantID:  &plantID,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
