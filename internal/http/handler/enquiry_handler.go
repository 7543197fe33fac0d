package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fabrimet/salesops-api/internal/domain"
	"github.com/fabrimet/salesops-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EnquiryHandler struct {
	enquiryService   *service.EnquiryService
	quotationService *service.QuotationService
	logger           *zap.Logger
}

func NewEnquiryHandler(enquiryService *service.EnquiryService, quotationService *service.QuotationService, logger *zap.Logger) *EnquiryHandler {
	return &EnquiryHandler{
		enquiryService:   enquiryService,
		quotationService: quotationService,
		logger:           logger,
	}
}

func (h *EnquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 {
		pageSize = 20
	}
	search := r.URL.Query().Get("search")
	status := domain.EnquiryStatus(r.URL.Query().Get("status"))

	var companyID *uuid.UUID
	if raw := r.URL.Query().Get("companyId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid company ID format")
			return
		}
		companyID = &id
	}

	result, err := h.enquiryService.List(r.Context(), page, pageSize, search, status, companyID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to list enquiries", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list enquiries")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *EnquiryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid enquiry ID format")
		return
	}

	enquiry, err := h.enquiryService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEnquiryNotFound) {
			respondWithError(w, http.StatusNotFound, "Enquiry not found")
			return
		}
		h.logger.Error("failed to get enquiry", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get enquiry")
		return
	}

	respondJSON(w, http.StatusOK, enquiry)
}

func (h *EnquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEnquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	enquiry, err := h.enquiryService.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCompanyNotFound):
			respondWithError(w, http.StatusNotFound, "Company not found")
		case errors.Is(err, service.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to create enquiry", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to create enquiry")
		}
		return
	}

	w.Header().Set("Location", "/api/v1/enquiries/"+enquiry.ID.String())
	respondJSON(w, http.StatusCreated, enquiry)
}

func (h *EnquiryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid enquiry ID format")
		return
	}

	var req domain.UpdateEnquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	enquiry, err := h.enquiryService.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEnquiryNotFound):
			respondWithError(w, http.StatusNotFound, "Enquiry not found")
		case errors.Is(err, service.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to update enquiry", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to update enquiry")
		}
		return
	}

	respondJSON(w, http.StatusOK, enquiry)
}

func (h *EnquiryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid enquiry ID format")
		return
	}

	if err := h.enquiryService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrEnquiryNotFound) {
			respondWithError(w, http.StatusNotFound, "Enquiry not found")
			return
		}
		h.logger.Error("failed to delete enquiry", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete enquiry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EnquiryHandler) ListQuotations(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid enquiry ID format")
		return
	}

	quotations, err := h.quotationService.ListByEnquiry(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to list quotations", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list quotations")
		return
	}

	respondJSON(w, http.StatusOK, quotations)
}
