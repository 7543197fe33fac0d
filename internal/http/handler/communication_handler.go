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

type CommunicationHandler struct {
	commService *service.CommunicationService
	logger      *zap.Logger
}

func NewCommunicationHandler(commService *service.CommunicationService, logger *zap.Logger) *CommunicationHandler {
	return &CommunicationHandler{
		commService: commService,
		logger:      logger,
	}
}

func (h *CommunicationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 {
		pageSize = 20
	}
	commType := domain.CommunicationType(r.URL.Query().Get("type"))

	var companyID *uuid.UUID
	if raw := r.URL.Query().Get("companyId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid company ID format")
			return
		}
		companyID = &id
	}

	result, err := h.commService.List(r.Context(), page, pageSize, commType, companyID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to list communications", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list communications")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *CommunicationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid communication ID format")
		return
	}

	comm, err := h.commService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Communication not found")
			return
		}
		h.logger.Error("failed to get communication", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get communication")
		return
	}

	respondJSON(w, http.StatusOK, comm)
}

func (h *CommunicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCommunicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	comm, err := h.commService.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCompanyNotFound):
			respondWithError(w, http.StatusNotFound, "Company not found")
		case errors.Is(err, service.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Contact person not found")
		case errors.Is(err, service.ErrLocationMismatch):
			respondWithError(w, http.StatusBadRequest, "Contact person belongs to a different company")
		case errors.Is(err, service.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to create communication", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to create communication")
		}
		return
	}

	respondJSON(w, http.StatusCreated, comm)
}

func (h *CommunicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid communication ID format")
		return
	}

	if err := h.commService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Communication not found")
			return
		}
		h.logger.Error("failed to delete communication", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete communication")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
