package handler

import (
	"net/http"

	"github.com/fabrimet/salesops-api/internal/service"
	"go.uber.org/zap"
)

type AdminHandler struct {
	backupService *service.BackupService
	logger        *zap.Logger
}

func NewAdminHandler(backupService *service.BackupService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		backupService: backupService,
		logger:        logger,
	}
}

// TriggerBackup runs a full database backup immediately, outside the
// nightly schedule.
func (h *AdminHandler) TriggerBackup(w http.ResponseWriter, r *http.Request) {
	path, err := h.backupService.RunBackup(r.Context())
	if err != nil {
		h.logger.Error("manual backup failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Backup failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"path": path})
}
