package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/tropicaldog17/cardfolio/internal/logger"
	"github.com/tropicaldog17/cardfolio/internal/services"
)

type ExportHandler struct {
	service services.ExportService
	logger  *zap.Logger
}

func NewExportHandler(service services.ExportService, log *zap.Logger) *ExportHandler {
	return &ExportHandler{service: service, logger: logger.OrNop(log)}
}

// HandleExport dumps catalog, collection and transactions in one document.
// @Summary Export all data
// @Tags export
// @Produce json
// @Success 200 {object} models.Export
// @Failure 500 {object} ErrorResponse
// @Router /export [get]
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	export, err := h.service.Export(r.Context())
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="cardfolio-export.json"`)
	writeJSON(w, http.StatusOK, export)
}
