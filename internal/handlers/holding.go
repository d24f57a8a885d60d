package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/tropicaldog17/cardfolio/internal/logger"
	"github.com/tropicaldog17/cardfolio/internal/models"
	"github.com/tropicaldog17/cardfolio/internal/services"
)

type HoldingHandler struct {
	service services.HoldingService
	logger  *zap.Logger
}

func NewHoldingHandler(service services.HoldingService, log *zap.Logger) *HoldingHandler {
	return &HoldingHandler{service: service, logger: logger.OrNop(log)}
}

// HandleHoldings handles collection-level operations for holdings.
// @Summary List or create holdings
// @Description When catalog_id is given it must exist; blank descriptive fields are copied from it
// @Tags holdings
// @Accept json
// @Produce json
// @Param owner_id query string false "Owner"
// @Param catalog_id query string false "Catalog entry ID"
// @Param category query string false "Category"
// @Success 200 {array} models.Holding
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /holdings [get]
// @Router /holdings [post]
func (h *HoldingHandler) HandleHoldings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		filter := &models.HoldingFilter{
			OwnerID:   q.Get("owner_id"),
			CatalogID: q.Get("catalog_id"),
			Category:  models.Category(q.Get("category")),
		}
		if filter.CatalogID != "" {
			if _, err := parseID("catalog_id", filter.CatalogID); err != nil {
				writeError(w, h.logger, r, err)
				return
			}
		}
		holdings, err := h.service.ListHoldings(r.Context(), filter)
		if err != nil {
			writeError(w, h.logger, r, err)
			return
		}
		writeJSON(w, http.StatusOK, holdings)
	case http.MethodPost:
		var holding models.Holding
		if err := decodeJSON(r, &holding); err != nil {
			writeError(w, h.logger, r, err)
			return
		}
		if err := checkRef("catalog_id", holding.CatalogID); err != nil {
			writeError(w, h.logger, r, err)
			return
		}
		holding.ID = ""
		if err := h.service.CreateHolding(r.Context(), &holding); err != nil {
			writeError(w, h.logger, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, &holding)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleHolding handles item-level operations for a holding.
// PATCH accepts only purchase_price, purchase_currency, condition, grading
// fields, quantity and purchase_date.
// @Summary Get, update, or delete a holding
// @Tags holdings
// @Accept json
// @Produce json
// @Param id path string true "Holding ID"
// @Param update body models.HoldingUpdate false "Mutable fields"
// @Success 200 {object} models.Holding
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /holdings/{id} [get]
// @Router /holdings/{id} [patch]
// @Router /holdings/{id} [delete]
func (h *HoldingHandler) HandleHolding(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("id", mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		holding, err := h.service.GetHolding(r.Context(), id)
		if err != nil {
			writeError(w, h.logger, r, err)
			return
		}
		writeJSON(w, http.StatusOK, holding)
	case http.MethodPatch:
		var update models.HoldingUpdate
		if err := decodeJSON(r, &update); err != nil {
			writeError(w, h.logger, r, err)
			return
		}
		holding, err := h.service.UpdateHolding(r.Context(), id, &update)
		if err != nil {
			writeError(w, h.logger, r, err)
			return
		}
		writeJSON(w, http.StatusOK, holding)
	case http.MethodDelete:
		if err := h.service.DeleteHolding(r.Context(), id); err != nil {
			writeError(w, h.logger, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
