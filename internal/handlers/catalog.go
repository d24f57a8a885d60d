package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/tropicaldog17/cardfolio/internal/logger"
	"github.com/tropicaldog17/cardfolio/internal/models"
	"github.com/tropicaldog17/cardfolio/internal/services"
)

type CatalogHandler struct {
	service services.CatalogService
	logger  *zap.Logger
}

func NewCatalogHandler(service services.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{service: service, logger: logger.OrNop(log)}
}

// HandleCatalog handles collection-level operations for catalog entries.
// @Summary List or create catalog entries
// @Description List catalog entries or create a new one
// @Tags catalog
// @Accept json
// @Produce json
// @Param category query string false "card_raw, card_graded or sealed"
// @Param name query string false "Case-insensitive name substring"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} models.CatalogEntry
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /catalog [get]
// @Router /catalog [post]
func (h *CatalogHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		filter := &models.CatalogFilter{
			Category: models.Category(q.Get("category")),
			Name:     q.Get("name"),
			Limit:    queryInt(r, "limit", 0),
			Offset:   queryInt(r, "offset", 0),
		}
		entries, err := h.service.ListEntries(r.Context(), filter)
		if err != nil {
			writeError(w, h.logger, r, err)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	case http.MethodPost:
		var entry models.CatalogEntry
		if err := decodeJSON(r, &entry); err != nil {
			writeError(w, h.logger, r, err)
			return
		}
		entry.ID = ""
		if err := h.service.CreateEntry(r.Context(), &entry); err != nil {
			writeError(w, h.logger, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, &entry)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleSearch matches q against name, set name and number.
// @Summary Search the catalog
// @Tags catalog
// @Produce json
// @Param q query string false "Case-insensitive text"
// @Param limit query int false "Maximum results (default 20, at most 100)"
// @Success 200 {array} models.CatalogEntry
// @Failure 500 {object} ErrorResponse
// @Router /catalog/search [get]
func (h *CatalogHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.SearchEntries(r.Context(), r.URL.Query().Get("q"), queryInt(r, "limit", 0))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// HandleCatalogEntry handles item-level operations for a catalog entry.
// Deleting an entry leaves holdings and snapshots that reference it in place.
// @Summary Get, update, or delete a catalog entry
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Catalog entry ID"
// @Success 200 {object} models.CatalogEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /catalog/{id} [get]
// @Router /catalog/{id} [put]
// @Router /catalog/{id} [delete]
func (h *CatalogHandler) HandleCatalogEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("id", mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		entry, err := h.service.GetEntry(r.Context(), id)
		if err != nil {
			writeError(w, h.logger, r, err)
			return
		}
		writeJSON(w, http.StatusOK, entry)
	case http.MethodPut:
		var entry models.CatalogEntry
		if err := decodeJSON(r, &entry); err != nil {
			writeError(w, h.logger, r, err)
			return
		}
		entry.ID = id
		if err := h.service.UpdateEntry(r.Context(), &entry); err != nil {
			writeError(w, h.logger, r, err)
			return
		}
		updated, err := h.service.GetEntry(r.Context(), id)
		if err != nil {
			writeError(w, h.logger, r, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		if err := h.service.DeleteEntry(r.Context(), id); err != nil {
			writeError(w, h.logger, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
