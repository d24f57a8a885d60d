package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	apperrors "github.com/tropicaldog17/cardfolio/internal/errors"
	"github.com/tropicaldog17/cardfolio/internal/logger"
	"github.com/tropicaldog17/cardfolio/internal/models"
	"github.com/tropicaldog17/cardfolio/internal/services"
)

const defaultHistoryLimit = 100

type PriceHandler struct {
	service   services.PriceService
	simulator services.MarketSimulator
	logger    *zap.Logger
}

func NewPriceHandler(service services.PriceService, simulator services.MarketSimulator, log *zap.Logger) *PriceHandler {
	return &PriceHandler{service: service, simulator: simulator, logger: logger.OrNop(log)}
}

// HandleRecordPrice appends one price observation.
// @Summary Record a price snapshot
// @Description The catalog entry must exist; timestamp defaults to now and source to manual
// @Tags prices
// @Accept json
// @Produce json
// @Param snapshot body models.PriceSnapshot true "Snapshot"
// @Success 201 {object} models.PriceSnapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /prices [post]
func (h *PriceHandler) HandleRecordPrice(w http.ResponseWriter, r *http.Request) {
	var snap models.PriceSnapshot
	if err := decodeJSON(r, &snap); err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	if _, err := parseID("catalog_id", snap.CatalogID); err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	snap.ID = ""

	if err := h.service.RecordSnapshot(r.Context(), &snap); err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, &snap)
}

// HandlePriceHistory lists snapshots for one catalog entry, newest first.
// @Summary Get price history
// @Tags prices
// @Produce json
// @Param catalog_id path string true "Catalog entry ID"
// @Param currency query string false "Currency (default EUR)"
// @Param limit query int false "Maximum number of snapshots (default 100)"
// @Success 200 {array} models.PriceSnapshot
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /prices/{catalog_id} [get]
func (h *PriceHandler) HandlePriceHistory(w http.ResponseWriter, r *http.Request) {
	catalogID, err := parseID("catalog_id", mux.Vars(r)["catalog_id"])
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	currency := r.URL.Query().Get("currency")
	if currency == "" {
		currency = models.ReferenceCurrency
	}

	history, err := h.service.GetHistory(r.Context(), catalogID, currency, queryInt(r, "limit", defaultHistoryLimit))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// HandleSimulate records one mock snapshot per catalog entry.
// @Summary Simulate a price acquisition run
// @Tags prices
// @Produce json
// @Param currency query string false "Currency (default EUR)"
// @Success 201 {array} models.PriceSnapshot
// @Failure 500 {object} ErrorResponse
// @Router /prices/simulate [post]
func (h *PriceHandler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	snaps, err := h.simulator.Simulate(r.Context(), r.URL.Query().Get("currency"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, snaps)
}

// LatestPriceResponse is returned when no snapshot exists and none was fetched
type LatestPriceResponse struct {
	CatalogID string  `json:"catalog_id"`
	Currency  string  `json:"currency"`
	Price     *string `json:"price"`
}

// HandleLatest returns the newest snapshot for a catalog entry.
// @Summary Get the latest price
// @Description With fetch_if_missing (default true) a mock quote is recorded when no snapshot exists
// @Tags prices
// @Produce json
// @Param catalog_id query string true "Catalog entry ID"
// @Param currency query string false "Currency (default EUR)"
// @Param fetch_if_missing query bool false "Record a quote when no snapshot exists"
// @Success 200 {object} models.PriceSnapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /prices/latest [get]
func (h *PriceHandler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	catalogID, err := parseID("catalog_id", q.Get("catalog_id"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	fetch := true
	if raw := q.Get("fetch_if_missing"); raw != "" {
		if fetch, err = strconv.ParseBool(raw); err != nil {
			writeError(w, h.logger, r, apperrors.NewValidation("fetch_if_missing", "must be a boolean"))
			return
		}
	}

	snap, err := h.simulator.Latest(r.Context(), catalogID, q.Get("currency"), fetch)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	if snap == nil {
		currency := strings.ToUpper(strings.TrimSpace(q.Get("currency")))
		if currency == "" {
			currency = models.ReferenceCurrency
		}
		writeJSON(w, http.StatusOK, LatestPriceResponse{CatalogID: catalogID, Currency: currency})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// HandleFetch records a mock quote for one catalog entry.
// @Summary Fetch a mock quote
// @Tags prices
// @Produce json
// @Param catalog_id query string true "Catalog entry ID"
// @Param currency query string false "Currency (default EUR)"
// @Success 201 {object} models.PriceSnapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /prices/fetch [post]
func (h *PriceHandler) HandleFetch(w http.ResponseWriter, r *http.Request) {
	catalogID, err := parseID("catalog_id", r.URL.Query().Get("catalog_id"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	snap, err := h.simulator.FetchOne(r.Context(), catalogID, r.URL.Query().Get("currency"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}
