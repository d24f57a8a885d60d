package handlers

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	apperrors "github.com/tropicaldog17/cardfolio/internal/errors"
	"github.com/tropicaldog17/cardfolio/internal/logger"
	"github.com/tropicaldog17/cardfolio/internal/models"
	"github.com/tropicaldog17/cardfolio/internal/services"
)

type PortfolioHandler struct {
	service     services.PortfolioService
	defaultDays int
	logger      *zap.Logger
}

func NewPortfolioHandler(service services.PortfolioService, defaultDays int, log *zap.Logger) *PortfolioHandler {
	if defaultDays < 1 {
		defaultDays = 30
	}
	return &PortfolioHandler{service: service, defaultDays: defaultDays, logger: logger.OrNop(log)}
}

// HandleSummary values the whole portfolio.
// @Summary Get portfolio summary
// @Description Totals, per-holding lines and the top five movers in the requested currency
// @Tags portfolio
// @Produce json
// @Param currency query string false "Output currency (default EUR)"
// @Success 200 {object} models.PortfolioSummary
// @Failure 500 {object} ErrorResponse
// @Router /portfolio/summary [get]
func (h *PortfolioHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetPortfolioSummary(r.Context(), r.URL.Query().Get("currency"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// HandleSummaryCSV exports the summary lines as CSV.
// @Summary Export portfolio summary as CSV
// @Tags portfolio
// @Produce text/csv
// @Param currency query string false "Output currency (default EUR)"
// @Success 200 {string} string "CSV document"
// @Failure 500 {object} ErrorResponse
// @Router /portfolio/summary.csv [get]
func (h *PortfolioHandler) HandleSummaryCSV(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetPortfolioSummary(r.Context(), r.URL.Query().Get("currency"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	var buf bytes.Buffer
	if err := gocsv.Marshal(summaryRows(summary), &buf); err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="portfolio-summary.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// HandleSeries returns the reconstructed daily value curve with its statistics.
// @Summary Get daily portfolio value series
// @Tags portfolio
// @Produce json
// @Param currency query string false "Output currency (default EUR)"
// @Param days query int false "Lookback window in days"
// @Success 200 {object} models.DailySeries
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /portfolio/series [get]
func (h *PortfolioHandler) HandleSeries(w http.ResponseWriter, r *http.Request) {
	days := h.defaultDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, h.logger, r, apperrors.NewValidation("days", "must be an integer"))
			return
		}
		days = v
	}

	points, err := h.service.GetDailySeries(r.Context(), r.URL.Query().Get("currency"), days)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	stats, err := services.SeriesStats(points)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	currency := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("currency")))
	if currency == "" {
		currency = models.ReferenceCurrency
	}
	writeJSON(w, http.StatusOK, &models.DailySeries{
		Currency:     currency,
		LookbackDays: days,
		Points:       points,
		Stats:        stats,
	})
}

func summaryRows(summary *models.PortfolioSummary) []*models.SummaryCSVRow {
	rows := make([]*models.SummaryCSVRow, 0, len(summary.Holdings))
	for _, line := range summary.Holdings {
		rows = append(rows, &models.SummaryCSVRow{
			HoldingID:    line.Holding.ID,
			Name:         line.Holding.Name,
			Category:     string(line.Holding.Category),
			Quantity:     line.Holding.Quantity,
			Currency:     summary.Currency,
			CurrentPrice: line.CurrentPrice.StringFixed(2),
			Cost:         line.Cost.StringFixed(2),
			CurrentValue: line.CurrentValue.StringFixed(2),
			Unrealized:   line.Unrealized.StringFixed(2),
			Change24h:    line.Change24h.StringFixed(4),
		})
	}
	return rows
}
