package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/tropicaldog17/cardfolio/internal/logger"
	"github.com/tropicaldog17/cardfolio/internal/models"
	"github.com/tropicaldog17/cardfolio/internal/services"
)

type TransactionHandler struct {
	service services.TransactionService
	logger  *zap.Logger
}

func NewTransactionHandler(service services.TransactionService, log *zap.Logger) *TransactionHandler {
	return &TransactionHandler{service: service, logger: logger.OrNop(log)}
}

// HandleTransactions handles collection-level operations for the ledger.
// @Summary List or create transactions
// @Description Ledger entries are append-only
// @Tags transactions
// @Accept json
// @Produce json
// @Param owner_id query string false "Owner"
// @Param holding_id query string false "Holding ID"
// @Param type query string false "buy or sell"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Transaction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions [get]
// @Router /transactions [post]
func (h *TransactionHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listTransactions(w, r)
	case http.MethodPost:
		h.createTransaction(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleTransaction returns a single ledger entry.
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /transactions/{id} [get]
func (h *TransactionHandler) HandleTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := parseID("id", mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	tx, err := h.service.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (h *TransactionHandler) listTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &models.TransactionFilter{
		OwnerID:   q.Get("owner_id"),
		HoldingID: q.Get("holding_id"),
		Type:      models.TransactionType(q.Get("type")),
		Limit:     queryInt(r, "limit", 0),
		Offset:    queryInt(r, "offset", 0),
	}

	transactions, err := h.service.ListTransactions(r.Context(), filter)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var tx models.Transaction
	if err := decodeJSON(r, &tx); err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	if err := checkRef("holding_id", tx.HoldingID); err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	tx.ID = ""

	if err := h.service.CreateTransaction(r.Context(), &tx); err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, &tx)
}

// queryInt reads an integer query parameter; malformed values fall back to def
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
