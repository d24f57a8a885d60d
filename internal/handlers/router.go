package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/tropicaldog17/cardfolio/internal/logger"
)

// Handlers groups the HTTP handlers mounted by NewRouter
type Handlers struct {
	Catalog      *CatalogHandler
	Holdings     *HoldingHandler
	Transactions *TransactionHandler
	Prices       *PriceHandler
	Portfolio    *PortfolioHandler
	Export       *ExportHandler
}

// NewRouter registers every API route. health backs GET /health.
func NewRouter(h *Handlers, health func() error, log *zap.Logger) *mux.Router {
	log = logger.OrNop(log)
	router := mux.NewRouter()
	router.Use(corsMiddleware, requestLogger(log))

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			if err := health(); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "cardfolio"})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/catalog", h.Catalog.HandleCatalog).Methods(http.MethodGet, http.MethodPost, http.MethodOptions)
	api.HandleFunc("/catalog/search", h.Catalog.HandleSearch).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/catalog/{id}", h.Catalog.HandleCatalogEntry).Methods(http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodOptions)

	api.HandleFunc("/holdings", h.Holdings.HandleHoldings).Methods(http.MethodGet, http.MethodPost, http.MethodOptions)
	api.HandleFunc("/holdings/{id}", h.Holdings.HandleHolding).Methods(http.MethodGet, http.MethodPatch, http.MethodDelete, http.MethodOptions)

	api.HandleFunc("/transactions", h.Transactions.HandleTransactions).Methods(http.MethodGet, http.MethodPost, http.MethodOptions)
	api.HandleFunc("/transactions/{id}", h.Transactions.HandleTransaction).Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/prices", h.Prices.HandleRecordPrice).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/prices/simulate", h.Prices.HandleSimulate).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/prices/fetch", h.Prices.HandleFetch).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/prices/latest", h.Prices.HandleLatest).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/prices/{catalog_id}", h.Prices.HandlePriceHistory).Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/portfolio/summary", h.Portfolio.HandleSummary).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/portfolio/summary.csv", h.Portfolio.HandleSummaryCSV).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/portfolio/series", h.Portfolio.HandleSeries).Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/export", h.Export.HandleExport).Methods(http.MethodGet, http.MethodOptions)

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return router
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func requestLogger(log *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
