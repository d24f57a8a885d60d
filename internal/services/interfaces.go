package services

import (
	"context"

	"github.com/tropicaldog17/cardfolio/internal/models"
)

// CatalogService defines the interface for catalog operations
type CatalogService interface {
	CreateEntry(ctx context.Context, entry *models.CatalogEntry) error
	GetEntry(ctx context.Context, id string) (*models.CatalogEntry, error)
	ListEntries(ctx context.Context, filter *models.CatalogFilter) ([]*models.CatalogEntry, error)
	SearchEntries(ctx context.Context, q string, limit int) ([]*models.CatalogEntry, error)
	UpdateEntry(ctx context.Context, entry *models.CatalogEntry) error
	DeleteEntry(ctx context.Context, id string) error
}

// HoldingService defines the interface for holding operations
type HoldingService interface {
	CreateHolding(ctx context.Context, holding *models.Holding) error
	GetHolding(ctx context.Context, id string) (*models.Holding, error)
	ListHoldings(ctx context.Context, filter *models.HoldingFilter) ([]*models.Holding, error)
	UpdateHolding(ctx context.Context, id string, update *models.HoldingUpdate) (*models.Holding, error)
	DeleteHolding(ctx context.Context, id string) error
}

// TransactionService defines the interface for ledger operations
type TransactionService interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filter *models.TransactionFilter) ([]*models.Transaction, error)
}

// PriceService defines the interface for recording and reading price history
type PriceService interface {
	RecordSnapshot(ctx context.Context, snapshot *models.PriceSnapshot) error
	GetHistory(ctx context.Context, catalogID, currency string, limit int) ([]*models.PriceSnapshot, error)
}

// PortfolioService defines the read-only valuation operations
type PortfolioService interface {
	GetPortfolioSummary(ctx context.Context, outputCurrency string) (*models.PortfolioSummary, error)
	GetDailySeries(ctx context.Context, outputCurrency string, lookbackDays int) ([]*models.DailyValue, error)
}

// MarketSimulator records synthetic price observations
type MarketSimulator interface {
	Simulate(ctx context.Context, currency string) ([]*models.PriceSnapshot, error)
	FetchOne(ctx context.Context, catalogID, currency string) (*models.PriceSnapshot, error)
	Latest(ctx context.Context, catalogID, currency string, fetchIfMissing bool) (*models.PriceSnapshot, error)
}

// ExportService dumps the stored collection
type ExportService interface {
	Export(ctx context.Context) (*models.Export, error)
}
