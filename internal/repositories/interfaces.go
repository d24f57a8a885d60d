package repositories

import (
	"context"

	"github.com/tropicaldog17/cardfolio/internal/models"
)

// CatalogRepository defines the interface for catalog entry data operations
type CatalogRepository interface {
	Create(ctx context.Context, entry *models.CatalogEntry) error
	GetByID(ctx context.Context, id string) (*models.CatalogEntry, error)
	List(ctx context.Context, filter *models.CatalogFilter) ([]*models.CatalogEntry, error)
	Update(ctx context.Context, entry *models.CatalogEntry) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

// HoldingRepository defines the interface for holding data operations
type HoldingRepository interface {
	Create(ctx context.Context, holding *models.Holding) error
	GetByID(ctx context.Context, id string) (*models.Holding, error)
	FindHoldings(ctx context.Context, filter *models.HoldingFilter) ([]*models.Holding, error)
	Update(ctx context.Context, holding *models.Holding) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

// TransactionRepository defines the interface for the append-only transaction ledger
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	List(ctx context.Context, filter *models.TransactionFilter) ([]*models.Transaction, error)
}

// PriceSnapshotRepository defines the interface for price history operations
type PriceSnapshotRepository interface {
	Create(ctx context.Context, snapshot *models.PriceSnapshot) error
	// FindLatest returns at most limit snapshots for the pair, newest first.
	FindLatest(ctx context.Context, catalogID, currency string, limit int) ([]*models.PriceSnapshot, error)
	// FindByCurrency returns every snapshot recorded in currency.
	FindByCurrency(ctx context.Context, currency string) ([]*models.PriceSnapshot, error)
}
