package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tropicaldog17/cardfolio/internal/models"
	"github.com/tropicaldog17/cardfolio/internal/repositories"
)

type exportService struct {
	catalog      repositories.CatalogRepository
	holdings     repositories.HoldingRepository
	transactions repositories.TransactionRepository
	now          func() time.Time
}

// NewExportService creates a new export service
func NewExportService(catalog repositories.CatalogRepository, holdings repositories.HoldingRepository, transactions repositories.TransactionRepository) ExportService {
	return &exportService{catalog: catalog, holdings: holdings, transactions: transactions, now: time.Now}
}

// Export returns the catalog, every holding and the full ledger
func (s *exportService) Export(ctx context.Context) (*models.Export, error) {
	catalog, err := s.catalog.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to export catalog: %w", err)
	}
	holdings, err := s.holdings.FindHoldings(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to export collection: %w", err)
	}
	transactions, err := s.transactions.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to export transactions: %w", err)
	}

	return &models.Export{
		Catalog:      catalog,
		Collection:   holdings,
		Transactions: transactions,
		ExportedAt:   s.now().UTC(),
	}, nil
}
