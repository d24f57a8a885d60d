package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	apperrors "github.com/tropicaldog17/cardfolio/internal/errors"
	"github.com/tropicaldog17/cardfolio/internal/logger"
	"github.com/tropicaldog17/cardfolio/internal/models"
	"github.com/tropicaldog17/cardfolio/internal/repositories"
)

type holdingService struct {
	holdings repositories.HoldingRepository
	catalog  repositories.CatalogRepository
	logger   *zap.Logger
}

// NewHoldingService creates a new holding service
func NewHoldingService(holdings repositories.HoldingRepository, catalog repositories.CatalogRepository, log *zap.Logger) HoldingService {
	return &holdingService{holdings: holdings, catalog: catalog, logger: logger.OrNop(log)}
}

// CreateHolding records an acquisition. A referenced catalog entry must exist;
// its descriptive fields fill whatever the holding leaves blank. Quantity
// defaults to 1 and currency to EUR.
func (s *holdingService) CreateHolding(ctx context.Context, holding *models.Holding) error {
	if holding.HasCatalogRef() {
		entry, err := s.catalog.GetByID(ctx, *holding.CatalogID)
		if err != nil {
			return err
		}
		holding.FillFromCatalog(entry)
	}
	holding.ApplyDefaults()

	if err := holding.Validate(); err != nil {
		return err
	}
	if err := s.holdings.Create(ctx, holding); err != nil {
		return err
	}

	s.logger.Info("holding created", zap.String("id", holding.ID), zap.String("name", holding.Name))
	return nil
}

func (s *holdingService) GetHolding(ctx context.Context, id string) (*models.Holding, error) {
	return s.holdings.GetByID(ctx, id)
}

func (s *holdingService) ListHoldings(ctx context.Context, filter *models.HoldingFilter) ([]*models.Holding, error) {
	return s.holdings.FindHoldings(ctx, filter)
}

// UpdateHolding applies the restricted field-level update
func (s *holdingService) UpdateHolding(ctx context.Context, id string, update *models.HoldingUpdate) (*models.Holding, error) {
	if update == nil || update.IsEmpty() {
		return nil, apperrors.NewValidation("update", "no mutable fields provided")
	}

	holding, err := s.holdings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	update.ApplyTo(holding)
	if err := holding.Validate(); err != nil {
		return nil, err
	}
	if err := s.holdings.Update(ctx, holding); err != nil {
		return nil, fmt.Errorf("update holding %s: %w", id, err)
	}
	return holding, nil
}

func (s *holdingService) DeleteHolding(ctx context.Context, id string) error {
	if err := s.holdings.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("holding deleted", zap.String("id", id))
	return nil
}
