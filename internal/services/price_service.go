package services

import (
	"context"
	"time"

	apperrors "github.com/tropicaldog17/cardfolio/internal/errors"
	"github.com/tropicaldog17/cardfolio/internal/models"
	"github.com/tropicaldog17/cardfolio/internal/repositories"
)

type priceService struct {
	snapshots repositories.PriceSnapshotRepository
	catalog   repositories.CatalogRepository
	now       func() time.Time
}

// NewPriceService creates a new price service
func NewPriceService(snapshots repositories.PriceSnapshotRepository, catalog repositories.CatalogRepository) PriceService {
	return &priceService{snapshots: snapshots, catalog: catalog, now: time.Now}
}

// RecordSnapshot appends a price observation for an existing catalog entry
func (s *priceService) RecordSnapshot(ctx context.Context, snapshot *models.PriceSnapshot) error {
	ok, err := s.catalog.Exists(ctx, snapshot.CatalogID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewNotFound("catalog entry", snapshot.CatalogID)
	}
	snapshot.ApplyDefaults(s.now())

	if err := snapshot.Validate(); err != nil {
		return err
	}
	return s.snapshots.Create(ctx, snapshot)
}

// GetHistory returns up to limit snapshots for the pair, newest first
func (s *priceService) GetHistory(ctx context.Context, catalogID, currency string, limit int) ([]*models.PriceSnapshot, error) {
	return s.snapshots.FindLatest(ctx, catalogID, currency, limit)
}
