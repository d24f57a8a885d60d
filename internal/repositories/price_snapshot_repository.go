package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tropicaldog17/cardfolio/internal/db"
	"github.com/tropicaldog17/cardfolio/internal/models"
)

type priceSnapshotRepository struct {
	db *db.DB
}

// NewPriceSnapshotRepository creates a new price snapshot repository
func NewPriceSnapshotRepository(database *db.DB) PriceSnapshotRepository {
	return &priceSnapshotRepository{db: database}
}

func (r *priceSnapshotRepository) Create(ctx context.Context, snapshot *models.PriceSnapshot) error {
	if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		return fmt.Errorf("failed to record price snapshot: %w", err)
	}
	return nil
}

func (r *priceSnapshotRepository) FindLatest(ctx context.Context, catalogID, currency string, limit int) ([]*models.PriceSnapshot, error) {
	query := r.db.WithContext(ctx).
		Where("catalog_id = ? AND currency = ?", catalogID, strings.ToUpper(currency)).
		Order("recorded_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var snapshots []*models.PriceSnapshot
	if err := query.Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to find latest snapshots: %w", err)
	}
	return snapshots, nil
}

func (r *priceSnapshotRepository) FindByCurrency(ctx context.Context, currency string) ([]*models.PriceSnapshot, error) {
	var snapshots []*models.PriceSnapshot
	err := r.db.WithContext(ctx).
		Where("currency = ?", strings.ToUpper(currency)).
		Order("recorded_at ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find snapshots: %w", err)
	}
	return snapshots, nil
}
