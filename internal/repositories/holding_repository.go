package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tropicaldog17/cardfolio/internal/db"
	apperrors "github.com/tropicaldog17/cardfolio/internal/errors"
	"github.com/tropicaldog17/cardfolio/internal/models"
)

type holdingRepository struct {
	db *db.DB
}

// NewHoldingRepository creates a new holding repository
func NewHoldingRepository(database *db.DB) HoldingRepository {
	return &holdingRepository{db: database}
}

func (r *holdingRepository) Create(ctx context.Context, holding *models.Holding) error {
	if holding.ID == "" {
		holding.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(holding).Error; err != nil {
		return fmt.Errorf("failed to create holding: %w", err)
	}
	return nil
}

func (r *holdingRepository) GetByID(ctx context.Context, id string) (*models.Holding, error) {
	var holding models.Holding
	if err := r.db.WithContext(ctx).First(&holding, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("holding", id)
		}
		return nil, fmt.Errorf("failed to get holding: %w", err)
	}
	return &holding, nil
}

// FindHoldings returns holdings in creation order so aggregate rankings stay stable
func (r *holdingRepository) FindHoldings(ctx context.Context, filter *models.HoldingFilter) ([]*models.Holding, error) {
	query := r.db.WithContext(ctx).Model(&models.Holding{})

	if filter != nil {
		if filter.OwnerID != "" {
			query = query.Where("owner_id = ?", filter.OwnerID)
		}
		if filter.CatalogID != "" {
			query = query.Where("catalog_id = ?", filter.CatalogID)
		}
		if filter.Category != "" {
			query = query.Where("category = ?", filter.Category)
		}
	}

	var holdings []*models.Holding
	if err := query.Order("created_at ASC").Order("id ASC").Find(&holdings).Error; err != nil {
		return nil, fmt.Errorf("failed to find holdings: %w", err)
	}
	return holdings, nil
}

func (r *holdingRepository) Update(ctx context.Context, holding *models.Holding) error {
	result := r.db.WithContext(ctx).Model(&models.Holding{}).Where("id = ?", holding.ID).
		Select("purchase_price", "purchase_currency", "condition", "is_graded", "grade_service", "grade_score", "grade_label", "quantity", "purchase_date").
		Updates(holding)
	if result.Error != nil {
		return fmt.Errorf("failed to update holding: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("holding", holding.ID)
	}
	return nil
}

func (r *holdingRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Holding{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete holding: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("holding", id)
	}
	return nil
}

func (r *holdingRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Holding{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check holding: %w", err)
	}
	return count > 0, nil
}
