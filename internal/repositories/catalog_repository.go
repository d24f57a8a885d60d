package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tropicaldog17/cardfolio/internal/db"
	apperrors "github.com/tropicaldog17/cardfolio/internal/errors"
	"github.com/tropicaldog17/cardfolio/internal/models"
)

type catalogRepository struct {
	db *db.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(database *db.DB) CatalogRepository {
	return &catalogRepository{db: database}
}

func (r *catalogRepository) Create(ctx context.Context, entry *models.CatalogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create catalog entry: %w", err)
	}
	return nil
}

func (r *catalogRepository) GetByID(ctx context.Context, id string) (*models.CatalogEntry, error) {
	var entry models.CatalogEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("catalog entry", id)
		}
		return nil, fmt.Errorf("failed to get catalog entry: %w", err)
	}
	return &entry, nil
}

func (r *catalogRepository) List(ctx context.Context, filter *models.CatalogFilter) ([]*models.CatalogEntry, error) {
	query := r.db.WithContext(ctx).Model(&models.CatalogEntry{})

	if filter != nil {
		if filter.Category != "" {
			query = query.Where("category = ?", filter.Category)
		}
		if filter.Name != "" {
			query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
		}
		if q := strings.TrimSpace(filter.Query); q != "" {
			pattern := "%" + strings.ToLower(q) + "%"
			query = query.Where("(LOWER(name) LIKE ? OR LOWER(set_name) LIKE ? OR LOWER(number) LIKE ?)", pattern, pattern, pattern)
		}
	}

	query = query.Order("name ASC")

	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit)
		if filter.Offset > 0 {
			query = query.Offset(filter.Offset)
		}
	}

	var entries []*models.CatalogEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list catalog entries: %w", err)
	}
	return entries, nil
}

func (r *catalogRepository) Update(ctx context.Context, entry *models.CatalogEntry) error {
	result := r.db.WithContext(ctx).Model(&models.CatalogEntry{}).Where("id = ?", entry.ID).
		Select("category", "name", "set_name", "number", "variant", "image_url", "external_ids").
		Updates(entry)
	if result.Error != nil {
		return fmt.Errorf("failed to update catalog entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("catalog entry", entry.ID)
	}
	return nil
}

func (r *catalogRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.CatalogEntry{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete catalog entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("catalog entry", id)
	}
	return nil
}

func (r *catalogRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CatalogEntry{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check catalog entry: %w", err)
	}
	return count > 0, nil
}
