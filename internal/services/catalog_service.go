package services

import (
	"context"

	"github.com/tropicaldog17/cardfolio/internal/models"
	"github.com/tropicaldog17/cardfolio/internal/repositories"
)

type catalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repositories.CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) CreateEntry(ctx context.Context, entry *models.CatalogEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	return s.repo.Create(ctx, entry)
}

func (s *catalogService) GetEntry(ctx context.Context, id string) (*models.CatalogEntry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *catalogService) ListEntries(ctx context.Context, filter *models.CatalogFilter) ([]*models.CatalogEntry, error) {
	return s.repo.List(ctx, filter)
}

// SearchEntries matches q against name, set name and number. limit defaults
// to DefaultSearchLimit and is capped at MaxSearchLimit.
func (s *catalogService) SearchEntries(ctx context.Context, q string, limit int) ([]*models.CatalogEntry, error) {
	if limit <= 0 {
		limit = models.DefaultSearchLimit
	}
	if limit > models.MaxSearchLimit {
		limit = models.MaxSearchLimit
	}
	return s.repo.List(ctx, &models.CatalogFilter{Query: q, Limit: limit})
}

func (s *catalogService) UpdateEntry(ctx context.Context, entry *models.CatalogEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, entry)
}

// DeleteEntry removes the entry only; holdings and snapshots keep their
// now-dangling catalog reference.
func (s *catalogService) DeleteEntry(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
