package services

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tropicaldog17/cardfolio/internal/db"
	apperrors "github.com/tropicaldog17/cardfolio/internal/errors"
	"github.com/tropicaldog17/cardfolio/internal/models"
)

// ---- In-memory fakes for repositories used in unit tests ----

type fakeSnapshotRepo struct {
	snapshots   []*models.PriceSnapshot
	latestCalls int
	err         error
}

func (f *fakeSnapshotRepo) Create(ctx context.Context, s *models.PriceSnapshot) error {
	if f.err != nil {
		return f.err
	}
	if s.ID == "" {
		s.ID = "snap_mock"
	}
	f.snapshots = append(f.snapshots, s)
	return nil
}

func (f *fakeSnapshotRepo) FindLatest(ctx context.Context, catalogID, currency string, limit int) ([]*models.PriceSnapshot, error) {
	f.latestCalls++
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.PriceSnapshot
	for _, s := range f.snapshots {
		if s.CatalogID == catalogID && strings.EqualFold(s.Currency, currency) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeSnapshotRepo) FindByCurrency(ctx context.Context, currency string) ([]*models.PriceSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.PriceSnapshot
	for _, s := range f.snapshots {
		if strings.EqualFold(s.Currency, currency) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeHoldingRepo struct {
	holdings []*models.Holding
	err      error
}

func (f *fakeHoldingRepo) Create(ctx context.Context, h *models.Holding) error {
	f.holdings = append(f.holdings, h)
	return nil
}
func (f *fakeHoldingRepo) GetByID(ctx context.Context, id string) (*models.Holding, error) {
	for _, h := range f.holdings {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, apperrors.NewNotFound("holding", id)
}
func (f *fakeHoldingRepo) FindHoldings(ctx context.Context, filter *models.HoldingFilter) ([]*models.Holding, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.holdings, nil
}
func (f *fakeHoldingRepo) Update(ctx context.Context, h *models.Holding) error { return nil }
func (f *fakeHoldingRepo) Delete(ctx context.Context, id string) error         { return nil }
func (f *fakeHoldingRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, err := f.GetByID(ctx, id)
	return err == nil, nil
}

func strPtr(s string) *string { return &s }

func setupSQLite(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.ConnectMemory(t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}
