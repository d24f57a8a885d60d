package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tropicaldog17/cardfolio/internal/models"
)

func snap(catalogID, currency, price string, ts time.Time) *models.PriceSnapshot {
	return &models.PriceSnapshot{
		CatalogID: catalogID,
		Currency:  currency,
		Price:     decimal.RequireFromString(price),
		Source:    models.PriceSourceManual,
		Timestamp: ts,
	}
}

func TestPriceResolver_LatestTwo(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeSnapshotRepo{snapshots: []*models.PriceSnapshot{
		snap("c1", "EUR", "15", base),
		snap("c1", "EUR", "10", base.Add(time.Hour)),
		snap("c1", "EUR", "8", base.Add(-time.Hour)),
		snap("c1", "USD", "99", base.Add(2*time.Hour)),
		snap("c2", "EUR", "3", base),
	}}
	r := NewPriceResolver(repo)

	latest, previous, err := r.LatestTwo(ctx, "c1", "eur")
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.NotNil(t, previous)
	assert.True(t, latest.Price.Equal(decimal.NewFromInt(10)))
	assert.True(t, previous.Price.Equal(decimal.NewFromInt(15)))

	latest, previous, err = r.LatestTwo(ctx, "c2", "EUR")
	require.NoError(t, err)
	assert.True(t, latest.Price.Equal(decimal.NewFromInt(3)))
	assert.Nil(t, previous)

	latest, previous, err = r.LatestTwo(ctx, "missing", "EUR")
	require.NoError(t, err)
	assert.Nil(t, latest)
	assert.Nil(t, previous)
}

func TestPriceResolver_Memoizes(t *testing.T) {
	ctx := context.Background()
	repo := &fakeSnapshotRepo{snapshots: []*models.PriceSnapshot{snap("c1", "EUR", "1", time.Now())}}
	r := NewPriceResolver(repo)

	for i := 0; i < 3; i++ {
		_, _, err := r.LatestTwo(ctx, "c1", "EUR")
		require.NoError(t, err)
	}
	_, _, err := r.LatestTwo(ctx, "c1", "eur")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.latestCalls)

	_, _, err = r.LatestTwo(ctx, "c1", "USD")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.latestCalls)

	// a fresh resolver does not share the memo
	_, _, err = NewPriceResolver(repo).LatestTwo(ctx, "c1", "EUR")
	require.NoError(t, err)
	assert.Equal(t, 3, repo.latestCalls)
}

func TestPriceResolver_PropagatesStoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	r := NewPriceResolver(&fakeSnapshotRepo{err: storeErr})
	_, _, err := r.LatestTwo(context.Background(), "c1", "EUR")
	assert.ErrorIs(t, err, storeErr)
}

func TestChangeRatio(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name     string
		latest   *models.PriceSnapshot
		previous *models.PriceSnapshot
		expected string
	}{
		{"no snapshots", nil, nil, "0"},
		{"single snapshot", snap("c", "EUR", "10", now), nil, "0"},
		{"previous zero", snap("c", "EUR", "10", now), snap("c", "EUR", "0", now), "0"},
		{"rise", snap("c", "EUR", "15", now), snap("c", "EUR", "10", now), "0.5"},
		{"fall", snap("c", "EUR", "10", now), snap("c", "EUR", "15", now), "-0.3333"},
		{"flat", snap("c", "EUR", "7", now), snap("c", "EUR", "7", now), "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChangeRatio(tt.latest, tt.previous).Round(4)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "got %s", got)
		})
	}
}

func TestCurrentPrice(t *testing.T) {
	assert.True(t, CurrentPrice(nil).IsZero())
	assert.True(t, CurrentPrice(snap("c", "EUR", "4.2", time.Now())).Equal(decimal.RequireFromString("4.2")))
}
