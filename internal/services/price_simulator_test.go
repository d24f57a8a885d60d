package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tropicaldog17/cardfolio/internal/errors"
	"github.com/tropicaldog17/cardfolio/internal/models"
	"github.com/tropicaldog17/cardfolio/internal/repositories"
)

func TestPriceSimulator_Simulate(t *testing.T) {
	ctx := context.Background()
	database := setupSQLite(t)
	catalogRepo := repositories.NewCatalogRepository(database)
	snapshotRepo := repositories.NewPriceSnapshotRepository(database)

	for _, name := range []string{"Alakazam", "Machamp"} {
		require.NoError(t, catalogRepo.Create(ctx, &models.CatalogEntry{Category: models.CategoryCardRaw, Name: name}))
	}

	sim := NewPriceSimulator(catalogRepo, snapshotRepo, nil, 42, nil)

	first, err := sim.Simulate(ctx, "eur")
	require.NoError(t, err)
	require.Len(t, first, 2)
	for _, s := range first {
		assert.Equal(t, "EUR", s.Currency)
		assert.Equal(t, models.PriceSourceMock, s.Source)
		assert.True(t, s.Price.GreaterThanOrEqual(decimal.NewFromInt(1)))
		assert.True(t, s.Price.LessThanOrEqual(decimal.NewFromInt(100)))
	}

	second, err := sim.Simulate(ctx, "EUR")
	require.NoError(t, err)
	require.Len(t, second, 2)

	lower := decimal.RequireFromString("0.95")
	upper := decimal.RequireFromString("1.05")
	for i, s := range second {
		prev := first[i].Price
		assert.Equal(t, first[i].CatalogID, s.CatalogID)
		assert.True(t, s.Price.GreaterThanOrEqual(prev.Mul(lower).Round(2)), "step below band: %s -> %s", prev, s.Price)
		assert.True(t, s.Price.LessThanOrEqual(prev.Mul(upper).Round(2)), "step above band: %s -> %s", prev, s.Price)
	}
}

func TestPriceSimulator_StepNeverNegative(t *testing.T) {
	sim := NewPriceSimulator(nil, nil, nil, 1, nil)
	for i := 0; i < 100; i++ {
		assert.False(t, sim.step(decimal.Zero).IsNegative())
	}
}

func TestQuotePrice(t *testing.T) {
	a := QuotePrice("Charizard", "Holo")
	assert.True(t, a.Equal(QuotePrice("Charizard", "Holo")), "same input, same quote")
	assert.False(t, a.Equal(QuotePrice("Charizard", "")), "variant changes the quote")

	for _, name := range []string{"Pikachu", "Mewtwo", "Booster Box", ""} {
		p := QuotePrice(name, "")
		assert.True(t, p.GreaterThanOrEqual(decimal.NewFromInt(5)), "%s: %s", name, p)
		assert.True(t, p.LessThan(decimal.NewFromInt(1100)), "%s: %s", name, p)
		assert.Equal(t, p, p.Round(2))
	}
}

func TestPriceSimulator_FetchOne(t *testing.T) {
	ctx := context.Background()
	database := setupSQLite(t)
	catalogRepo := repositories.NewCatalogRepository(database)
	snapshotRepo := repositories.NewPriceSnapshotRepository(database)
	sim := NewPriceSimulator(catalogRepo, snapshotRepo, nil, 1, nil)

	entry := &models.CatalogEntry{Category: models.CategoryCardRaw, Name: "Lugia", Variant: strPtr("1st Edition")}
	require.NoError(t, catalogRepo.Create(ctx, entry))
	want := QuotePrice("Lugia", "1st Edition")

	eur, err := sim.FetchOne(ctx, entry.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "EUR", eur.Currency)
	assert.Equal(t, models.PriceSourceMockLive, eur.Source)
	assert.True(t, eur.Price.Equal(want))

	again, err := sim.FetchOne(ctx, entry.ID, "eur")
	require.NoError(t, err)
	assert.True(t, again.Price.Equal(eur.Price))
	assert.NotEqual(t, eur.ID, again.ID)

	usd, err := sim.FetchOne(ctx, entry.ID, "usd")
	require.NoError(t, err)
	assert.Equal(t, "USD", usd.Currency)
	assert.True(t, usd.Price.Equal(want.Mul(decimal.RequireFromString("1.08"))))

	_, err = sim.FetchOne(ctx, "00000000-0000-0000-0000-000000000000", "EUR")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPriceSimulator_Latest(t *testing.T) {
	ctx := context.Background()
	database := setupSQLite(t)
	catalogRepo := repositories.NewCatalogRepository(database)
	snapshotRepo := repositories.NewPriceSnapshotRepository(database)
	sim := NewPriceSimulator(catalogRepo, snapshotRepo, nil, 1, nil)

	entry := &models.CatalogEntry{Category: models.CategorySealed, Name: "Evolving Skies ETB"}
	require.NoError(t, catalogRepo.Create(ctx, entry))

	none, err := sim.Latest(ctx, entry.ID, "EUR", false)
	require.NoError(t, err)
	assert.Nil(t, none)

	fetched, err := sim.Latest(ctx, entry.ID, "eur", true)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, models.PriceSourceMockLive, fetched.Source)

	history, err := snapshotRepo.FindLatest(ctx, entry.ID, "EUR", 10)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	manual := &models.PriceSnapshot{
		CatalogID: entry.ID, Currency: "EUR", Price: decimal.NewFromInt(99),
		Source: models.PriceSourceManual, Timestamp: fetched.Timestamp.Add(time.Minute),
	}
	require.NoError(t, snapshotRepo.Create(ctx, manual))

	latest, err := sim.Latest(ctx, entry.ID, "EUR", true)
	require.NoError(t, err)
	assert.Equal(t, manual.ID, latest.ID)

	history, err = snapshotRepo.FindLatest(ctx, entry.ID, "EUR", 10)
	require.NoError(t, err)
	assert.Len(t, history, 2, "an existing snapshot is returned without fetching")
}
