package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRates(t *testing.T) {
	rates := DefaultRates()
	assert.True(t, rates[CurrencyEUR].Equal(decimal.NewFromInt(1)))
	assert.True(t, rates[CurrencyUSD].Equal(decimal.RequireFromString("1.08")))
	assert.True(t, rates[CurrencyJPY].Equal(decimal.NewFromInt(162)))

	rates[CurrencyUSD] = decimal.NewFromInt(2)
	assert.True(t, DefaultRates()[CurrencyUSD].Equal(decimal.RequireFromString("1.08")), "DefaultRates must return a copy")
}

func TestRateTable_Lookup(t *testing.T) {
	rates := DefaultRates()
	rate, ok := rates.Lookup(" gbp ")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.86")))

	_, ok = rates.Lookup("XYZ")
	assert.False(t, ok)
}

func TestParseRates(t *testing.T) {
	parsed, err := ParseRates("usd=1.10, chf=0.95,")
	require.NoError(t, err)
	assert.Len(t, parsed, 2)
	assert.True(t, parsed["CHF"].Equal(decimal.RequireFromString("0.95")))

	merged := DefaultRates().Merge(parsed)
	assert.True(t, merged["USD"].Equal(decimal.RequireFromString("1.10")))
	assert.True(t, merged["GBP"].Equal(decimal.RequireFromString("0.86")))

	_, err = ParseRates("USD")
	assert.Error(t, err)
	_, err = ParseRates("USD=abc")
	assert.Error(t, err)
	_, err = ParseRates("USD=0")
	assert.Error(t, err)
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	ts := time.Date(2025, 1, 2, 3, 0, 0, 0, loc) // 2025-01-01T18:00Z
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), DateOnly(ts))

	snap := &PriceSnapshot{Timestamp: ts}
	assert.Equal(t, DateOnly(ts), snap.Day())
}

func TestPriceSnapshot_Validate(t *testing.T) {
	ok := &PriceSnapshot{CatalogID: "c1", Currency: "EUR", Price: decimal.Zero, Source: PriceSourceManual}
	assert.NoError(t, ok.Validate())

	neg := *ok
	neg.Price = decimal.NewFromInt(-1)
	assert.Error(t, neg.Validate())

	noCatalog := *ok
	noCatalog.CatalogID = ""
	assert.Error(t, noCatalog.Validate())
}

func TestPriceSnapshot_ApplyDefaults(t *testing.T) {
	now := time.Date(2025, 1, 2, 15, 0, 0, 0, time.FixedZone("CET", 3600))

	snap := &PriceSnapshot{CatalogID: "c1", Price: decimal.NewFromInt(4)}
	snap.ApplyDefaults(now)
	assert.Equal(t, "EUR", snap.Currency)
	assert.Equal(t, PriceSourceManual, snap.Source)
	assert.Equal(t, time.UTC, snap.Timestamp.Location())
	assert.True(t, snap.Timestamp.Equal(now))
	assert.NoError(t, snap.Validate())

	ts := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	snap = &PriceSnapshot{Currency: " jpy", Source: PriceSourceMock, Timestamp: ts}
	snap.ApplyDefaults(now)
	assert.Equal(t, "JPY", snap.Currency)
	assert.Equal(t, PriceSourceMock, snap.Source)
	assert.Equal(t, ts, snap.Timestamp)
}

func TestCatalogEntry_Validate(t *testing.T) {
	assert.NoError(t, (&CatalogEntry{Category: CategorySealed, Name: "Booster Box"}).Validate())
	assert.Error(t, (&CatalogEntry{Category: "toy", Name: "x"}).Validate())
	assert.Error(t, (&CatalogEntry{Category: CategoryCardRaw}).Validate())
}
