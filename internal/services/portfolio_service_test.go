package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tropicaldog17/cardfolio/internal/errors"
	"github.com/tropicaldog17/cardfolio/internal/models"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func scenarioHolding() *models.Holding {
	return &models.Holding{
		ID: "h1", CatalogID: strPtr("c1"), Category: models.CategoryCardRaw, Name: "Charizard",
		Quantity: 3, PurchasePrice: decimal.NewFromInt(10), PurchaseCurrency: "EUR",
	}
}

func newScenarioService(holdings []*models.Holding, snapshots []*models.PriceSnapshot) (*PortfolioServiceImpl, *fakeSnapshotRepo) {
	snaps := &fakeSnapshotRepo{snapshots: snapshots}
	svc := NewPortfolioService(&fakeHoldingRepo{holdings: holdings}, snaps, nil, nil)
	return svc, snaps
}

func TestGetPortfolioSummary_SingleHoldingEUR(t *testing.T) {
	svc, _ := newScenarioService(
		[]*models.Holding{scenarioHolding()},
		[]*models.PriceSnapshot{snap("c1", "EUR", "15", time.Now())},
	)

	summary, err := svc.GetPortfolioSummary(context.Background(), "EUR")
	require.NoError(t, err)

	assert.Equal(t, "EUR", summary.Currency)
	assert.True(t, summary.TotalCost.Equal(dec("30")), "cost %s", summary.TotalCost)
	assert.True(t, summary.TotalValue.Equal(dec("45")), "value %s", summary.TotalValue)
	assert.True(t, summary.TotalUnrealized.Equal(dec("15")), "unrealized %s", summary.TotalUnrealized)
	require.Len(t, summary.Holdings, 1)
	assert.True(t, summary.Holdings[0].CurrentPrice.Equal(dec("15")))
	assert.True(t, summary.Holdings[0].Change24h.IsZero())
	assert.False(t, summary.GeneratedAt.IsZero())
}

func TestGetPortfolioSummary_ChangeFromTwoLatestSnapshots(t *testing.T) {
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	svc, _ := newScenarioService(
		[]*models.Holding{scenarioHolding()},
		[]*models.PriceSnapshot{
			snap("c1", "EUR", "15", base),
			snap("c1", "EUR", "10", base.Add(6*time.Hour)),
		},
	)

	summary, err := svc.GetPortfolioSummary(context.Background(), "EUR")
	require.NoError(t, err)

	line := summary.Holdings[0]
	assert.True(t, line.Change24h.Round(6).Equal(dec("-0.333333")), "change %s", line.Change24h)
	assert.True(t, line.CurrentValue.Equal(dec("30")))
	assert.True(t, summary.TotalUnrealized.IsZero())
}

func TestGetPortfolioSummary_USDScalesTotals(t *testing.T) {
	holdings := []*models.Holding{scenarioHolding()}
	snaps := []*models.PriceSnapshot{snap("c1", "EUR", "15", time.Now())}

	eurSvc, _ := newScenarioService(holdings, snaps)
	eur, err := eurSvc.GetPortfolioSummary(context.Background(), "EUR")
	require.NoError(t, err)

	usdSvc, _ := newScenarioService(holdings, snaps)
	usd, err := usdSvc.GetPortfolioSummary(context.Background(), "usd")
	require.NoError(t, err)

	rate := dec("1.08")
	assert.Equal(t, "USD", usd.Currency)
	assert.True(t, usd.TotalCost.Equal(eur.TotalCost.Mul(rate)))
	assert.True(t, usd.TotalValue.Equal(eur.TotalValue.Mul(rate)))
	assert.True(t, usd.TotalUnrealized.Equal(eur.TotalUnrealized.Mul(rate)))
	assert.True(t, usd.TotalValue.Equal(dec("48.6")))
	assert.True(t, usd.Holdings[0].CurrentPrice.Equal(dec("16.2")))
	assert.True(t, usd.Holdings[0].Cost.Equal(dec("32.4")))
}

func TestGetPortfolioSummary_NoSnapshots(t *testing.T) {
	holdings := []*models.Holding{
		scenarioHolding(),
		{ID: "h2", CatalogID: strPtr("c2"), Name: "Box", Quantity: 1, PurchasePrice: decimal.NewFromInt(100), PurchaseCurrency: "EUR"},
		{ID: "h3", Name: "Loose", Quantity: 2, PurchasePrice: decimal.NewFromInt(1), PurchaseCurrency: "EUR"},
	}
	svc, _ := newScenarioService(holdings, nil)

	summary, err := svc.GetPortfolioSummary(context.Background(), "EUR")
	require.NoError(t, err)

	assert.True(t, summary.TotalValue.IsZero())
	assert.True(t, summary.TotalCost.Equal(dec("132")))
	assert.True(t, summary.TotalUnrealized.Equal(summary.TotalCost.Neg()))
	require.Len(t, summary.Movers, 3)
	for i, m := range summary.Movers {
		assert.True(t, m.Change24h.IsZero())
		assert.Same(t, summary.Holdings[i], m, "zero swings keep holding order")
	}
}

func TestGetPortfolioSummary_ResolvesOncePerCatalogEntry(t *testing.T) {
	holdings := make([]*models.Holding, 0, 6)
	for i := 0; i < 6; i++ {
		h := scenarioHolding()
		h.ID = fmt.Sprintf("h%d", i)
		if i%2 == 1 {
			h.CatalogID = strPtr("c2")
		}
		holdings = append(holdings, h)
	}
	svc, snaps := newScenarioService(holdings, []*models.PriceSnapshot{snap("c1", "EUR", "2", time.Now())})

	_, err := svc.GetPortfolioSummary(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, 2, snaps.latestCalls)

	// memo is per request
	_, err = svc.GetPortfolioSummary(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, 4, snaps.latestCalls)
}

func TestGetPortfolioSummary_StoreFailure(t *testing.T) {
	storeErr := errors.New("store unavailable")

	svc := NewPortfolioService(&fakeHoldingRepo{err: storeErr}, &fakeSnapshotRepo{}, nil, nil)
	_, err := svc.GetPortfolioSummary(context.Background(), "EUR")
	assert.ErrorIs(t, err, storeErr)

	svc = NewPortfolioService(&fakeHoldingRepo{holdings: []*models.Holding{scenarioHolding()}}, &fakeSnapshotRepo{err: storeErr}, nil, nil)
	_, err = svc.GetPortfolioSummary(context.Background(), "EUR")
	assert.ErrorIs(t, err, storeErr)
}

func TestBiggestMovers(t *testing.T) {
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	var holdings []*models.Holding
	var snaps []*models.PriceSnapshot
	// previous/latest price pairs; swing = latest*qty*|change|
	pairs := [][2]string{{"10", "11"}, {"10", "5"}, {"100", "100"}, {"20", "30"}, {"50", "49"}, {"8", "16"}, {"40", "44"}}
	for i, p := range pairs {
		cat := fmt.Sprintf("c%d", i)
		holdings = append(holdings, &models.Holding{
			ID: fmt.Sprintf("h%d", i), CatalogID: strPtr(cat), Name: cat, Quantity: 1,
			PurchasePrice: decimal.NewFromInt(1), PurchaseCurrency: "EUR",
		})
		snaps = append(snaps, snap(cat, "EUR", p[0], base), snap(cat, "EUR", p[1], base.Add(time.Hour)))
	}
	svc, _ := newScenarioService(holdings, snaps)

	summary, err := svc.GetPortfolioSummary(context.Background(), "EUR")
	require.NoError(t, err)

	require.Len(t, summary.Movers, MaxMovers)
	var ids []string
	for i, m := range summary.Movers {
		ids = append(ids, m.Holding.ID)
		assert.Contains(t, summary.Holdings, m)
		if i > 0 {
			prev := summary.Movers[i-1]
			assert.True(t, swing(prev).GreaterThanOrEqual(swing(m)))
		}
	}
	// swings: h0 1.1, h1 2.5, h2 0, h3 15, h4 0.98, h5 16, h6 4.4
	assert.Equal(t, []string{"h5", "h3", "h6", "h1", "h0"}, ids)
}

func TestBiggestMovers_StableForTies(t *testing.T) {
	lines := []*models.HoldingLine{
		{Holding: &models.Holding{ID: "a"}, CurrentValue: dec("10"), Change24h: dec("0.1")},
		{Holding: &models.Holding{ID: "b"}, CurrentValue: dec("10"), Change24h: dec("-0.1")},
		{Holding: &models.Holding{ID: "c"}, CurrentValue: dec("20"), Change24h: dec("0.5")},
		{Holding: &models.Holding{ID: "d"}, CurrentValue: dec("1"), Change24h: dec("1")},
	}
	got := BiggestMovers(lines, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].Holding.ID)
	assert.Equal(t, "a", got[1].Holding.ID)
	assert.Equal(t, "b", got[2].Holding.ID)
	assert.Equal(t, "a", lines[0].Holding.ID, "input is not reordered")
}

func TestDailySeries(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }

	snapshots := []*models.PriceSnapshot{
		snap("c1", "EUR", "99", time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC)),
		snap("c1", "EUR", "98", time.Date(2025, 6, 7, 10, 0, 0, 0, time.UTC)),
		snap("c1", "EUR", "10", time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC)),
		snap("c1", "EUR", "12", time.Date(2025, 6, 8, 18, 0, 0, 0, time.UTC)),
		snap("c2", "EUR", "5", time.Date(2025, 6, 9, 1, 0, 0, 0, time.UTC)),
		snap("c1", "EUR", "11", time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)),
		snap("c9", "EUR", "1000", time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)),
	}
	holdings := []*models.Holding{
		{ID: "h1", CatalogID: strPtr("c1"), Quantity: 2},
		{ID: "h2", CatalogID: strPtr("c2"), Quantity: 3},
		{ID: "h3", Quantity: 50},
	}
	conv := NewCurrencyConverter(nil)

	got := DailySeries(snapshots, holdings, 3, conv, "EUR", now)
	want := []*models.DailyValue{
		{Date: day(8), Value: dec("24")},
		{Date: day(9), Value: dec("15")},
		{Date: day(10), Value: dec("22")},
	}
	if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
		t.Fatalf("series mismatch (-want +got):\n%s", diff)
	}

	usd := DailySeries(snapshots, holdings, 3, conv, "USD", now)
	wantUSD := []*models.DailyValue{
		{Date: day(8), Value: dec("25.92")},
		{Date: day(9), Value: dec("16.2")},
		{Date: day(10), Value: dec("23.76")},
	}
	if diff := cmp.Diff(wantUSD, usd, decimalComparer); diff != "" {
		t.Fatalf("USD series mismatch (-want +got):\n%s", diff)
	}
}

func TestDailySeries_DatesIncreasingWithinWindow(t *testing.T) {
	now := time.Date(2025, 6, 30, 15, 0, 0, 0, time.UTC)
	var snapshots []*models.PriceSnapshot
	// deliberately unordered input spanning more than the window
	for _, offset := range []int{3, 40, 0, 12, 7, 29, 31, 1} {
		snapshots = append(snapshots, snap("c1", "EUR", "1", now.AddDate(0, 0, -offset)))
	}
	holdings := []*models.Holding{{ID: "h1", CatalogID: strPtr("c1"), Quantity: 1}}

	lookback := 30
	series := DailySeries(snapshots, holdings, lookback, NewCurrencyConverter(nil), "EUR", now)
	require.NotEmpty(t, series)

	earliest := models.DateOnly(now).AddDate(0, 0, -lookback)
	for i, p := range series {
		assert.False(t, p.Date.Before(earliest), "point %s before window", p.Date)
		if i > 0 {
			assert.True(t, p.Date.After(series[i-1].Date))
		}
	}
	assert.Len(t, series, 6)
}

func TestGetDailySeries(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	snaps := []*models.PriceSnapshot{
		snap("c1", "EUR", "15", now.Add(-time.Hour)),
		snap("c1", "USD", "500", now.Add(-time.Hour)),
	}
	svc, _ := newScenarioService([]*models.Holding{scenarioHolding()}, snaps)
	svc = svc.WithClock(func() time.Time { return now })

	series, err := svc.GetDailySeries(context.Background(), "EUR", 7)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.True(t, series[0].Value.Equal(dec("45")), "only reference-currency snapshots count")

	_, err = svc.GetDailySeries(context.Background(), "EUR", 0)
	assert.True(t, apperrors.IsValidation(err))
}

func TestGetDailySeries_StoreFailure(t *testing.T) {
	storeErr := errors.New("timeout")
	svc := NewPortfolioService(&fakeHoldingRepo{}, &fakeSnapshotRepo{err: storeErr}, nil, nil)
	_, err := svc.GetDailySeries(context.Background(), "EUR", 30)
	assert.ErrorIs(t, err, storeErr)
}
