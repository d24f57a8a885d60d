package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tropicaldog17/cardfolio/internal/models"
	"github.com/tropicaldog17/cardfolio/internal/repositories"
)

type priceKey struct {
	catalogID string
	currency  string
}

type pricePair struct {
	latest   *models.PriceSnapshot
	previous *models.PriceSnapshot
}

// PriceResolver looks up the two most recent snapshots of a catalog entry.
// A resolver memoizes per (catalog, currency) and must not outlive one request.
type PriceResolver struct {
	snapshots repositories.PriceSnapshotRepository
	cache     map[priceKey]pricePair
}

// NewPriceResolver creates a resolver with an empty memo
func NewPriceResolver(snapshots repositories.PriceSnapshotRepository) *PriceResolver {
	return &PriceResolver{
		snapshots: snapshots,
		cache:     make(map[priceKey]pricePair),
	}
}

// LatestTwo returns the newest snapshot and the one before it. Either may be
// nil; no history at all is not an error.
func (r *PriceResolver) LatestTwo(ctx context.Context, catalogID, currency string) (latest, previous *models.PriceSnapshot, err error) {
	key := priceKey{catalogID: catalogID, currency: strings.ToUpper(currency)}
	if pair, ok := r.cache[key]; ok {
		return pair.latest, pair.previous, nil
	}

	history, err := r.snapshots.FindLatest(ctx, key.catalogID, key.currency, 2)
	if err != nil {
		return nil, nil, err
	}

	var pair pricePair
	if len(history) > 0 {
		pair.latest = history[0]
	}
	if len(history) > 1 {
		pair.previous = history[1]
	}
	r.cache[key] = pair
	return pair.latest, pair.previous, nil
}

// ChangeRatio is the relative move between the two most recent observations.
// It is labelled 24h but ignores the actual time between the snapshots.
func ChangeRatio(latest, previous *models.PriceSnapshot) decimal.Decimal {
	if latest == nil || previous == nil || previous.Price.IsZero() {
		return decimal.Zero
	}
	return latest.Price.Sub(previous.Price).Div(previous.Price)
}

// CurrentPrice returns the latest price, or zero when none is recorded
func CurrentPrice(latest *models.PriceSnapshot) decimal.Decimal {
	if latest == nil {
		return decimal.Zero
	}
	return latest.Price
}
