package services

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tropicaldog17/cardfolio/internal/logger"
	"github.com/tropicaldog17/cardfolio/internal/models"
	"github.com/tropicaldog17/cardfolio/internal/repositories"
)

// PriceSimulator records mock price observations. Simulate walks every
// catalog entry randomly around its latest price; FetchOne quotes a single
// entry deterministically from its name and variant.
type PriceSimulator struct {
	catalog   repositories.CatalogRepository
	snapshots repositories.PriceSnapshotRepository
	converter *CurrencyConverter
	logger    *zap.Logger
	now       func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPriceSimulator creates a simulator; seed makes Simulate runs reproducible
func NewPriceSimulator(catalog repositories.CatalogRepository, snapshots repositories.PriceSnapshotRepository, rates models.RateTable, seed int64, log *zap.Logger) *PriceSimulator {
	return &PriceSimulator{
		catalog:   catalog,
		snapshots: snapshots,
		converter: NewCurrencyConverter(rates),
		logger:    logger.OrNop(log),
		now:       time.Now,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Simulate records one snapshot per catalog entry in currency and returns them
func (s *PriceSimulator) Simulate(ctx context.Context, currency string) ([]*models.PriceSnapshot, error) {
	currency = normalizeCurrency(currency)

	entries, err := s.catalog.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}

	now := s.now().UTC()
	recorded := make([]*models.PriceSnapshot, 0, len(entries))
	for _, entry := range entries {
		history, err := s.snapshots.FindLatest(ctx, entry.ID, currency, 1)
		if err != nil {
			return nil, err
		}

		var price decimal.Decimal
		if len(history) == 0 {
			price = s.startingPrice()
		} else {
			price = s.step(history[0].Price)
		}

		snap := &models.PriceSnapshot{
			CatalogID: entry.ID,
			Currency:  currency,
			Price:     price,
			Source:    models.PriceSourceMock,
			Timestamp: now,
		}
		if err := s.snapshots.Create(ctx, snap); err != nil {
			return nil, err
		}
		recorded = append(recorded, snap)
	}

	s.logger.Info("mock prices recorded",
		zap.String("currency", strings.ToUpper(currency)),
		zap.Int("count", len(recorded)))
	return recorded, nil
}

// startingPrice is uniform in [1, 100] with cent precision
func (s *PriceSimulator) startingPrice() decimal.Decimal {
	s.mu.Lock()
	cents := s.rng.Int63n(9901) + 100
	s.mu.Unlock()
	return decimal.New(cents, -2)
}

// step moves price by at most ±5%, never below zero
func (s *PriceSimulator) step(price decimal.Decimal) decimal.Decimal {
	s.mu.Lock()
	bp := s.rng.Int63n(1001) - 500 // basis points in [-500, 500]
	s.mu.Unlock()

	factor := decimal.NewFromInt(10000 + bp).Div(decimal.NewFromInt(10000))
	next := price.Mul(factor).Round(2)
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}

// FetchOne records a quote for one catalog entry. The EUR price depends only
// on the entry's name and variant and is converted to currency.
func (s *PriceSimulator) FetchOne(ctx context.Context, catalogID, currency string) (*models.PriceSnapshot, error) {
	entry, err := s.catalog.GetByID(ctx, catalogID)
	if err != nil {
		return nil, err
	}
	currency = normalizeCurrency(currency)

	variant := ""
	if entry.Variant != nil {
		variant = *entry.Variant
	}
	snap := &models.PriceSnapshot{
		CatalogID: entry.ID,
		Currency:  currency,
		Price:     s.converter.Convert(QuotePrice(entry.Name, variant), currency),
		Source:    models.PriceSourceMockLive,
		Timestamp: s.now().UTC(),
	}
	if err := s.snapshots.Create(ctx, snap); err != nil {
		return nil, err
	}

	s.logger.Info("mock quote recorded",
		zap.String("catalog_id", entry.ID),
		zap.String("currency", currency),
		zap.String("price", snap.Price.String()))
	return snap, nil
}

// Latest returns the newest snapshot for the pair. When there is none it
// fetches a quote if fetchIfMissing is set, and returns nil otherwise.
func (s *PriceSimulator) Latest(ctx context.Context, catalogID, currency string, fetchIfMissing bool) (*models.PriceSnapshot, error) {
	currency = normalizeCurrency(currency)
	history, err := s.snapshots.FindLatest(ctx, catalogID, currency, 1)
	if err != nil {
		return nil, err
	}
	if len(history) > 0 {
		return history[0], nil
	}
	if !fetchIfMissing {
		return nil, nil
	}
	return s.FetchOne(ctx, catalogID, currency)
}

// QuotePrice derives a stable EUR price in [5, 1100) from name and variant
func QuotePrice(name, variant string) decimal.Decimal {
	sum := sha256.Sum256([]byte(name + "|" + variant))
	rng := rand.New(rand.NewSource(int64(binary.BigEndian.Uint32(sum[:4]))))

	base := 5 + rng.Float64()*995
	skew := 1 + rng.Float64()*0.1
	return decimal.NewFromFloat(base * skew).Round(2)
}
