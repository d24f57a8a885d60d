package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/tropicaldog17/cardfolio/internal/errors"
	"github.com/tropicaldog17/cardfolio/internal/logger"
	"github.com/tropicaldog17/cardfolio/internal/models"
	"github.com/tropicaldog17/cardfolio/internal/repositories"
)

// MaxMovers caps the biggest-movers list of a summary
const MaxMovers = 5

// PortfolioServiceImpl implements PortfolioService
type PortfolioServiceImpl struct {
	holdings  repositories.HoldingRepository
	snapshots repositories.PriceSnapshotRepository
	converter *CurrencyConverter
	logger    *zap.Logger
	now       func() time.Time
}

// NewPortfolioService creates a new portfolio service
func NewPortfolioService(holdings repositories.HoldingRepository, snapshots repositories.PriceSnapshotRepository, rates models.RateTable, log *zap.Logger) *PortfolioServiceImpl {
	return &PortfolioServiceImpl{
		holdings:  holdings,
		snapshots: snapshots,
		converter: NewCurrencyConverter(rates),
		logger:    logger.OrNop(log),
		now:       time.Now,
	}
}

// WithClock returns a copy of the service reading time from now
func (s *PortfolioServiceImpl) WithClock(now func() time.Time) *PortfolioServiceImpl {
	cp := *s
	cp.now = now
	return &cp
}

// GetPortfolioSummary values every holding against its latest reference-currency price
func (s *PortfolioServiceImpl) GetPortfolioSummary(ctx context.Context, outputCurrency string) (*models.PortfolioSummary, error) {
	holdings, err := s.holdings.FindHoldings(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load holdings: %w", err)
	}

	summary, err := Summarize(ctx, NewPriceResolver(s.snapshots), holdings, s.converter, outputCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve prices: %w", err)
	}
	summary.GeneratedAt = s.now().UTC()

	s.logger.Debug("portfolio summary computed",
		zap.String("currency", summary.Currency),
		zap.Int("holdings", len(holdings)),
		zap.String("total_value", summary.TotalValue.String()))
	return summary, nil
}

// GetDailySeries rebuilds the daily portfolio value over the last lookbackDays
func (s *PortfolioServiceImpl) GetDailySeries(ctx context.Context, outputCurrency string, lookbackDays int) ([]*models.DailyValue, error) {
	if lookbackDays < 1 {
		return nil, apperrors.NewValidation("days", "must be at least 1")
	}

	snapshots, err := s.snapshots.FindByCurrency(ctx, models.ReferenceCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshots: %w", err)
	}
	holdings, err := s.holdings.FindHoldings(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load holdings: %w", err)
	}

	series := DailySeries(snapshots, holdings, lookbackDays, s.converter, outputCurrency, s.now())
	s.logger.Debug("daily series computed",
		zap.Int("snapshots", len(snapshots)),
		zap.Int("days", len(series)))
	return series, nil
}

// Summarize aggregates holdings into a summary expressed in outputCurrency.
// Prices are resolved once per catalog entry in the reference currency.
func Summarize(ctx context.Context, resolver *PriceResolver, holdings []*models.Holding, converter *CurrencyConverter, outputCurrency string) (*models.PortfolioSummary, error) {
	currency := normalizeCurrency(outputCurrency)

	type resolved struct {
		price  decimal.Decimal
		change decimal.Decimal
	}
	prices := make(map[string]resolved)
	for _, h := range holdings {
		if !h.HasCatalogRef() {
			continue
		}
		if _, ok := prices[*h.CatalogID]; ok {
			continue
		}
		latest, previous, err := resolver.LatestTwo(ctx, *h.CatalogID, models.ReferenceCurrency)
		if err != nil {
			return nil, err
		}
		prices[*h.CatalogID] = resolved{price: CurrentPrice(latest), change: ChangeRatio(latest, previous)}
	}

	totalCost := decimal.Zero
	totalValue := decimal.Zero
	lines := make([]*models.HoldingLine, 0, len(holdings))
	for _, h := range holdings {
		var p resolved
		if h.HasCatalogRef() {
			p = prices[*h.CatalogID]
		}
		v := ValueHolding(h, p.price, p.change, converter)
		totalCost = totalCost.Add(v.Cost)
		totalValue = totalValue.Add(v.CurrentValue)

		lines = append(lines, &models.HoldingLine{
			Holding:      h,
			CurrentPrice: converter.Convert(p.price, currency),
			Cost:         converter.Convert(v.Cost, currency),
			CurrentValue: converter.Convert(v.CurrentValue, currency),
			Unrealized:   converter.Convert(v.Unrealized, currency),
			Change24h:    v.ChangeRatio,
		})
	}

	return &models.PortfolioSummary{
		Currency:        currency,
		TotalCost:       converter.Convert(totalCost, currency),
		TotalValue:      converter.Convert(totalValue, currency),
		TotalUnrealized: converter.Convert(totalValue.Sub(totalCost), currency),
		Holdings:        lines,
		Movers:          BiggestMovers(lines, MaxMovers),
	}, nil
}

// BiggestMovers ranks lines by |value × change| descending, keeping input
// order for ties, and returns at most n of them.
func BiggestMovers(lines []*models.HoldingLine, n int) []*models.HoldingLine {
	ranked := make([]*models.HoldingLine, len(lines))
	copy(ranked, lines)
	sort.SliceStable(ranked, func(i, j int) bool {
		return swing(ranked[i]).GreaterThan(swing(ranked[j]))
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func swing(l *models.HoldingLine) decimal.Decimal {
	return l.CurrentValue.Mul(l.Change24h).Abs()
}

// DailySeries buckets reference-currency snapshots at or after now-lookbackDays
// into UTC days and values the holdings against each day's prices.
// Holdings without a same-day price are left out of that day; nothing is
// carried forward. Within a day the last snapshot seen for a catalog entry wins.
func DailySeries(snapshots []*models.PriceSnapshot, holdings []*models.Holding, lookbackDays int, converter *CurrencyConverter, outputCurrency string, now time.Time) []*models.DailyValue {
	cutoff := now.AddDate(0, 0, -lookbackDays)
	currency := normalizeCurrency(outputCurrency)

	buckets := make(map[time.Time]map[string]decimal.Decimal)
	for _, snap := range snapshots {
		if snap.Timestamp.Before(cutoff) {
			continue
		}
		day := snap.Day()
		if buckets[day] == nil {
			buckets[day] = make(map[string]decimal.Decimal)
		}
		buckets[day][snap.CatalogID] = snap.Price
	}

	days := make([]time.Time, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	series := make([]*models.DailyValue, 0, len(days))
	for _, day := range days {
		total := decimal.Zero
		for _, h := range holdings {
			if !h.HasCatalogRef() {
				continue
			}
			price, ok := buckets[day][*h.CatalogID]
			if !ok {
				continue
			}
			total = total.Add(price.Mul(decimal.NewFromInt(int64(h.Quantity))))
		}
		series = append(series, &models.DailyValue{Date: day, Value: converter.Convert(total, currency)})
	}
	return series
}

func normalizeCurrency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return models.ReferenceCurrency
	}
	return code
}
