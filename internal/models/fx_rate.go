package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ReferenceCurrency is the unit every internal sum is normalized to
const ReferenceCurrency = "EUR"

// Common currencies
const (
	CurrencyEUR = "EUR"
	CurrencyUSD = "USD"
	CurrencyGBP = "GBP"
	CurrencyJPY = "JPY"
	CurrencyBTC = "BTC"
	CurrencyETH = "ETH"
)

// RateTable maps an uppercase currency code to units of that currency per
// one unit of ReferenceCurrency.
type RateTable map[string]decimal.Decimal

// DefaultRates returns a fresh copy of the static rate table
func DefaultRates() RateTable {
	one := decimal.NewFromInt(1)
	return RateTable{
		CurrencyEUR: one,
		CurrencyUSD: decimal.RequireFromString("1.08"),
		CurrencyGBP: decimal.RequireFromString("0.86"),
		CurrencyJPY: decimal.NewFromInt(162),
		CurrencyBTC: one.Div(decimal.NewFromInt(60000)),
		CurrencyETH: one.Div(decimal.NewFromInt(3000)),
	}
}

// Lookup returns the rate for code, matching case-insensitively
func (r RateTable) Lookup(code string) (decimal.Decimal, bool) {
	rate, ok := r[strings.ToUpper(strings.TrimSpace(code))]
	return rate, ok
}

// Merge returns a copy of r with the entries of other laid over it
func (r RateTable) Merge(other RateTable) RateTable {
	out := make(RateTable, len(r)+len(other))
	for k, v := range r {
		out[k] = v
	}
	for k, v := range other {
		out[strings.ToUpper(k)] = v
	}
	return out
}

// ParseRates parses "USD=1.08,GBP=0.86" into a table
func ParseRates(s string) (RateTable, error) {
	out := RateTable{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		code, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid rate entry %q", part)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid rate for %s: %w", code, err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("rate for %s must be positive", code)
		}
		out[strings.ToUpper(strings.TrimSpace(code))] = rate
	}
	return out, nil
}
