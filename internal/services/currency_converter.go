package services

import (
	"github.com/shopspring/decimal"

	"github.com/tropicaldog17/cardfolio/internal/models"
)

// CurrencyConverter converts amounts denominated in models.ReferenceCurrency
// using a fixed rate table. Unknown codes degrade to a 1:1 rate.
type CurrencyConverter struct {
	rates models.RateTable
}

// NewCurrencyConverter creates a converter over rates; nil selects the default table
func NewCurrencyConverter(rates models.RateTable) *CurrencyConverter {
	if rates == nil {
		rates = models.DefaultRates()
	}
	return &CurrencyConverter{rates: rates.Merge(nil)}
}

// Convert maps a reference-currency amount into target
func (c *CurrencyConverter) Convert(amount decimal.Decimal, target string) decimal.Decimal {
	rate, ok := c.rates.Lookup(target)
	if !ok {
		return amount
	}
	return amount.Mul(rate)
}

// ToReference maps an amount denominated in from back into the reference currency
func (c *CurrencyConverter) ToReference(amount decimal.Decimal, from string) decimal.Decimal {
	rate, ok := c.rates.Lookup(from)
	if !ok || rate.IsZero() {
		return amount
	}
	return amount.Div(rate)
}

// IsSupported reports whether code has an entry in the rate table
func (c *CurrencyConverter) IsSupported(code string) bool {
	_, ok := c.rates.Lookup(code)
	return ok
}

// GetSupportedCurrencies returns the codes in the rate table
func (c *CurrencyConverter) GetSupportedCurrencies() []string {
	result := make([]string, 0, len(c.rates))
	for code := range c.rates {
		result = append(result, code)
	}
	return result
}
