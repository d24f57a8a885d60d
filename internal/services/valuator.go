package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tropicaldog17/cardfolio/internal/models"
)

// ValueHolding computes cost, value and unrealized result for one holding,
// all in the reference currency. currentPrice is per unit; changeRatio is
// the price movement of the referenced catalog entry.
func ValueHolding(h *models.Holding, currentPrice, changeRatio decimal.Decimal, converter *CurrencyConverter) models.HoldingValuation {
	qty := decimal.NewFromInt(int64(h.Quantity))

	cost := h.PurchasePrice.Mul(qty)
	if !strings.EqualFold(h.PurchaseCurrency, models.ReferenceCurrency) {
		cost = converter.ToReference(cost, h.PurchaseCurrency)
	}

	value := decimal.Zero
	change := decimal.Zero
	if h.HasCatalogRef() {
		value = currentPrice.Mul(qty)
		change = changeRatio
	}

	return models.HoldingValuation{
		Cost:         cost,
		CurrentValue: value,
		Unrealized:   value.Sub(cost),
		ChangeRatio:  change,
	}
}
