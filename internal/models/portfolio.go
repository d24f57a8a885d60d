package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// HoldingValuation is the reference-currency valuation of one holding
// together with the price change ratio it was valued against
type HoldingValuation struct {
	Cost         decimal.Decimal
	CurrentValue decimal.Decimal
	Unrealized   decimal.Decimal
	ChangeRatio  decimal.Decimal
}

// HoldingLine is a holding plus its computed figures in the summary currency
type HoldingLine struct {
	Holding      *Holding        `json:"holding"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	Cost         decimal.Decimal `json:"cost"`
	CurrentValue decimal.Decimal `json:"current_value"`
	Unrealized   decimal.Decimal `json:"unrealized"`
	Change24h    decimal.Decimal `json:"change_24h"`
}

// PortfolioSummary is the aggregated valuation of all holdings
type PortfolioSummary struct {
	Currency        string          `json:"currency"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	TotalValue      decimal.Decimal `json:"total_value"`
	TotalUnrealized decimal.Decimal `json:"total_unrealized"`
	Holdings        []*HoldingLine  `json:"holdings"`
	Movers          []*HoldingLine  `json:"movers"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// DailyValue is one point of the reconstructed value curve.
// Date is serialized as a calendar date (YYYY-MM-DD).
type DailyValue struct {
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

type dailyValueJSON struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}

func (d DailyValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(dailyValueJSON{Date: d.Date.UTC().Format(DateLayout), Value: d.Value})
}

func (d *DailyValue) UnmarshalJSON(b []byte) error {
	var raw dailyValueJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	date, err := time.Parse(DateLayout, raw.Date)
	if err != nil {
		return err
	}
	d.Date = date
	d.Value = raw.Value
	return nil
}

// SeriesStats describes a daily value series
type SeriesStats struct {
	Points int     `json:"points"`
	First  float64 `json:"first"`
	Last   float64 `json:"last"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Change float64 `json:"change"`
}

// DailySeries is the API shape of a reconstructed series
type DailySeries struct {
	Currency     string        `json:"currency"`
	LookbackDays int           `json:"lookback_days"`
	Points       []*DailyValue `json:"points"`
	Stats        *SeriesStats  `json:"stats"`
}

// SummaryCSVRow is one exported line of a portfolio summary
type SummaryCSVRow struct {
	HoldingID    string `csv:"holding_id"`
	Name         string `csv:"name"`
	Category     string `csv:"category"`
	Quantity     int    `csv:"quantity"`
	Currency     string `csv:"currency"`
	CurrentPrice string `csv:"current_price"`
	Cost         string `csv:"cost"`
	CurrentValue string `csv:"current_value"`
	Unrealized   string `csv:"unrealized"`
	Change24h    string `csv:"change_24h"`
}

// Export is a full dump of the stored collection
type Export struct {
	Catalog      []*CatalogEntry `json:"catalog"`
	Collection   []*Holding      `json:"collection"`
	Transactions []*Transaction  `json:"transactions"`
	ExportedAt   time.Time       `json:"exported_at"`
}
