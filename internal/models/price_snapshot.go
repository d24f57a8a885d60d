package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	apperrors "github.com/tropicaldog17/cardfolio/internal/errors"
)

// Common snapshot sources
const (
	PriceSourceManual   = "manual"
	PriceSourceMock     = "mock"
	PriceSourceMockLive = "mock_live"
)

// PriceSnapshot is a single recorded price observation for a catalog entry.
// Snapshots are append-only; the ordered history per (catalog, currency)
// backs the latest/previous lookups.
type PriceSnapshot struct {
	ID        string          `json:"id" gorm:"primaryKey;column:id;type:varchar(36)"`
	CatalogID string          `json:"catalog_id" gorm:"column:catalog_id;type:varchar(36);not null;index:idx_snapshot_lookup,priority:1"`
	Currency  string          `json:"currency" gorm:"column:currency;type:varchar(10);not null;index:idx_snapshot_lookup,priority:2"`
	Price     decimal.Decimal `json:"price" gorm:"column:price;type:decimal(20,8);not null"`
	Source    string          `json:"source" gorm:"column:source;type:varchar(50);not null"`
	Timestamp time.Time       `json:"timestamp" gorm:"column:recorded_at;not null;index:idx_snapshot_lookup,priority:3"`
}

func (PriceSnapshot) TableName() string { return "price_snapshots" }

// ApplyDefaults fills currency, source and timestamp when the caller left them out
func (p *PriceSnapshot) ApplyDefaults(now time.Time) {
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	if p.Currency == "" {
		p.Currency = ReferenceCurrency
	}
	if p.Source == "" {
		p.Source = PriceSourceManual
	}
	if p.Timestamp.IsZero() {
		p.Timestamp = now
	}
	p.Timestamp = p.Timestamp.UTC()
}

func (p *PriceSnapshot) Validate() error {
	if p.CatalogID == "" {
		return apperrors.NewValidation("catalog_id", "is required")
	}
	if strings.TrimSpace(p.Currency) == "" {
		return apperrors.NewValidation("currency", "is required")
	}
	if p.Price.IsNegative() {
		return apperrors.NewValidation("price", "must not be negative")
	}
	if strings.TrimSpace(p.Source) == "" {
		return apperrors.NewValidation("source", "is required")
	}
	return nil
}

// Day returns the UTC calendar day the snapshot falls on
func (p *PriceSnapshot) Day() time.Time {
	return DateOnly(p.Timestamp)
}

// DateOnly truncates t to midnight UTC of its UTC calendar day
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
