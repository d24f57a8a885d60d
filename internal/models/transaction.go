package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	apperrors "github.com/tropicaldog17/cardfolio/internal/errors"
)

// TransactionType is the ledger direction
type TransactionType string

const (
	TransactionTypeBuy  TransactionType = "buy"
	TransactionTypeSell TransactionType = "sell"
)

// Transaction is an append-only ledger entry.
// HoldingID is a weak reference; the holding may be deleted later.
type Transaction struct {
	ID         string          `json:"id" gorm:"primaryKey;column:id;type:varchar(36)"`
	OwnerID    *string         `json:"owner_id,omitempty" gorm:"column:owner_id;type:varchar(64);index"`
	HoldingID  *string         `json:"holding_id,omitempty" gorm:"column:holding_id;type:varchar(36);index"`
	Type       TransactionType `json:"type" gorm:"column:type;type:varchar(10);not null;index"`
	Quantity   int             `json:"quantity" gorm:"column:quantity;not null"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"column:total_price;type:decimal(20,8);not null"`
	Currency   string          `json:"currency" gorm:"column:currency;type:varchar(10);not null"`
	Timestamp  time.Time       `json:"timestamp" gorm:"column:occurred_at;not null;index"`
	Notes      *string         `json:"notes,omitempty" gorm:"column:notes;type:text"`
	CreatedAt  time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (Transaction) TableName() string { return "transactions" }

// ApplyDefaults fills quantity and currency when the caller left them out
func (t *Transaction) ApplyDefaults() {
	if t.Quantity == 0 {
		t.Quantity = 1
	}
	t.Currency = strings.ToUpper(strings.TrimSpace(t.Currency))
	if t.Currency == "" {
		t.Currency = ReferenceCurrency
	}
}

// Validate validates the transaction data
func (t *Transaction) Validate() error {
	if t.Type != TransactionTypeBuy && t.Type != TransactionTypeSell {
		return apperrors.NewValidation("type", "must be buy or sell")
	}
	if t.Quantity < 1 {
		return apperrors.NewValidation("quantity", "must be at least 1")
	}
	if t.TotalPrice.IsNegative() {
		return apperrors.NewValidation("total_price", "must not be negative")
	}
	if strings.TrimSpace(t.Currency) == "" {
		return apperrors.NewValidation("currency", "is required")
	}
	return nil
}

// UnitPrice returns the per-unit price of the entry
func (t *Transaction) UnitPrice() decimal.Decimal {
	if t.Quantity == 0 {
		return decimal.Zero
	}
	return t.TotalPrice.Div(decimal.NewFromInt(int64(t.Quantity)))
}

// TransactionFilter narrows transaction listings
type TransactionFilter struct {
	OwnerID   string
	HoldingID string
	Type      TransactionType
	Limit     int
	Offset    int
}
