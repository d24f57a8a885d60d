package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	apperrors "github.com/tropicaldog17/cardfolio/internal/errors"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name        string
		tx          *Transaction
		expectError bool
		field       string
	}{
		{
			name: "valid buy",
			tx: &Transaction{
				Type: TransactionTypeBuy, Quantity: 2, TotalPrice: decimal.NewFromInt(40),
				Currency: "EUR", Timestamp: time.Now(),
			},
		},
		{
			name: "free sell is allowed",
			tx: &Transaction{
				Type: TransactionTypeSell, Quantity: 1, TotalPrice: decimal.Zero, Currency: "USD",
			},
		},
		{
			name:        "unknown type",
			tx:          &Transaction{Type: "swap", Quantity: 1, Currency: "EUR"},
			expectError: true,
			field:       "type",
		},
		{
			name:        "zero quantity",
			tx:          &Transaction{Type: TransactionTypeBuy, Quantity: 0, Currency: "EUR"},
			expectError: true,
			field:       "quantity",
		},
		{
			name: "negative total",
			tx: &Transaction{
				Type: TransactionTypeBuy, Quantity: 1, TotalPrice: decimal.NewFromInt(-1), Currency: "EUR",
			},
			expectError: true,
			field:       "total_price",
		},
		{
			name:        "missing currency",
			tx:          &Transaction{Type: TransactionTypeBuy, Quantity: 1},
			expectError: true,
			field:       "currency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}
			var verr *apperrors.ErrValidation
			if assert.ErrorAs(t, err, &verr) {
				assert.Equal(t, tt.field, verr.Field)
			}
		})
	}
}

func TestTransaction_UnitPrice(t *testing.T) {
	tx := &Transaction{Quantity: 4, TotalPrice: decimal.NewFromInt(10)}
	assert.True(t, tx.UnitPrice().Equal(decimal.RequireFromString("2.5")))

	assert.True(t, (&Transaction{}).UnitPrice().IsZero())
}

func TestTransaction_ApplyDefaults(t *testing.T) {
	tx := &Transaction{Type: TransactionTypeBuy, TotalPrice: decimal.NewFromInt(3)}
	tx.ApplyDefaults()
	assert.Equal(t, 1, tx.Quantity)
	assert.Equal(t, "EUR", tx.Currency)
	assert.NoError(t, tx.Validate())

	tx = &Transaction{Type: TransactionTypeSell, Quantity: 2, Currency: "gbp"}
	tx.ApplyDefaults()
	assert.Equal(t, 2, tx.Quantity)
	assert.Equal(t, "GBP", tx.Currency)
}
