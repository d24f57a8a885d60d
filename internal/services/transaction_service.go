package services

import (
	"context"
	"time"

	apperrors "github.com/tropicaldog17/cardfolio/internal/errors"
	"github.com/tropicaldog17/cardfolio/internal/models"
	"github.com/tropicaldog17/cardfolio/internal/repositories"
)

type transactionService struct {
	transactions repositories.TransactionRepository
	holdings     repositories.HoldingRepository
	now          func() time.Time
}

// NewTransactionService creates a new transaction service
func NewTransactionService(transactions repositories.TransactionRepository, holdings repositories.HoldingRepository) TransactionService {
	return &transactionService{transactions: transactions, holdings: holdings, now: time.Now}
}

// CreateTransaction appends a ledger entry. A referenced holding must exist
// at this point; later deletion of the holding leaves the entry untouched.
func (s *transactionService) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.HoldingID != nil && *tx.HoldingID != "" {
		ok, err := s.holdings.Exists(ctx, *tx.HoldingID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.NewNotFound("holding", *tx.HoldingID)
		}
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = s.now()
	}
	tx.Timestamp = tx.Timestamp.UTC()
	tx.ApplyDefaults()

	if err := tx.Validate(); err != nil {
		return err
	}
	return s.transactions.Create(ctx, tx)
}

func (s *transactionService) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	return s.transactions.GetByID(ctx, id)
}

func (s *transactionService) ListTransactions(ctx context.Context, filter *models.TransactionFilter) ([]*models.Transaction, error) {
	return s.transactions.List(ctx, filter)
}
