package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/weverton790458597/DashBoard/internal/ledger"
	"github.com/weverton790458597/DashBoard/internal/storage"
)

// TransactionService handles transaction lookups.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// GetExpense returns nil when the expense does not exist.
func (s *TransactionService) GetExpense(ctx context.Context, id uuid.UUID) (*ledger.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.storage.Read().Transactions.FindExpense(id), nil
}

// GetIncome returns nil when the income entry does not exist.
func (s *TransactionService) GetIncome(ctx context.Context, id uuid.UUID) (*ledger.Income, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.storage.Read().Transactions.FindIncome(id), nil
}

// Vocabulary returns the known categories, sources and income types.
func (s *TransactionService) Vocabulary(ctx context.Context) (*Vocabulary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	reader := s.storage.Read()

	incomeTypes := make([]string, len(ledger.IncomeTypes))
	for i, t := range ledger.IncomeTypes {
		incomeTypes[i] = string(t)
	}

	return &Vocabulary{
		Categories:  reader.Transactions.Categories(),
		Sources:     reader.Transactions.Sources(),
		IncomeTypes: incomeTypes,
	}, nil
}
