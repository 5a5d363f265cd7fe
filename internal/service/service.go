package service

import (
	"time"

	"github.com/weverton790458597/DashBoard/internal/storage"
)

// Service holds all read-side business logic. Mutations go through the
// operator.
type Service struct {
	Dashboard   *DashboardService
	Transaction *TransactionService
	Investment  *InvestmentService
}

// NewService creates a new Service with the given storage. now is the clock
// used for date range filters.
func NewService(store *storage.Storage, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		Dashboard:   NewDashboardService(store, now),
		Transaction: NewTransactionService(store),
		Investment:  NewInvestmentService(store),
	}
}
