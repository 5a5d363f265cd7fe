package service

import (
	"context"

	"github.com/weverton790458597/DashBoard/internal/storage"
)

// InvestmentService handles investment account and settings reads.
type InvestmentService struct {
	storage *storage.Storage
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(store *storage.Storage) *InvestmentService {
	return &InvestmentService{storage: store}
}

// ListInvestments returns every account valued at the current exchange rate.
func (s *InvestmentService) ListInvestments(ctx context.Context) ([]Investment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	reader := s.storage.Read()
	settings := Settings{
		InitialBalance: reader.Settings.InitialBalance(),
		ExchangeRate:   reader.Settings.ExchangeRate(),
	}
	return withHomeValues(reader.Investments.List(), settings), nil
}

// GetSettings returns the initial balance and exchange rate.
func (s *InvestmentService) GetSettings(ctx context.Context) (*Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	reader := s.storage.Read()
	return &Settings{
		InitialBalance: reader.Settings.InitialBalance(),
		ExchangeRate:   reader.Settings.ExchangeRate(),
	}, nil
}
