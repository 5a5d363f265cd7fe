package service

import (
	"context"
	"time"

	"github.com/weverton790458597/DashBoard/internal/analytics"
	"github.com/weverton790458597/DashBoard/internal/ledger"
	"github.com/weverton790458597/DashBoard/internal/storage"
)

// DashboardService builds the filtered dashboard views.
type DashboardService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store *storage.Storage, now func() time.Time) *DashboardService {
	return &DashboardService{storage: store, now: now}
}

// Overview computes net worth over the filtered transactions, the monthly
// comparison and the income distribution by source.
func (s *DashboardService) Overview(ctx context.Context, filter ledger.Filter) (*Overview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	reader := s.storage.Read()
	now := s.now()
	income := analytics.FilterTransactions(reader.Transactions.Income(), filter, now)
	expenses := analytics.FilterTransactions(reader.Transactions.Expenses(), filter, now)
	settings := Settings{
		InitialBalance: reader.Settings.InitialBalance(),
		ExchangeRate:   reader.Settings.ExchangeRate(),
	}
	accounts := reader.Investments.List()

	return &Overview{
		Filter:         filter,
		NetWorth:       analytics.ComputeNetWorth(income, expenses, settings.InitialBalance, accounts, settings.ExchangeRate),
		Monthly:        analytics.MonthlyComparison(income, expenses),
		IncomeBySource: analytics.SourceDistribution(income),
		Investments:    withHomeValues(accounts, settings),
		Settings:       settings,
	}, nil
}

// ExpenseAnalysis returns the filtered expenses, their category
// distribution and the monthly stacked breakdown.
func (s *DashboardService) ExpenseAnalysis(ctx context.Context, filter ledger.Filter) (*ExpenseAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	expenses := analytics.FilterTransactions(s.storage.Read().Transactions.Expenses(), filter, s.now())
	monthly := analytics.StackedExpenses(expenses)

	return &ExpenseAnalysis{
		Filter:     filter,
		Expenses:   expenses,
		Total:      analytics.Sum(expenses),
		ByCategory: analytics.CategoryDistribution(expenses),
		Monthly:    monthly,
		Categories: analytics.Labels(monthly),
	}, nil
}

// IncomeAnalysis returns the filtered income, the performance per source
// and the monthly evolution per income type.
func (s *DashboardService) IncomeAnalysis(ctx context.Context, filter ledger.Filter) (*IncomeAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	income := analytics.FilterTransactions(s.storage.Read().Transactions.Income(), filter, s.now())

	types := make([]string, len(ledger.IncomeTypes))
	for i, t := range ledger.IncomeTypes {
		types[i] = string(t)
	}

	return &IncomeAnalysis{
		Filter:        filter,
		Income:        income,
		Total:         analytics.Sum(income),
		BySource:      analytics.SourceDistribution(income),
		TypeEvolution: analytics.TypeEvolution(income),
		Types:         types,
	}, nil
}

func withHomeValues(accounts []ledger.InvestmentAccount, settings Settings) []Investment {
	investments := make([]Investment, len(accounts))
	for i, account := range accounts {
		investments[i] = Investment{
			InvestmentAccount: account,
			HomeValue:         account.HomeValue(settings.ExchangeRate),
		}
	}
	return investments
}
