package service

import (
	"github.com/shopspring/decimal"

	"github.com/weverton790458597/DashBoard/internal/analytics"
	"github.com/weverton790458597/DashBoard/internal/ledger"
)

// Investment is an account together with its value in the home currency.
type Investment struct {
	ledger.InvestmentAccount
	HomeValue decimal.Decimal
}

// Settings are the user editable scalars of the session.
type Settings struct {
	InitialBalance decimal.Decimal
	ExchangeRate   decimal.Decimal
}

// Overview is the summary tab: balances, the monthly comparison and where
// income came from.
type Overview struct {
	Filter         ledger.Filter
	NetWorth       analytics.NetWorth
	Monthly        []analytics.MonthlyTotals
	IncomeBySource []analytics.NamedValue
	Investments    []Investment
	Settings
}

// ExpenseAnalysis is the filtered expense list with its breakdowns.
type ExpenseAnalysis struct {
	Filter     ledger.Filter
	Expenses   []ledger.Expense
	Total      decimal.Decimal
	ByCategory []analytics.NamedValue
	Monthly    []analytics.MonthBreakdown
	Categories []string
}

// IncomeAnalysis is the filtered income list with its breakdowns.
type IncomeAnalysis struct {
	Filter        ledger.Filter
	Income        []ledger.Income
	Total         decimal.Decimal
	BySource      []analytics.NamedValue
	TypeEvolution []analytics.MonthBreakdown
	Types         []string
}

// Vocabulary lists the labels offered when entering transactions.
type Vocabulary struct {
	Categories  []string
	Sources     []string
	IncomeTypes []string
}
