package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/weverton790458597/DashBoard/internal/ledger"
)

// NetWorth is the bank balance plus the home currency value of every
// investment account.
type NetWorth struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	BankBalance   decimal.Decimal
	InvestedTotal decimal.Decimal
	NetWorth      decimal.Decimal
}

// Sum adds up the values of items.
func Sum[T ledger.Transaction](items []T) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Base().Value)
	}
	return total
}

// InvestedTotal converts every account to the home currency at rate.
func InvestedTotal(investments []ledger.InvestmentAccount, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, account := range investments {
		total = total.Add(account.HomeValue(rate))
	}
	return total
}

// ComputeNetWorth combines the filtered transactions with the initial
// balance and the current investment balances.
func ComputeNetWorth(
	income []ledger.Income,
	expenses []ledger.Expense,
	initialBalance decimal.Decimal,
	investments []ledger.InvestmentAccount,
	rate decimal.Decimal,
) NetWorth {
	totalIncome := Sum(income)
	totalExpenses := Sum(expenses)
	bank := initialBalance.Add(totalIncome).Sub(totalExpenses)
	invested := InvestedTotal(investments, rate)

	return NetWorth{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		BankBalance:   bank,
		InvestedTotal: invested,
		NetWorth:      bank.Add(invested),
	}
}
