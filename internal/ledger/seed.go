package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

var DefaultExpenseCategories = []string{
	"Aluguel",
	"Energia",
	"Água",
	"Internet",
	"Taxa do Bloco",
	"Lazer",
	"Mercado",
	"Transporte",
	"Saúde",
	"Outro",
}

var DefaultIncomeSources = []string{
	"IQ Option",
	"Binomo",
	"Corretagem Imobiliária",
	"YouTube",
	"Infoprodutos",
	"Salário",
	"Dividends",
}

var (
	DefaultInitialBalance = decimal.NewFromInt(1000)
	DefaultExchangeRate   = decimal.RequireFromString("5.80")
)

// NewSeededState returns the demo session: a handful of expenses and income
// around the current month plus one account per currency.
func NewSeededState(now time.Time, initialBalance, exchangeRate decimal.Decimal) State {
	today := DateOf(now)
	dayOfMonth := func(day int) Date {
		return NewDate(today.Year(), today.Month(), day)
	}
	expense := func(date Date, description string, value int64, category string, status ExpenseStatus) Expense {
		return Expense{
			Entry:    Entry{ID: uuid.Must(uuid.NewV4()), Date: date, Description: description, Value: decimal.NewFromInt(value)},
			Category: category,
			Status:   status,
		}
	}
	income := func(date Date, description string, value int64, source string, incomeType IncomeType) Income {
		return Income{
			Entry:  Entry{ID: uuid.Must(uuid.NewV4()), Date: date, Description: description, Value: decimal.NewFromInt(value)},
			Source: source,
			Type:   incomeType,
		}
	}

	s := NewState(initialBalance, exchangeRate)
	s.Expenses = []Expense{
		expense(dayOfMonth(5), "Aluguel Apto", 2500, "Aluguel", StatusPaid),
		expense(dayOfMonth(10), "Conta de Luz", 350, "Energia", StatusPaid),
		expense(dayOfMonth(15), "Jantar Comemorativo", 450, "Lazer", StatusPaid),
		expense(dayOfMonth(20), "Mercado Mensal", 1200, "Mercado", StatusPending),
		expense(today.AddDays(-45), "Uber Viagens", 150, "Transporte", StatusPaid),
		expense(today.AddDays(-60), "Manutenção Carro", 800, "Transporte", StatusPaid),
		expense(dayOfMonth(2), "Internet Fibra", 120, "Internet", StatusPaid),
	}
	s.Income = []Income{
		income(dayOfMonth(1), "Venda Apartamento Centro", 15000, "Corretagem Imobiliária", IncomeActive),
		income(dayOfMonth(8), "AdSense Outubro", 3200, "YouTube", IncomePassive),
		income(dayOfMonth(12), "Day Trade Win", 1500, "IQ Option", IncomeVariable),
		income(today.AddDays(-35), "Venda E-book", 800, "Infoprodutos", IncomePassive),
		income(today.AddDays(-40), "Lucro Opções", 2200, "Binomo", IncomeVariable),
		income(dayOfMonth(25), "Consultoria", 4000, "Corretagem Imobiliária", IncomeActive),
	}
	s.Investments = []InvestmentAccount{
		{ID: uuid.Must(uuid.NewV4()), Name: "IQ Option", Value: decimal.Zero, Currency: CurrencyHome},
		{ID: uuid.Must(uuid.NewV4()), Name: "Ebinex", Value: decimal.Zero, Currency: CurrencyForeign},
	}
	return s
}
