package ledger

import (
	"slices"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// newID is swapped in tests that need deterministic ids.
var newID = func() (uuid.UUID, error) {
	return uuid.NewV4()
}

// State is the complete session state of the dashboard. Methods never
// modify the receiver; they return the next state.
type State struct {
	Expenses          []Expense
	Income            []Income
	Investments       []InvestmentAccount
	ExpenseCategories Vocabulary
	IncomeSources     Vocabulary
	InitialBalance    decimal.Decimal
	ExchangeRate      decimal.Decimal
}

// NewState returns an empty state with the default vocabularies.
func NewState(initialBalance, exchangeRate decimal.Decimal) State {
	return State{
		ExpenseCategories: NewVocabulary(DefaultExpenseCategories...),
		IncomeSources:     NewVocabulary(DefaultIncomeSources...),
		InitialBalance:    initialBalance,
		ExchangeRate:      exchangeRate,
	}
}

// Clone returns a copy whose collections can be modified independently.
func (s State) Clone() State {
	s.Expenses = slices.Clone(s.Expenses)
	s.Income = slices.Clone(s.Income)
	s.Investments = slices.Clone(s.Investments)
	return s
}

// ExpenseDraft is the user input for creating or replacing an expense.
// A nil ID, or one that matches nothing, creates a new expense.
type ExpenseDraft struct {
	ID          uuid.UUID
	Date        Date
	Description string
	Value       string
	Category    string
	Status      ExpenseStatus
}

// IncomeDraft is the user input for creating or replacing an income entry.
type IncomeDraft struct {
	ID          uuid.UUID
	Date        Date
	Description string
	Value       string
	Source      string
	Type        IncomeType
}

// UpsertResult describes what an upsert changed.
type UpsertResult struct {
	ID              uuid.UUID
	Created         bool
	VocabularyAdded bool
}

func validateEntry(date Date, description, value string) (Entry, error) {
	if date.IsZero() {
		return Entry{}, ErrInvalidDate
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return Entry{}, ErrEmptyDescription
	}
	v, err := ParseValue(value)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Date: date, Description: description, Value: v}, nil
}

func (d ExpenseDraft) validate() (Expense, error) {
	entry, err := validateEntry(d.Date, d.Description, d.Value)
	if err != nil {
		return Expense{}, err
	}
	category := strings.TrimSpace(d.Category)
	if category == "" {
		return Expense{}, ErrEmptyCategory
	}
	status, err := ParseExpenseStatus(string(d.Status))
	if err != nil {
		return Expense{}, err
	}
	return Expense{Entry: entry, Category: category, Status: status}, nil
}

func (d IncomeDraft) validate() (Income, error) {
	entry, err := validateEntry(d.Date, d.Description, d.Value)
	if err != nil {
		return Income{}, err
	}
	source := strings.TrimSpace(d.Source)
	if source == "" {
		return Income{}, ErrEmptySource
	}
	incomeType, err := ParseIncomeType(string(d.Type))
	if err != nil {
		return Income{}, err
	}
	return Income{Entry: entry, Source: source, Type: incomeType}, nil
}

// UpsertExpense replaces the expense with the draft's ID or appends a new
// one, growing the category vocabulary when needed.
func (s State) UpsertExpense(draft ExpenseDraft) (State, UpsertResult, error) {
	expense, err := draft.validate()
	if err != nil {
		return s, UpsertResult{}, err
	}

	next := s.Clone()
	idx := -1
	if draft.ID != uuid.Nil {
		idx = slices.IndexFunc(next.Expenses, func(e Expense) bool { return e.ID == draft.ID })
	}

	result := UpsertResult{}
	if idx >= 0 {
		expense.ID = draft.ID
		next.Expenses[idx] = expense
	} else {
		if expense.ID, err = newID(); err != nil {
			return s, UpsertResult{}, err
		}
		next.Expenses = append(next.Expenses, expense)
		result.Created = true
	}
	result.ID = expense.ID
	next.ExpenseCategories, result.VocabularyAdded = next.ExpenseCategories.Add(expense.Category)

	return next, result, nil
}

// UpsertIncome replaces the income entry with the draft's ID or appends a
// new one, growing the source vocabulary when needed.
func (s State) UpsertIncome(draft IncomeDraft) (State, UpsertResult, error) {
	income, err := draft.validate()
	if err != nil {
		return s, UpsertResult{}, err
	}

	next := s.Clone()
	idx := -1
	if draft.ID != uuid.Nil {
		idx = slices.IndexFunc(next.Income, func(i Income) bool { return i.ID == draft.ID })
	}

	result := UpsertResult{}
	if idx >= 0 {
		income.ID = draft.ID
		next.Income[idx] = income
	} else {
		if income.ID, err = newID(); err != nil {
			return s, UpsertResult{}, err
		}
		next.Income = append(next.Income, income)
		result.Created = true
	}
	result.ID = income.ID
	next.IncomeSources, result.VocabularyAdded = next.IncomeSources.Add(income.Source)

	return next, result, nil
}

// DeleteTransaction removes the first transaction of kind with id. The
// returned bool is false when nothing matched.
func (s State) DeleteTransaction(kind Kind, id uuid.UUID) (State, bool) {
	next := s.Clone()
	switch kind {
	case KindExpense:
		idx := slices.IndexFunc(next.Expenses, func(e Expense) bool { return e.ID == id })
		if idx < 0 {
			return s, false
		}
		next.Expenses = slices.Delete(next.Expenses, idx, idx+1)
	case KindIncome:
		idx := slices.IndexFunc(next.Income, func(i Income) bool { return i.ID == id })
		if idx < 0 {
			return s, false
		}
		next.Income = slices.Delete(next.Income, idx, idx+1)
	default:
		return s, false
	}
	return next, true
}

// AddInvestmentAccount appends a zero valued account.
func (s State) AddInvestmentAccount(name string, currency Currency) (State, InvestmentAccount, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, InvestmentAccount{}, ErrEmptyName
	}
	if _, err := ParseCurrency(string(currency)); err != nil {
		return s, InvestmentAccount{}, err
	}
	id, err := newID()
	if err != nil {
		return s, InvestmentAccount{}, err
	}

	account := InvestmentAccount{ID: id, Name: name, Value: decimal.Zero, Currency: currency}
	next := s.Clone()
	next.Investments = append(next.Investments, account)
	return next, account, nil
}

// UpdateInvestmentValue sets the balance of the account with id. Negative
// balances are allowed.
func (s State) UpdateInvestmentValue(id uuid.UUID, value string) (State, bool, error) {
	v, err := ParseValue(value)
	if err != nil {
		return s, false, err
	}
	idx := slices.IndexFunc(s.Investments, func(a InvestmentAccount) bool { return a.ID == id })
	if idx < 0 {
		return s, false, nil
	}
	next := s.Clone()
	next.Investments[idx].Value = v
	return next, true, nil
}

func (s State) DeleteInvestmentAccount(id uuid.UUID) (State, bool) {
	idx := slices.IndexFunc(s.Investments, func(a InvestmentAccount) bool { return a.ID == id })
	if idx < 0 {
		return s, false
	}
	next := s.Clone()
	next.Investments = slices.Delete(next.Investments, idx, idx+1)
	return next, true
}

func (s State) SetInitialBalance(value string) (State, error) {
	v, err := ParseValue(value)
	if err != nil {
		return s, err
	}
	s.InitialBalance = v
	return s.Clone(), nil
}

// SetExchangeRate updates the foreign to home conversion rate, which must be
// strictly positive.
func (s State) SetExchangeRate(value string) (State, error) {
	v, err := ParseValue(value)
	if err != nil {
		return s, err
	}
	if !v.IsPositive() {
		return s, ErrInvalidRate
	}
	s.ExchangeRate = v
	return s.Clone(), nil
}
