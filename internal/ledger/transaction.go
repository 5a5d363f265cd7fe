package ledger

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ExpenseStatus tracks whether an expense has been settled.
type ExpenseStatus string

const (
	StatusPaid    ExpenseStatus = "Pago"
	StatusPending ExpenseStatus = "Pendente"
)

// ParseExpenseStatus accepts the display label. Empty means paid.
func ParseExpenseStatus(s string) (ExpenseStatus, error) {
	switch ExpenseStatus(s) {
	case "", StatusPaid:
		return StatusPaid, nil
	case StatusPending:
		return StatusPending, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// IncomeType is the fixed classification of an income entry.
type IncomeType string

const (
	IncomeVariable IncomeType = "Renda Variável"
	IncomePassive  IncomeType = "Renda Passiva"
	IncomeActive   IncomeType = "Renda Ativa/Serviço"
)

// IncomeTypes lists every income type in display order.
var IncomeTypes = []IncomeType{IncomeVariable, IncomePassive, IncomeActive}

// ParseIncomeType accepts the display label. Empty means variable.
func ParseIncomeType(s string) (IncomeType, error) {
	if s == "" {
		return IncomeVariable, nil
	}
	for _, t := range IncomeTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
}

// Kind selects the expense or income collection.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindExpense, KindIncome:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Entry holds the fields shared by expenses and income.
type Entry struct {
	ID          uuid.UUID
	Date        Date
	Description string
	Value       decimal.Decimal
}

// Base returns the shared fields of a transaction.
func (e Entry) Base() Entry {
	return e
}

// Transaction is satisfied by Expense and Income only.
type Transaction interface {
	Base() Entry
}

type Expense struct {
	Entry
	Category string
	Status   ExpenseStatus
}

type Income struct {
	Entry
	Source string
	Type   IncomeType
}

// Monetary values are bounded so that sums and formatting stay cheap.
const (
	maxValueExponent = 15
	minValueExponent = -8
)

var maxValue = decimal.New(1, maxValueExponent)

// ParseValue parses a user supplied monetary value into a finite decimal
// below one quadrillion in magnitude with at most eight decimal places.
func ParseValue(raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
	}
	if exp := v.Exponent(); exp > maxValueExponent || exp < minValueExponent {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrInvalidValue, raw)
	}
	if v.Abs().GreaterThanOrEqual(maxValue) {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrInvalidValue, raw)
	}
	return v, nil
}
