package ledger

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Currency is the denomination of an investment account.
type Currency string

const (
	CurrencyHome    Currency = "BRL"
	CurrencyForeign Currency = "USD"
)

func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case CurrencyHome, CurrencyForeign:
		return Currency(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
}

// InvestmentAccount is a manually tracked balance held outside the bank
// account. Value is in the account's own currency and may be negative.
type InvestmentAccount struct {
	ID       uuid.UUID
	Name     string
	Value    decimal.Decimal
	Currency Currency
}

// HomeValue converts the balance to the home currency at rate.
func (a InvestmentAccount) HomeValue(rate decimal.Decimal) decimal.Decimal {
	if a.Currency == CurrencyForeign {
		return a.Value.Mul(rate)
	}
	return a.Value
}
