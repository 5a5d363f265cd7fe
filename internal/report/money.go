package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/weverton790458597/DashBoard/internal/ledger"
)

// Money formats decimals as localized currency text.
type Money struct {
	printer *message.Printer
}

// NewMoney returns a formatter for the BCP 47 locale, e.g. "pt-BR".
func NewMoney(locale string) (*Money, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Money{printer: message.NewPrinter(tag)}, nil
}

// Format renders value with the symbol of cur and two decimal places.
func (m *Money) Format(value decimal.Decimal, cur ledger.Currency) string {
	unit := currency.BRL
	if cur == ledger.CurrencyForeign {
		unit = currency.USD
	}
	// Display only, so float precision is acceptable here.
	amount := value.Round(2).InexactFloat64()
	return m.printer.Sprintf("%v %v", currency.Symbol(unit), number.Decimal(amount, number.Scale(2)))
}

// Home formats value in the home currency.
func (m *Money) Home(value decimal.Decimal) string {
	return m.Format(value, ledger.CurrencyHome)
}

// Rate formats a plain decimal with the locale's separators.
func (m *Money) Rate(value decimal.Decimal) string {
	return m.printer.Sprint(number.Decimal(value.InexactFloat64(), number.MinFractionDigits(2)))
}
