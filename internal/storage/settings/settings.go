package settings

import (
	"github.com/shopspring/decimal"

	"github.com/weverton790458597/DashBoard/internal/ledger"
)

type Reader struct {
	state *ledger.State
}

func NewReader(state *ledger.State) *Reader {
	return &Reader{state: state}
}

func (r *Reader) InitialBalance() decimal.Decimal {
	return r.state.InitialBalance
}

func (r *Reader) ExchangeRate() decimal.Decimal {
	return r.state.ExchangeRate
}

type Writer struct {
	Reader
}

func NewWriter(state *ledger.State) *Writer {
	return &Writer{
		Reader: Reader{
			state: state,
		},
	}
}

func (w *Writer) SetInitialBalance(value string) error {
	next, err := w.state.SetInitialBalance(value)
	if err != nil {
		return err
	}
	*w.state = next
	return nil
}

func (w *Writer) SetExchangeRate(value string) error {
	next, err := w.state.SetExchangeRate(value)
	if err != nil {
		return err
	}
	*w.state = next
	return nil
}
