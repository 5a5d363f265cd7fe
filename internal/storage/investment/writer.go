package investment

import (
	"github.com/gofrs/uuid/v5"

	"github.com/weverton790458597/DashBoard/internal/ledger"
)

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

func (w *Writer) Create(name string, currency ledger.Currency) (ledger.InvestmentAccount, error) {
	next, account, err := w.state.AddInvestmentAccount(name, currency)
	if err != nil {
		return ledger.InvestmentAccount{}, err
	}
	*w.state = next
	return account, nil
}

// UpdateValue reports false when no account has id.
func (w *Writer) UpdateValue(id uuid.UUID, value string) (bool, error) {
	next, updated, err := w.state.UpdateInvestmentValue(id, value)
	if err != nil {
		return false, err
	}
	*w.state = next
	return updated, nil
}

func (w *Writer) Delete(id uuid.UUID) bool {
	next, removed := w.state.DeleteInvestmentAccount(id)
	*w.state = next
	return removed
}
