package transaction

import (
	"github.com/gofrs/uuid/v5"

	"github.com/weverton790458597/DashBoard/internal/ledger"
)

// Writer applies transaction mutations to a working copy of the state.
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

func (w *Writer) UpsertExpense(draft ledger.ExpenseDraft) (ledger.UpsertResult, error) {
	next, result, err := w.state.UpsertExpense(draft)
	if err != nil {
		return ledger.UpsertResult{}, err
	}
	*w.state = next
	return result, nil
}

func (w *Writer) UpsertIncome(draft ledger.IncomeDraft) (ledger.UpsertResult, error) {
	next, result, err := w.state.UpsertIncome(draft)
	if err != nil {
		return ledger.UpsertResult{}, err
	}
	*w.state = next
	return result, nil
}

// Delete reports whether a transaction of kind with id existed.
func (w *Writer) Delete(kind ledger.Kind, id uuid.UUID) bool {
	next, removed := w.state.DeleteTransaction(kind, id)
	*w.state = next
	return removed
}
