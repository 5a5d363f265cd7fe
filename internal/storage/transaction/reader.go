package transaction

import (
	"slices"

	"github.com/gofrs/uuid/v5"

	"github.com/weverton790458597/DashBoard/internal/ledger"
)

type Reader struct {
	state *ledger.State
}

func NewReader(state *ledger.State) *Reader {
	return &Reader{state: state}
}

// Expenses returns every expense in insertion order.
func (r *Reader) Expenses() []ledger.Expense {
	return slices.Clone(r.state.Expenses)
}

// Income returns every income entry in insertion order.
func (r *Reader) Income() []ledger.Income {
	return slices.Clone(r.state.Income)
}

// FindExpense returns nil when no expense has id.
func (r *Reader) FindExpense(id uuid.UUID) *ledger.Expense {
	idx := slices.IndexFunc(r.state.Expenses, func(e ledger.Expense) bool { return e.ID == id })
	if idx < 0 {
		return nil
	}
	expense := r.state.Expenses[idx]
	return &expense
}

// FindIncome returns nil when no income entry has id.
func (r *Reader) FindIncome(id uuid.UUID) *ledger.Income {
	idx := slices.IndexFunc(r.state.Income, func(i ledger.Income) bool { return i.ID == id })
	if idx < 0 {
		return nil
	}
	income := r.state.Income[idx]
	return &income
}

func (r *Reader) Categories() []string {
	return r.state.ExpenseCategories.Values()
}

func (r *Reader) Sources() []string {
	return r.state.IncomeSources.Values()
}
