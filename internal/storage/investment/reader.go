package investment

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

// List returns the accounts in the order they were added.
func (r *Reader) List() []ledger.InvestmentAccount {
	return slices.Clone(r.state.Investments)
}

func (r *Reader) FindByID(id uuid.UUID) *ledger.InvestmentAccount {
	idx := slices.IndexFunc(r.state.Investments, func(a ledger.InvestmentAccount) bool { return a.ID == id })
	if idx < 0 {
		return nil
	}
	account := r.state.Investments[idx]
	return &account
}
