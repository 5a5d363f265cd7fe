package storage

import (
	"github.com/weverton790458597/DashBoard/internal/ledger"
	"github.com/weverton790458597/DashBoard/internal/storage/investment"
	"github.com/weverton790458597/DashBoard/internal/storage/settings"
	"github.com/weverton790458597/DashBoard/internal/storage/transaction"
)

type Reader struct {
	Transactions *transaction.Reader
	Investments  *investment.Reader
	Settings     *settings.Reader
}

func NewReader(state *ledger.State) *Reader {
	return &Reader{
		Transactions: transaction.NewReader(state),
		Investments:  investment.NewReader(state),
		Settings:     settings.NewReader(state),
	}
}
