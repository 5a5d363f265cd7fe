package storage

import (
	"sync"

	"github.com/weverton790458597/DashBoard/internal/ledger"
	"github.com/weverton790458597/DashBoard/internal/storage/investment"
	"github.com/weverton790458597/DashBoard/internal/storage/settings"
	"github.com/weverton790458597/DashBoard/internal/storage/transaction"
)

type Writer struct {
	storage     *Storage
	working     *ledger.State
	closeOnce   sync.Once
	Transaction *transaction.Writer
	Investment  *investment.Writer
	Settings    *settings.Writer
}

func newWriter(s *Storage, working ledger.State) *Writer {
	w := &Writer{
		storage: s,
		working: &working,
	}
	w.Transaction = transaction.NewWriter(w.working)
	w.Investment = investment.NewWriter(w.working)
	w.Settings = settings.NewWriter(w.working)
	return w
}

func (w *Writer) Commit() error {
	return w.close(true)
}

func (w *Writer) Rollback() error {
	return w.close(false)
}

func (w *Writer) close(commit bool) error {
	err := ErrWriterClosed
	w.closeOnce.Do(func() {
		if commit {
			w.storage.commit(*w.working)
		}
		w.storage.release()
		err = nil
	})
	return err
}
