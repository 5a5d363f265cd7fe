package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/weverton790458597/DashBoard/internal/ledger"
	"github.com/weverton790458597/DashBoard/internal/storage"
)

// UpsertExpense creates or replaces an expense. Result is set on success.
type UpsertExpense struct {
	Draft  ledger.ExpenseDraft
	Result ledger.UpsertResult
}

func (a *UpsertExpense) Name() string { return "UpsertExpense" }

func (a *UpsertExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	result, err := writer.Transaction.UpsertExpense(a.Draft)
	if err != nil {
		return err
	}
	a.Result = result
	return nil
}

// UpsertIncome creates or replaces an income entry. Result is set on success.
type UpsertIncome struct {
	Draft  ledger.IncomeDraft
	Result ledger.UpsertResult
}

func (a *UpsertIncome) Name() string { return "UpsertIncome" }

func (a *UpsertIncome) Perform(ctx context.Context, writer *storage.Writer) error {
	result, err := writer.Transaction.UpsertIncome(a.Draft)
	if err != nil {
		return err
	}
	a.Result = result
	return nil
}

type DeleteTransaction struct {
	Kind    ledger.Kind
	ID      uuid.UUID
	Removed bool
}

func (a *DeleteTransaction) Name() string { return "DeleteTransaction" }

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	a.Removed = writer.Transaction.Delete(a.Kind, a.ID)
	return nil
}
