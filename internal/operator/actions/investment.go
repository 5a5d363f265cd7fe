package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/weverton790458597/DashBoard/internal/ledger"
	"github.com/weverton790458597/DashBoard/internal/storage"
)

type CreateInvestment struct {
	AccountName string
	Currency    ledger.Currency
	Account     ledger.InvestmentAccount
}

func (a *CreateInvestment) Name() string { return "CreateInvestment" }

func (a *CreateInvestment) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Investment.Create(a.AccountName, a.Currency)
	if err != nil {
		return err
	}
	a.Account = account
	return nil
}

type UpdateInvestmentValue struct {
	ID      uuid.UUID
	Value   string
	Updated bool
	// Account is the account after the update, nil when Updated is false.
	Account *ledger.InvestmentAccount
}

func (a *UpdateInvestmentValue) Name() string { return "UpdateInvestmentValue" }

func (a *UpdateInvestmentValue) Perform(ctx context.Context, writer *storage.Writer) error {
	updated, err := writer.Investment.UpdateValue(a.ID, a.Value)
	if err != nil {
		return err
	}
	a.Updated = updated
	if updated {
		a.Account = writer.Investment.FindByID(a.ID)
	}
	return nil
}

type DeleteInvestment struct {
	ID      uuid.UUID
	Removed bool
}

func (a *DeleteInvestment) Name() string { return "DeleteInvestment" }

func (a *DeleteInvestment) Perform(ctx context.Context, writer *storage.Writer) error {
	a.Removed = writer.Investment.Delete(a.ID)
	return nil
}
