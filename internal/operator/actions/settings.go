package actions

import (
	"context"

	"github.com/weverton790458597/DashBoard/internal/storage"
)

type SetInitialBalance struct {
	Value string
}

func (a *SetInitialBalance) Name() string { return "SetInitialBalance" }

func (a *SetInitialBalance) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Settings.SetInitialBalance(a.Value)
}

type SetExchangeRate struct {
	Value string
}

func (a *SetExchangeRate) Name() string { return "SetExchangeRate" }

func (a *SetExchangeRate) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Settings.SetExchangeRate(a.Value)
}
