package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weverton790458597/DashBoard/internal/config"
	"github.com/weverton790458597/DashBoard/internal/ledger"
)

func newTestStorage() *Storage {
	return NewStorageFromState(ledger.NewState(decimal.NewFromInt(1000), decimal.RequireFromString("5.80")))
}

func expenseDraft() ledger.ExpenseDraft {
	return ledger.ExpenseDraft{
		Date:        ledger.NewDate(2025, time.May, 5),
		Description: "Aluguel Apto",
		Value:       "2500",
		Category:    "Aluguel",
	}
}

func TestNewStorage_SeedToggle(t *testing.T) {
	env := &config.Config{
		SeedMockData:   true,
		InitialBalance: decimal.NewFromInt(1000),
		ExchangeRate:   decimal.RequireFromString("5.80"),
	}
	seeded := NewStorage(env).Read()
	assert.Len(t, seeded.Transactions.Expenses(), 7)
	assert.Len(t, seeded.Transactions.Income(), 6)
	assert.Len(t, seeded.Investments.List(), 2)

	env.SeedMockData = false
	empty := NewStorage(env).Read()
	assert.Empty(t, empty.Transactions.Expenses())
	assert.True(t, empty.Settings.ExchangeRate().Equal(decimal.RequireFromString("5.80")))
}

func TestWriter_CommitPublishesState(t *testing.T) {
	s := newTestStorage()

	writer, err := s.Write(context.Background())
	require.NoError(t, err)
	result, err := writer.Transaction.UpsertExpense(expenseDraft())
	require.NoError(t, err)

	assert.Empty(t, s.Read().Transactions.Expenses(), "uncommitted changes are invisible")
	require.NoError(t, writer.Commit())

	reader := s.Read()
	require.NotNil(t, reader.Transactions.FindExpense(result.ID))
	assert.Equal(t, "Aluguel Apto", reader.Transactions.FindExpense(result.ID).Description)
}

func TestWriter_RollbackDiscards(t *testing.T) {
	s := newTestStorage()

	writer, err := s.Write(context.Background())
	require.NoError(t, err)
	_, err = writer.Investment.Create("Ebinex", ledger.CurrencyForeign)
	require.NoError(t, err)
	require.NoError(t, writer.Settings.SetExchangeRate("6"))
	require.NoError(t, writer.Rollback())

	reader := s.Read()
	assert.Empty(t, reader.Investments.List())
	assert.True(t, reader.Settings.ExchangeRate().Equal(decimal.RequireFromString("5.80")))
}

func TestWriter_CloseTwice(t *testing.T) {
	s := newTestStorage()

	writer, err := s.Write(context.Background())
	require.NoError(t, err)
	require.NoError(t, writer.Commit())

	assert.ErrorIs(t, writer.Commit(), ErrWriterClosed)
	assert.ErrorIs(t, writer.Rollback(), ErrWriterClosed)
}

func TestWrite_IsExclusive(t *testing.T) {
	s := newTestStorage()

	first, err := s.Write(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = s.Write(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, first.Rollback())
	second, err := s.Write(context.Background())
	require.NoError(t, err)
	assert.NoError(t, second.Rollback())
}

func TestRead_SnapshotIsIsolated(t *testing.T) {
	s := newTestStorage()
	writer, err := s.Write(context.Background())
	require.NoError(t, err)
	_, err = writer.Transaction.UpsertExpense(expenseDraft())
	require.NoError(t, err)
	require.NoError(t, writer.Commit())

	snapshot := s.Read()
	expenses := snapshot.Transactions.Expenses()
	expenses[0].Description = "changed"

	assert.Equal(t, "Aluguel Apto", s.Read().Transactions.Expenses()[0].Description)
	assert.Equal(t, "Aluguel Apto", snapshot.Transactions.Expenses()[0].Description)
}

func TestWriter_InvestmentAndDeleteFlow(t *testing.T) {
	s := newTestStorage()
	writer, err := s.Write(context.Background())
	require.NoError(t, err)

	account, err := writer.Investment.Create("IQ Option", ledger.CurrencyHome)
	require.NoError(t, err)
	updated, err := writer.Investment.UpdateValue(account.ID, "120.5")
	require.NoError(t, err)
	assert.True(t, updated)
	assert.True(t, writer.Investment.FindByID(account.ID).Value.Equal(decimal.RequireFromString("120.5")))

	result, err := writer.Transaction.UpsertExpense(expenseDraft())
	require.NoError(t, err)
	assert.True(t, writer.Transaction.Delete(ledger.KindExpense, result.ID))
	assert.False(t, writer.Transaction.Delete(ledger.KindExpense, result.ID))
	require.NoError(t, writer.Commit())

	reader := s.Read()
	assert.Empty(t, reader.Transactions.Expenses())
	assert.Len(t, reader.Investments.List(), 1)
	assert.Contains(t, reader.Transactions.Categories(), "Aluguel")
}
