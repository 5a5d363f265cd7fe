package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState() State {
	return NewState(decimal.Zero, decimal.NewFromInt(5))
}

func validExpenseDraft() ExpenseDraft {
	return ExpenseDraft{
		Date:        NewDate(2025, time.March, 4),
		Description: "Conta de Luz",
		Value:       "350.20",
		Category:    "Energia",
	}
}

// -- UpsertExpense tests --

func TestUpsertExpense_CreatesWithDefaults(t *testing.T) {
	s := newTestState()

	next, result, err := s.UpsertExpense(validExpenseDraft())

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.False(t, result.VocabularyAdded)
	assert.NotEqual(t, uuid.Nil, result.ID)
	require.Len(t, next.Expenses, 1)
	assert.Equal(t, result.ID, next.Expenses[0].ID)
	assert.Equal(t, StatusPaid, next.Expenses[0].Status)
	assert.True(t, next.Expenses[0].Value.Equal(decimal.RequireFromString("350.20")))
	assert.Empty(t, s.Expenses, "receiver is untouched")
}

func TestUpsertExpense_TwoCreatesGetDistinctIDs(t *testing.T) {
	s := newTestState()

	s, first, err := s.UpsertExpense(validExpenseDraft())
	require.NoError(t, err)
	draft := validExpenseDraft()
	draft.Description = "Mercado"
	s, second, err := s.UpsertExpense(draft)
	require.NoError(t, err)

	assert.Len(t, s.Expenses, 2)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestUpsertExpense_ExistingIDReplacesInPlace(t *testing.T) {
	s, created, err := newTestState().UpsertExpense(validExpenseDraft())
	require.NoError(t, err)

	draft := validExpenseDraft()
	draft.ID = created.ID
	draft.Value = "99"
	draft.Status = StatusPending
	next, result, err := s.UpsertExpense(draft)

	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, created.ID, result.ID)
	require.Len(t, next.Expenses, 1)
	assert.True(t, next.Expenses[0].Value.Equal(decimal.NewFromInt(99)))
	assert.Equal(t, StatusPending, next.Expenses[0].Status)
	assert.True(t, s.Expenses[0].Value.Equal(decimal.RequireFromString("350.20")), "previous state keeps the old record")
}

func TestUpsertExpense_UnknownIDAppendsWithFreshID(t *testing.T) {
	draft := validExpenseDraft()
	draft.ID = uuid.Must(uuid.NewV4())

	next, result, err := newTestState().UpsertExpense(draft)

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.NotEqual(t, draft.ID, result.ID)
	assert.Len(t, next.Expenses, 1)
}

func TestUpsertExpense_GrowsVocabularyOnce(t *testing.T) {
	s := newTestState()
	before := s.ExpenseCategories.Len()

	draft := validExpenseDraft()
	draft.Category = "Pets"
	s, result, err := s.UpsertExpense(draft)
	require.NoError(t, err)
	assert.True(t, result.VocabularyAdded)
	assert.Equal(t, before+1, s.ExpenseCategories.Len())
	assert.True(t, s.ExpenseCategories.Contains("Pets"))

	s, result, err = s.UpsertExpense(draft)
	require.NoError(t, err)
	assert.False(t, result.VocabularyAdded)
	assert.Equal(t, before+1, s.ExpenseCategories.Len())
}

func TestUpsertExpense_ValidationRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *ExpenseDraft)
		wantErr error
	}{
		{"empty description", func(d *ExpenseDraft) { d.Description = "" }, ErrEmptyDescription},
		{"blank description", func(d *ExpenseDraft) { d.Description = "   " }, ErrEmptyDescription},
		{"non numeric value", func(d *ExpenseDraft) { d.Value = "abc" }, ErrInvalidValue},
		{"empty value", func(d *ExpenseDraft) { d.Value = "" }, ErrInvalidValue},
		{"NaN value", func(d *ExpenseDraft) { d.Value = "NaN" }, ErrInvalidValue},
		{"huge exponent", func(d *ExpenseDraft) { d.Value = "1e50000000" }, ErrInvalidValue},
		{"tiny exponent", func(d *ExpenseDraft) { d.Value = "1e-50000000" }, ErrInvalidValue},
		{"too many digits", func(d *ExpenseDraft) { d.Value = "12345678901234567890" }, ErrInvalidValue},
		{"too many decimals", func(d *ExpenseDraft) { d.Value = "0.123456789" }, ErrInvalidValue},
		{"empty category", func(d *ExpenseDraft) { d.Category = "" }, ErrEmptyCategory},
		{"zero date", func(d *ExpenseDraft) { d.Date = Date{} }, ErrInvalidDate},
		{"unknown status", func(d *ExpenseDraft) { d.Status = "Maybe" }, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState()
			draft := validExpenseDraft()
			draft.Category = "Nova"
			tt.mutate(&draft)

			next, _, err := s.UpsertExpense(draft)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, next.Expenses)
			assert.False(t, next.ExpenseCategories.Contains("Nova"))
		})
	}
}

func TestUpsertExpense_IDGenerationError(t *testing.T) {
	original := newID
	t.Cleanup(func() { newID = original })
	newID = func() (uuid.UUID, error) { return uuid.Nil, errors.New("entropy exhausted") }

	next, _, err := newTestState().UpsertExpense(validExpenseDraft())

	assert.EqualError(t, err, "entropy exhausted")
	assert.Empty(t, next.Expenses)
}

// -- UpsertIncome tests --

func TestUpsertIncome_CreatesAndGrowsSources(t *testing.T) {
	next, result, err := newTestState().UpsertIncome(IncomeDraft{
		Date:        NewDate(2025, time.March, 1),
		Description: "Freela",
		Value:       "1200",
		Source:      "Upwork",
	})

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.True(t, result.VocabularyAdded)
	require.Len(t, next.Income, 1)
	assert.Equal(t, IncomeVariable, next.Income[0].Type)
	assert.Equal(t, "Upwork", next.Income[0].Source)
}

func TestUpsertIncome_ValidationRejects(t *testing.T) {
	s := newTestState()

	_, _, err := s.UpsertIncome(IncomeDraft{Date: NewDate(2025, 1, 1), Description: "x", Value: "10"})
	assert.ErrorIs(t, err, ErrEmptySource)

	_, _, err = s.UpsertIncome(IncomeDraft{Date: NewDate(2025, 1, 1), Description: "x", Value: "10", Source: "YouTube", Type: "Renda Mágica"})
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestUpsertIncome_ExistingIDReplacesInPlace(t *testing.T) {
	draft := IncomeDraft{Date: NewDate(2025, 1, 1), Description: "AdSense", Value: "10", Source: "YouTube", Type: IncomePassive}
	s, created, err := newTestState().UpsertIncome(draft)
	require.NoError(t, err)

	draft.ID = created.ID
	draft.Value = "20"
	s, result, err := s.UpsertIncome(draft)

	require.NoError(t, err)
	assert.False(t, result.Created)
	require.Len(t, s.Income, 1)
	assert.True(t, s.Income[0].Value.Equal(decimal.NewFromInt(20)))
}

// -- DeleteTransaction tests --

func TestDeleteTransaction_MissingIDIsNoop(t *testing.T) {
	s := newTestState()
	for i := 0; i < 5; i++ {
		var err error
		s, _, err = s.UpsertExpense(validExpenseDraft())
		require.NoError(t, err)
	}

	next, removed := s.DeleteTransaction(KindExpense, uuid.Must(uuid.NewV4()))

	assert.False(t, removed)
	assert.Len(t, next.Expenses, 5)
}

func TestDeleteTransaction_RemovesOnlyFromKind(t *testing.T) {
	s, expense, err := newTestState().UpsertExpense(validExpenseDraft())
	require.NoError(t, err)
	s, _, err = s.UpsertIncome(IncomeDraft{Date: NewDate(2025, 1, 1), Description: "x", Value: "1", Source: "YouTube"})
	require.NoError(t, err)

	next, removed := s.DeleteTransaction(KindIncome, expense.ID)
	assert.False(t, removed)
	assert.Len(t, next.Expenses, 1)

	next, removed = s.DeleteTransaction(KindExpense, expense.ID)
	assert.True(t, removed)
	assert.Empty(t, next.Expenses)
	assert.Len(t, next.Income, 1)
	assert.Len(t, s.Expenses, 1, "receiver is untouched")
}

// -- investment account tests --

func TestAddInvestmentAccount(t *testing.T) {
	next, account, err := newTestState().AddInvestmentAccount("  Ebinex ", CurrencyForeign)

	require.NoError(t, err)
	assert.Equal(t, "Ebinex", account.Name)
	assert.True(t, account.Value.IsZero())
	assert.Equal(t, []InvestmentAccount{account}, next.Investments)
}

func TestAddInvestmentAccount_Rejects(t *testing.T) {
	_, _, err := newTestState().AddInvestmentAccount("   ", CurrencyHome)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, _, err = newTestState().AddInvestmentAccount("Binance", "EUR")
	assert.ErrorIs(t, err, ErrInvalidCurrency)
}

func TestUpdateInvestmentValue(t *testing.T) {
	s, account, err := newTestState().AddInvestmentAccount("IQ Option", CurrencyHome)
	require.NoError(t, err)

	next, updated, err := s.UpdateInvestmentValue(account.ID, "-250.75")
	require.NoError(t, err)
	assert.True(t, updated)
	assert.True(t, next.Investments[0].Value.Equal(decimal.RequireFromString("-250.75")))
	assert.True(t, s.Investments[0].Value.IsZero(), "receiver is untouched")

	_, updated, err = s.UpdateInvestmentValue(uuid.Must(uuid.NewV4()), "10")
	assert.NoError(t, err)
	assert.False(t, updated)

	_, _, err = s.UpdateInvestmentValue(account.ID, "ten")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, _, err = s.UpdateInvestmentValue(account.ID, "1e50000000")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestParseValue_Bounds(t *testing.T) {
	for _, raw := range []string{"0", "-250.75", "999999999999999.99", "0.00000001", "1e3"} {
		_, err := ParseValue(raw)
		assert.NoError(t, err, raw)
	}
	for _, raw := range []string{"1e15", "-1e15", "1e50000000", "1e-9", "1.000000000"} {
		_, err := ParseValue(raw)
		assert.ErrorIs(t, err, ErrInvalidValue, raw)
	}
}

func TestDeleteInvestmentAccount(t *testing.T) {
	s, account, err := newTestState().AddInvestmentAccount("IQ Option", CurrencyHome)
	require.NoError(t, err)

	next, removed := s.DeleteInvestmentAccount(uuid.Must(uuid.NewV4()))
	assert.False(t, removed)
	assert.Len(t, next.Investments, 1)

	next, removed = s.DeleteInvestmentAccount(account.ID)
	assert.True(t, removed)
	assert.Empty(t, next.Investments)
}

// -- settings tests --

func TestSetExchangeRate(t *testing.T) {
	s := newTestState()

	next, err := s.SetExchangeRate("6.10")
	require.NoError(t, err)
	assert.True(t, next.ExchangeRate.Equal(decimal.RequireFromString("6.10")))

	for _, raw := range []string{"0", "-1", "", "abc"} {
		unchanged, err := s.SetExchangeRate(raw)
		assert.ErrorIs(t, err, ErrValidation, raw)
		assert.True(t, unchanged.ExchangeRate.Equal(decimal.NewFromInt(5)), raw)
	}
}

func TestSetInitialBalance(t *testing.T) {
	next, err := newTestState().SetInitialBalance("-300")
	require.NoError(t, err)
	assert.True(t, next.InitialBalance.Equal(decimal.NewFromInt(-300)))

	_, err = newTestState().SetInitialBalance("lots")
	assert.ErrorIs(t, err, ErrInvalidValue)
}
