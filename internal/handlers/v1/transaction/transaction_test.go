package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/weverton790458597/DashBoard/internal/ledger"
	"github.com/weverton790458597/DashBoard/internal/operator/actions"
	"github.com/weverton790458597/DashBoard/internal/service"
)

var fixedNow = time.Date(2025, time.October, 18, 12, 0, 0, 0, time.UTC)

type mockOperator struct {
	mock.Mock
}

func (m *mockOperator) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type mockVocabularyReader struct {
	mock.Mock
}

func (m *mockVocabularyReader) Vocabulary(ctx context.Context) (*service.Vocabulary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Vocabulary), args.Error(1)
}

func newTestAPI(t *testing.T, op *mockOperator, vocab *mockVocabularyReader) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewUpsertHandler(op, func() time.Time { return fixedNow }).Register(api)
	NewDeleteTransactionHandler(op).Register(api)
	NewVocabularyHandler(vocab).Register(api)
	return api
}

// -- parse unit tests --

func TestParseUpsertExpenseInput_DefaultsDateToToday(t *testing.T) {
	draft, err := parseUpsertExpenseInput(&UpsertExpenseInput{Body: UpsertExpenseBody{
		Description: "Mercado",
		Value:       "350.20",
		Category:    "Alimentação",
	}}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, draft.ID)
	assert.Equal(t, ledger.NewDate(2025, time.October, 18), draft.Date)
	assert.Equal(t, "350.20", draft.Value)
	assert.Equal(t, ledger.ExpenseStatus(""), draft.Status)
}

func TestParseUpsertIncomeInput_ExplicitFields(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	draft, err := parseUpsertIncomeInput(&UpsertIncomeInput{Body: UpsertIncomeBody{
		ID:          id.String(),
		Date:        "2025-09-05",
		Description: "Salário",
		Value:       "3200",
		Source:      "Trabalho",
		Type:        "Renda Ativa/Serviço",
	}}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, id, draft.ID)
	assert.Equal(t, ledger.NewDate(2025, time.September, 5), draft.Date)
	assert.Equal(t, ledger.IncomeActive, draft.Type)
}

func TestParseCommon_InvalidDate(t *testing.T) {
	_, _, err := parseCommon("", "05/09/2025", fixedNow)
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_UpsertExpense_Created(t *testing.T) {
	newID := uuid.Must(uuid.NewV4())
	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.UpsertExpense) bool {
		return a.Draft.Description == "Mercado" &&
			a.Draft.Category == "Alimentação" &&
			a.Draft.Date == ledger.NewDate(2025, time.October, 18)
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.UpsertExpense).Result = ledger.UpsertResult{ID: newID, Created: true}
	}).Return(nil)

	resp := newTestAPI(t, op, nil).Put("/v1/transaction/expense", UpsertExpenseBody{
		Description: "Mercado",
		Value:       "350.20",
		Category:    "Alimentação",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body UpsertResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, newID.String(), body.ID)
	assert.True(t, body.Created)
	op.AssertExpectations(t)
}

func TestHTTP_UpsertIncome_Replaced(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.UpsertIncome) bool {
		return a.Draft.ID == id && a.Draft.Source == "Novo Cliente"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.UpsertIncome).Result = ledger.UpsertResult{ID: id, VocabularyAdded: true}
	}).Return(nil)

	resp := newTestAPI(t, op, nil).Put("/v1/transaction/income", UpsertIncomeBody{
		ID:          id.String(),
		Date:        "2025-10-01",
		Description: "Projeto",
		Value:       "800",
		Source:      "Novo Cliente",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body UpsertResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Created)
	assert.True(t, body.VocabularyAdded)
	op.AssertExpectations(t)
}

func TestHTTP_UpsertExpense_ValidationError(t *testing.T) {
	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.Anything).
		Return(fmt.Errorf("upsert expense: %w", ledger.ErrInvalidValue))

	resp := newTestAPI(t, op, nil).Put("/v1/transaction/expense", UpsertExpenseBody{
		Description: "Mercado",
		Value:       "abc",
		Category:    "Alimentação",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_UpsertExpense_OperatorError(t *testing.T) {
	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.Anything).Return(errors.New("queue closed"))

	resp := newTestAPI(t, op, nil).Put("/v1/transaction/expense", UpsertExpenseBody{
		Description: "Mercado",
		Value:       "10",
		Category:    "Alimentação",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_UpsertExpense_MissingDescription(t *testing.T) {
	op := new(mockOperator)

	resp := newTestAPI(t, op, nil).Put("/v1/transaction/expense", map[string]any{
		"value":    "10",
		"category": "Alimentação",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	op.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestHTTP_UpsertExpense_InvalidStatus(t *testing.T) {
	op := new(mockOperator)

	resp := newTestAPI(t, op, nil).Put("/v1/transaction/expense", UpsertExpenseBody{
		Description: "Mercado",
		Value:       "10",
		Category:    "Alimentação",
		Status:      "Atrasado",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	op.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestHTTP_DeleteTransaction(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.DeleteTransaction) bool {
		return a.Kind == ledger.KindIncome && a.ID == id
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.DeleteTransaction).Removed = true
	}).Return(nil)

	resp := newTestAPI(t, op, nil).Delete("/v1/transaction/income/" + id.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DeleteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Removed)
	op.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_UnknownKind(t *testing.T) {
	op := new(mockOperator)

	resp := newTestAPI(t, op, nil).Delete("/v1/transaction/transfer/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	op.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestHTTP_Vocabulary(t *testing.T) {
	vocab := new(mockVocabularyReader)
	vocab.On("Vocabulary", mock.Anything).Return(&service.Vocabulary{
		Categories:  []string{"Alimentação", "Transporte"},
		IncomeTypes: []string{"Renda Variável"},
	}, nil)

	resp := newTestAPI(t, new(mockOperator), vocab).Get("/v1/transaction/vocabulary")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body VocabularyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"Alimentação", "Transporte"}, body.Categories)
	assert.Equal(t, []string{}, body.Sources)
	vocab.AssertExpectations(t)
}

func TestHTTP_Vocabulary_Error(t *testing.T) {
	vocab := new(mockVocabularyReader)
	vocab.On("Vocabulary", mock.Anything).Return(nil, context.Canceled)

	resp := newTestAPI(t, new(mockOperator), vocab).Get("/v1/transaction/vocabulary")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

type mockTransactionGetter struct {
	mock.Mock
}

func (m *mockTransactionGetter) GetExpense(ctx context.Context, id uuid.UUID) (*ledger.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Expense), args.Error(1)
}

func (m *mockTransactionGetter) GetIncome(ctx context.Context, id uuid.UUID) (*ledger.Income, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Income), args.Error(1)
}

func newGetTestAPI(t *testing.T, svc *mockTransactionGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_GetTransaction_Expense(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockTransactionGetter)
	svc.On("GetExpense", mock.Anything, id).Return(&ledger.Expense{
		Entry:    ledger.Entry{ID: id, Date: ledger.NewDate(2025, time.October, 5), Description: "Aluguel Apto", Value: decimal.RequireFromString("1500")},
		Category: "Aluguel",
		Status:   ledger.StatusPending,
	}, nil)

	resp := newGetTestAPI(t, svc).Get("/v1/transaction/expense/" + id.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body GetTransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "expense", body.Kind)
	require.NotNil(t, body.Expense)
	assert.Nil(t, body.Income)
	assert.Equal(t, "2025-10-05", body.Expense.Date)
	assert.Equal(t, "1500", body.Expense.Value)
	assert.Equal(t, "Pendente", body.Expense.Status)
	svc.AssertExpectations(t)
}

func TestHTTP_GetTransaction_IncomeNotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockTransactionGetter)
	svc.On("GetIncome", mock.Anything, id).Return(nil, nil)

	resp := newGetTestAPI(t, svc).Get("/v1/transaction/income/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
	svc.AssertNotCalled(t, "GetExpense", mock.Anything, mock.Anything)
}

func TestHTTP_GetTransaction_ServiceError(t *testing.T) {
	svc := new(mockTransactionGetter)
	svc.On("GetExpense", mock.Anything, mock.Anything).Return(nil, context.Canceled)

	resp := newGetTestAPI(t, svc).Get("/v1/transaction/expense/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
