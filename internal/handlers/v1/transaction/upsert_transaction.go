package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	v1 "github.com/weverton790458597/DashBoard/internal/handlers/v1"
	"github.com/weverton790458597/DashBoard/internal/ledger"
	"github.com/weverton790458597/DashBoard/internal/operator/actions"
)

// UpsertExpenseBody is the request body for creating or replacing an expense.
type UpsertExpenseBody struct {
	ID          string `json:"id,omitempty" format:"uuid" doc:"UUID of the expense to replace, omit to create"`
	Date        string `json:"date,omitempty" format:"date" doc:"YYYY-MM-DD, defaults to today"`
	Description string `json:"description" required:"true" minLength:"1" doc:"Description"`
	Value       string `json:"value" required:"true" doc:"Decimal value (e.g. '350.20')"`
	Category    string `json:"category" required:"true" minLength:"1" doc:"Expense category, new ones are added to the vocabulary"`
	Status      string `json:"status,omitempty" enum:"Pago,Pendente" doc:"Defaults to Pago"`
}

// UpsertExpenseInput is the Huma input for upserting an expense.
type UpsertExpenseInput struct {
	Body UpsertExpenseBody
}

// UpsertIncomeBody is the request body for creating or replacing income.
type UpsertIncomeBody struct {
	ID          string `json:"id,omitempty" format:"uuid" doc:"UUID of the income to replace, omit to create"`
	Date        string `json:"date,omitempty" format:"date" doc:"YYYY-MM-DD, defaults to today"`
	Description string `json:"description" required:"true" minLength:"1" doc:"Description"`
	Value       string `json:"value" required:"true" doc:"Decimal value (e.g. '3200')"`
	Source      string `json:"source" required:"true" minLength:"1" doc:"Income source, new ones are added to the vocabulary"`
	Type        string `json:"type,omitempty" enum:"Renda Variável,Renda Passiva,Renda Ativa/Serviço" doc:"Defaults to Renda Variável"`
}

// UpsertIncomeInput is the Huma input for upserting income.
type UpsertIncomeInput struct {
	Body UpsertIncomeBody
}

// UpsertHandler handles PUT /v1/transaction/expense and /v1/transaction/income.
type UpsertHandler struct {
	Operator v1.ActionProcessor
	Now      func() time.Time
}

// NewUpsertHandler creates a new UpsertHandler.
func NewUpsertHandler(op v1.ActionProcessor, now func() time.Time) *UpsertHandler {
	if now == nil {
		now = time.Now
	}
	return &UpsertHandler{Operator: op, Now: now}
}

// Register registers both upsert endpoints with the Huma API.
func (h *UpsertHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "upsert-expense",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/expense",
		Summary:     "Create or replace an expense",
		Description: "Replaces the expense with the given id, or creates a new one when the id is absent or unknown.",
		Tags:        []string{"Transactions"},
	}, h.handleExpense)

	huma.Register(api, huma.Operation{
		OperationID: "upsert-income",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/income",
		Summary:     "Create or replace income",
		Description: "Replaces the income entry with the given id, or creates a new one when the id is absent or unknown.",
		Tags:        []string{"Transactions"},
	}, h.handleIncome)
}

// parseCommon parses the optional id and date shared by both bodies.
func parseCommon(rawID, rawDate string, now time.Time) (uuid.UUID, ledger.Date, error) {
	id := uuid.Nil
	if rawID != "" {
		var err error
		id, err = uuid.FromString(rawID)
		if err != nil {
			return uuid.Nil, ledger.Date{}, huma.NewError(http.StatusBadRequest, "invalid id", err)
		}
	}

	date := ledger.DateOf(now)
	if rawDate != "" {
		var err error
		date, err = ledger.ParseDate(rawDate)
		if err != nil {
			return uuid.Nil, ledger.Date{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}
	return id, date, nil
}

func parseUpsertExpenseInput(input *UpsertExpenseInput, now time.Time) (ledger.ExpenseDraft, error) {
	id, date, err := parseCommon(input.Body.ID, input.Body.Date, now)
	if err != nil {
		return ledger.ExpenseDraft{}, err
	}
	return ledger.ExpenseDraft{
		ID:          id,
		Date:        date,
		Description: input.Body.Description,
		Value:       input.Body.Value,
		Category:    input.Body.Category,
		Status:      ledger.ExpenseStatus(input.Body.Status),
	}, nil
}

func parseUpsertIncomeInput(input *UpsertIncomeInput, now time.Time) (ledger.IncomeDraft, error) {
	id, date, err := parseCommon(input.Body.ID, input.Body.Date, now)
	if err != nil {
		return ledger.IncomeDraft{}, err
	}
	return ledger.IncomeDraft{
		ID:          id,
		Date:        date,
		Description: input.Body.Description,
		Value:       input.Body.Value,
		Source:      input.Body.Source,
		Type:        ledger.IncomeType(input.Body.Type),
	}, nil
}

func (h *UpsertHandler) handleExpense(ctx context.Context, input *UpsertExpenseInput) (*UpsertOutput, error) {
	draft, err := parseUpsertExpenseInput(input, h.Now())
	if err != nil {
		return nil, err
	}

	action := &actions.UpsertExpense{Draft: draft}
	if err := v1.Process(ctx, h.Operator, action, "failed to save expense"); err != nil {
		return nil, err
	}
	return newUpsertOutput(action.Result), nil
}

func (h *UpsertHandler) handleIncome(ctx context.Context, input *UpsertIncomeInput) (*UpsertOutput, error) {
	draft, err := parseUpsertIncomeInput(input, h.Now())
	if err != nil {
		return nil, err
	}

	action := &actions.UpsertIncome{Draft: draft}
	if err := v1.Process(ctx, h.Operator, action, "failed to save income"); err != nil {
		return nil, err
	}
	return newUpsertOutput(action.Result), nil
}
