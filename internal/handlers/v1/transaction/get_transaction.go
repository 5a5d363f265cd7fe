package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/weverton790458597/DashBoard/internal/ledger"
)

// GetTransactionInput is the Huma input for loading one transaction.
type GetTransactionInput struct {
	Kind string `path:"kind" enum:"expense,income" doc:"Collection to read from"`
	ID   string `path:"id" format:"uuid" doc:"Transaction UUID"`
}

// GetTransactionResponse carries exactly one of Expense or Income.
type GetTransactionResponse struct {
	Kind    string   `json:"kind" doc:"expense or income"`
	Expense *Expense `json:"expense,omitempty"`
	Income  *Income  `json:"income,omitempty"`
}

type GetTransactionOutput struct {
	Body GetTransactionResponse
}

type transactionGetter interface {
	GetExpense(ctx context.Context, id uuid.UUID) (*ledger.Expense, error)
	GetIncome(ctx context.Context, id uuid.UUID) (*ledger.Income, error)
}

// GetTransactionHandler handles GET /v1/transaction/{kind}/{id}, the load
// step before editing a transaction through the upsert endpoints.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/{kind}/{id}",
		Summary:     "Get a transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	kind, err := ledger.ParseKind(input.Kind)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid kind", err)
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	body := GetTransactionResponse{Kind: string(kind)}
	switch kind {
	case ledger.KindExpense:
		expense, err := h.TransactionService.GetExpense(ctx, id)
		if err != nil {
			return nil, huma.NewError(http.StatusInternalServerError, "failed to load expense", err)
		}
		if expense == nil {
			return nil, huma.Error404NotFound("expense not found")
		}
		model := NewExpense(*expense)
		body.Expense = &model
	case ledger.KindIncome:
		income, err := h.TransactionService.GetIncome(ctx, id)
		if err != nil {
			return nil, huma.NewError(http.StatusInternalServerError, "failed to load income", err)
		}
		if income == nil {
			return nil, huma.Error404NotFound("income not found")
		}
		model := NewIncome(*income)
		body.Income = &model
	}
	return &GetTransactionOutput{Body: body}, nil
}
