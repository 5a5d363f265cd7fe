package investment

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/weverton790458597/DashBoard/internal/handlers/v1"
	"github.com/weverton790458597/DashBoard/internal/ledger"
	"github.com/weverton790458597/DashBoard/internal/operator/actions"
)

// CreateInvestmentBody is the request body for adding an investment account.
type CreateInvestmentBody struct {
	Name     string `json:"name" required:"true" minLength:"1" doc:"Broker or account name"`
	Currency string `json:"currency" required:"true" enum:"BRL,USD" doc:"Account currency"`
}

type CreateInvestmentInput struct {
	Body CreateInvestmentBody
}

type CreateInvestmentResponse struct {
	ID string `json:"id" doc:"UUID of the new account"`
}

type CreateInvestmentOutput struct {
	Body CreateInvestmentResponse
}

// CreateInvestmentHandler handles POST /v1/investment.
type CreateInvestmentHandler struct {
	Operator v1.ActionProcessor
}

func NewCreateInvestmentHandler(op v1.ActionProcessor) *CreateInvestmentHandler {
	return &CreateInvestmentHandler{Operator: op}
}

func (h *CreateInvestmentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-investment",
		Method:        http.MethodPost,
		Path:          "/v1/investment",
		Summary:       "Add an investment account",
		Description:   "Adds an account with a zero balance.",
		Tags:          []string{"Investments"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateInvestmentHandler) handle(ctx context.Context, input *CreateInvestmentInput) (*CreateInvestmentOutput, error) {
	currency, err := ledger.ParseCurrency(input.Body.Currency)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid currency", err)
	}

	action := &actions.CreateInvestment{AccountName: input.Body.Name, Currency: currency}
	if err := v1.Process(ctx, h.Operator, action, "failed to create investment"); err != nil {
		return nil, err
	}
	return &CreateInvestmentOutput{Body: CreateInvestmentResponse{ID: action.Account.ID.String()}}, nil
}
