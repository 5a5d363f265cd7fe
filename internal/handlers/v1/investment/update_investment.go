package investment

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	v1 "github.com/weverton790458597/DashBoard/internal/handlers/v1"
	"github.com/weverton790458597/DashBoard/internal/operator/actions"
)

type UpdateValueBody struct {
	Value string `json:"value" required:"true" doc:"New balance in the account currency"`
}

type UpdateValueInput struct {
	ID   string `path:"id" format:"uuid" doc:"Account UUID"`
	Body UpdateValueBody
}

// UpdateValueResponse mirrors DeleteInvestmentResponse: an unknown id is
// reported as updated=false rather than an error.
type UpdateValueResponse struct {
	Updated  bool   `json:"updated" doc:"False when no account had the id"`
	Value    string `json:"value,omitempty" doc:"Stored balance in the account currency"`
	Currency string `json:"currency,omitempty" enum:"BRL,USD" doc:"Account currency"`
}

type UpdateValueOutput struct {
	Body UpdateValueResponse
}

type DeleteInvestmentInput struct {
	ID string `path:"id" format:"uuid" doc:"Account UUID"`
}

type DeleteInvestmentResponse struct {
	Removed bool `json:"removed" doc:"False when no account had the id"`
}

type DeleteInvestmentOutput struct {
	Body DeleteInvestmentResponse
}

// ModifyInvestmentHandler handles value updates and deletion of accounts.
type ModifyInvestmentHandler struct {
	Operator v1.ActionProcessor
}

func NewModifyInvestmentHandler(op v1.ActionProcessor) *ModifyInvestmentHandler {
	return &ModifyInvestmentHandler{Operator: op}
}

func (h *ModifyInvestmentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-investment-value",
		Method:      http.MethodPut,
		Path:        "/v1/investment/{id}/value",
		Summary:     "Set an account balance",
		Tags:        []string{"Investments"},
	}, h.handleUpdate)

	huma.Register(api, huma.Operation{
		OperationID: "delete-investment",
		Method:      http.MethodDelete,
		Path:        "/v1/investment/{id}",
		Summary:     "Delete an investment account",
		Tags:        []string{"Investments"},
	}, h.handleDelete)
}

func (h *ModifyInvestmentHandler) handleUpdate(ctx context.Context, input *UpdateValueInput) (*UpdateValueOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	action := &actions.UpdateInvestmentValue{ID: id, Value: input.Body.Value}
	if err := v1.Process(ctx, h.Operator, action, "failed to update investment"); err != nil {
		return nil, err
	}
	body := UpdateValueResponse{Updated: action.Updated}
	if action.Account != nil {
		body.Value = action.Account.Value.String()
		body.Currency = string(action.Account.Currency)
	}
	return &UpdateValueOutput{Body: body}, nil
}

func (h *ModifyInvestmentHandler) handleDelete(ctx context.Context, input *DeleteInvestmentInput) (*DeleteInvestmentOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	action := &actions.DeleteInvestment{ID: id}
	if err := v1.Process(ctx, h.Operator, action, "failed to delete investment"); err != nil {
		return nil, err
	}
	return &DeleteInvestmentOutput{Body: DeleteInvestmentResponse{Removed: action.Removed}}, nil
}
