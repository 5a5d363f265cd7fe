package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	v1 "github.com/weverton790458597/DashBoard/internal/handlers/v1"
	"github.com/weverton790458597/DashBoard/internal/ledger"
	"github.com/weverton790458597/DashBoard/internal/operator/actions"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	Kind string `path:"kind" enum:"expense,income" doc:"Collection to delete from"`
	ID   string `path:"id" format:"uuid" doc:"Transaction UUID"`
}

// DeleteResponse reports whether anything was removed.
type DeleteResponse struct {
	Removed bool `json:"removed" doc:"False when no transaction had the id"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Body DeleteResponse
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{kind}/{id}.
type DeleteTransactionHandler struct {
	Operator v1.ActionProcessor
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(op v1.ActionProcessor) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{Operator: op}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/v1/transaction/{kind}/{id}",
		Summary:     "Delete a transaction",
		Description: "Removes the expense or income entry with the given id. Unknown ids are not an error.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	kind, err := ledger.ParseKind(input.Kind)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid kind", err)
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	action := &actions.DeleteTransaction{Kind: kind, ID: id}
	if err := v1.Process(ctx, h.Operator, action, "failed to delete transaction"); err != nil {
		return nil, err
	}
	return &DeleteTransactionOutput{Body: DeleteResponse{Removed: action.Removed}}, nil
}
