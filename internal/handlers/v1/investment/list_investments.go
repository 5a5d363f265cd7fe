package investment

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/weverton790458597/DashBoard/internal/service"
)

type ListInvestmentsResponse struct {
	Investments []Investment `json:"investments" doc:"Investment accounts in insertion order"`
}

type ListInvestmentsOutput struct {
	Body ListInvestmentsResponse
}

type investmentLister interface {
	ListInvestments(ctx context.Context) ([]service.Investment, error)
}

// ListInvestmentsHandler handles GET /v1/investment.
type ListInvestmentsHandler struct {
	InvestmentService investmentLister
}

func NewListInvestmentsHandler(svc investmentLister) *ListInvestmentsHandler {
	return &ListInvestmentsHandler{InvestmentService: svc}
}

func (h *ListInvestmentsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-investments",
		Method:      http.MethodGet,
		Path:        "/v1/investment",
		Summary:     "List investment accounts",
		Description: "Returns every investment account with its value converted at the current exchange rate.",
		Tags:        []string{"Investments"},
	}, h.handle)
}

func (h *ListInvestmentsHandler) handle(ctx context.Context, _ *struct{}) (*ListInvestmentsOutput, error) {
	invs, err := h.InvestmentService.ListInvestments(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list investments", err)
	}
	return &ListInvestmentsOutput{Body: ListInvestmentsResponse{Investments: NewInvestments(invs)}}, nil
}
