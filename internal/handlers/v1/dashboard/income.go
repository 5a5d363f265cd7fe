package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/weverton790458597/DashBoard/internal/handlers/v1"
	"github.com/weverton790458597/DashBoard/internal/handlers/v1/transaction"
	"github.com/weverton790458597/DashBoard/internal/ledger"
	"github.com/weverton790458597/DashBoard/internal/service"
)

type IncomeInput struct {
	v1.FilterQuery
}

type IncomeResponse struct {
	Filter        Filter               `json:"filter"`
	Income        []transaction.Income `json:"income"`
	Total         string               `json:"total"`
	BySource      []NamedValue         `json:"bySource" doc:"Performance per source in first-seen order"`
	TypeEvolution []MonthBreakdown     `json:"typeEvolution" doc:"Income per month split by income type"`
	Types         []string             `json:"types"`
}

type IncomeOutput struct {
	Body IncomeResponse
}

type incomeAnalyzer interface {
	IncomeAnalysis(ctx context.Context, filter ledger.Filter) (*service.IncomeAnalysis, error)
}

// IncomeHandler handles GET /v1/dashboard/income.
type IncomeHandler struct {
	DashboardService incomeAnalyzer
}

func NewIncomeHandler(svc incomeAnalyzer) *IncomeHandler {
	return &IncomeHandler{DashboardService: svc}
}

func (h *IncomeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-income-analysis",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/income",
		Summary:     "Income analysis",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *IncomeHandler) handle(ctx context.Context, input *IncomeInput) (*IncomeOutput, error) {
	filter, err := input.Filter()
	if err != nil {
		return nil, err
	}

	analysis, err := h.DashboardService.IncomeAnalysis(ctx, filter)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to analyse income", err)
	}

	income := make([]transaction.Income, 0, len(analysis.Income))
	for _, i := range analysis.Income {
		income = append(income, transaction.NewIncome(i))
	}

	return &IncomeOutput{Body: IncomeResponse{
		Filter:        newFilter(analysis.Filter),
		Income:        income,
		Total:         analysis.Total.String(),
		BySource:      newNamedValues(analysis.BySource),
		TypeEvolution: newMonthBreakdowns(analysis.TypeEvolution, analysis.Types),
		Types:         nonNil(analysis.Types),
	}}, nil
}
