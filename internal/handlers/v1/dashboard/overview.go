package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/weverton790458597/DashBoard/internal/handlers/v1"
	"github.com/weverton790458597/DashBoard/internal/handlers/v1/investment"
	"github.com/weverton790458597/DashBoard/internal/handlers/v1/settings"
	"github.com/weverton790458597/DashBoard/internal/ledger"
	"github.com/weverton790458597/DashBoard/internal/service"
)

type OverviewInput struct {
	v1.FilterQuery
}

// NetWorth is the headline card set of the overview.
type NetWorth struct {
	TotalIncome   string `json:"totalIncome"`
	TotalExpenses string `json:"totalExpenses"`
	BankBalance   string `json:"bankBalance" doc:"Initial balance plus income minus expenses"`
	InvestedTotal string `json:"investedTotal" doc:"Investment accounts in the home currency"`
	NetWorth      string `json:"netWorth"`
}

type OverviewResponse struct {
	Filter         Filter                  `json:"filter"`
	NetWorth       NetWorth                `json:"netWorth"`
	Monthly        []MonthlyTotals         `json:"monthly" doc:"Income versus expense per month, chronological"`
	IncomeBySource []NamedValue            `json:"incomeBySource"`
	Investments    []investment.Investment `json:"investments"`
	Settings       settings.Settings       `json:"settings"`
}

type OverviewOutput struct {
	Body OverviewResponse
}

type overviewReader interface {
	Overview(ctx context.Context, filter ledger.Filter) (*service.Overview, error)
}

// OverviewHandler handles GET /v1/dashboard/overview.
type OverviewHandler struct {
	DashboardService overviewReader
}

func NewOverviewHandler(svc overviewReader) *OverviewHandler {
	return &OverviewHandler{DashboardService: svc}
}

func (h *OverviewHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-overview",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/overview",
		Summary:     "Dashboard overview",
		Description: "Net worth, the monthly income versus expense comparison and income by source, " +
			"all computed over the filtered transactions. Investments are never filtered.",
		Tags: []string{"Dashboard"},
	}, h.handle)
}

func (h *OverviewHandler) handle(ctx context.Context, input *OverviewInput) (*OverviewOutput, error) {
	filter, err := input.Filter()
	if err != nil {
		return nil, err
	}

	overview, err := h.DashboardService.Overview(ctx, filter)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build overview", err)
	}

	return &OverviewOutput{Body: OverviewResponse{
		Filter: newFilter(overview.Filter),
		NetWorth: NetWorth{
			TotalIncome:   overview.NetWorth.TotalIncome.String(),
			TotalExpenses: overview.NetWorth.TotalExpenses.String(),
			BankBalance:   overview.NetWorth.BankBalance.String(),
			InvestedTotal: overview.NetWorth.InvestedTotal.String(),
			NetWorth:      overview.NetWorth.NetWorth.String(),
		},
		Monthly:        newMonthlyTotals(overview.Monthly),
		IncomeBySource: newNamedValues(overview.IncomeBySource),
		Investments:    investment.NewInvestments(overview.Investments),
		Settings:       settings.NewSettings(overview.Settings),
	}}, nil
}
