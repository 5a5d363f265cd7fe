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

type ExpensesInput struct {
	v1.FilterQuery
}

type ExpensesResponse struct {
	Filter     Filter                `json:"filter"`
	Expenses   []transaction.Expense `json:"expenses"`
	Total      string                `json:"total"`
	ByCategory []NamedValue          `json:"byCategory" doc:"Category distribution in first-seen order"`
	Monthly    []MonthBreakdown      `json:"monthly" doc:"Expenses per month stacked by category"`
	Categories []string              `json:"categories" doc:"Stack keys of the monthly chart"`
}

type ExpensesOutput struct {
	Body ExpensesResponse
}

type expenseAnalyzer interface {
	ExpenseAnalysis(ctx context.Context, filter ledger.Filter) (*service.ExpenseAnalysis, error)
}

// ExpensesHandler handles GET /v1/dashboard/expenses.
type ExpensesHandler struct {
	DashboardService expenseAnalyzer
}

func NewExpensesHandler(svc expenseAnalyzer) *ExpensesHandler {
	return &ExpensesHandler{DashboardService: svc}
}

func (h *ExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-expense-analysis",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/expenses",
		Summary:     "Expense analysis",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *ExpensesHandler) handle(ctx context.Context, input *ExpensesInput) (*ExpensesOutput, error) {
	filter, err := input.Filter()
	if err != nil {
		return nil, err
	}

	analysis, err := h.DashboardService.ExpenseAnalysis(ctx, filter)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to analyse expenses", err)
	}

	expenses := make([]transaction.Expense, 0, len(analysis.Expenses))
	for _, e := range analysis.Expenses {
		expenses = append(expenses, transaction.NewExpense(e))
	}

	return &ExpensesOutput{Body: ExpensesResponse{
		Filter:     newFilter(analysis.Filter),
		Expenses:   expenses,
		Total:      analysis.Total.String(),
		ByCategory: newNamedValues(analysis.ByCategory),
		Monthly:    newMonthBreakdowns(analysis.Monthly, analysis.Categories),
		Categories: nonNil(analysis.Categories),
	}}, nil
}
