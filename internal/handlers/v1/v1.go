// Package v1 holds what the v1 handler packages share.
package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/weverton790458597/DashBoard/internal/ledger"
	"github.com/weverton790458597/DashBoard/internal/logging"
	"github.com/weverton790458597/DashBoard/internal/operator/actions"
)

// ActionProcessor runs a mutation through the operator.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// FilterQuery is the dashboard filter as query parameters.
type FilterQuery struct {
	DateRange string `query:"dateRange" enum:"all,30days,currentMonth,year" default:"all" doc:"Date window relative to today"`
	Category  string `query:"category" doc:"Only expenses with this category"`
	Source    string `query:"source" doc:"Only income with this source"`
}

// Filter converts the query into a ledger filter.
func (q FilterQuery) Filter() (ledger.Filter, error) {
	dateRange, err := ledger.ParseDateRange(q.DateRange)
	if err != nil {
		return ledger.Filter{}, huma.NewError(http.StatusBadRequest, "invalid dateRange", err)
	}
	return ledger.Filter{DateRange: dateRange, Category: q.Category, Source: q.Source}, nil
}

// Process runs action, timing it on the request's LogData. Validation
// failures become 400 and anything else 500.
func Process(ctx context.Context, op ActionProcessor, action actions.IAction, failure string) error {
	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		logData.AddData("action", action.Name())
		stopTimer = logData.AddTiming("processMs")
	}
	err := op.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err == nil {
		return nil
	}
	if errors.Is(err, ledger.ErrValidation) {
		return huma.NewError(http.StatusBadRequest, failure, err)
	}
	return huma.NewError(http.StatusInternalServerError, failure, err)
}
