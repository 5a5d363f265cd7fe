package dashboard

import (
	"github.com/weverton790458597/DashBoard/internal/analytics"
	"github.com/weverton790458597/DashBoard/internal/ledger"
)

// Filter echoes the filter a response was computed with.
type Filter struct {
	DateRange string `json:"dateRange"`
	Category  string `json:"category,omitempty"`
	Source    string `json:"source,omitempty"`
}

func newFilter(f ledger.Filter) Filter {
	return Filter{DateRange: string(f.DateRange), Category: f.Category, Source: f.Source}
}

// NamedValue is one slice of a distribution chart.
type NamedValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func newNamedValues(values []analytics.NamedValue) []NamedValue {
	out := make([]NamedValue, 0, len(values))
	for _, v := range values {
		out = append(out, NamedValue{Name: v.Name, Value: v.Value.String()})
	}
	return out
}

// MonthlyTotals is one bar pair of the income versus expense chart.
type MonthlyTotals struct {
	Month   string `json:"month" doc:"Month label, e.g. Jan/24"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

func newMonthlyTotals(months []analytics.MonthlyTotals) []MonthlyTotals {
	out := make([]MonthlyTotals, 0, len(months))
	for _, m := range months {
		out = append(out, MonthlyTotals{Month: m.Month, Income: m.Income.String(), Expense: m.Expense.String()})
	}
	return out
}

// MonthBreakdown is one stacked bar. Values carries every label, zero
// where the month had nothing for it.
type MonthBreakdown struct {
	Month  string            `json:"month" doc:"Month label, e.g. Jan/24"`
	Values map[string]string `json:"values"`
}

func newMonthBreakdowns(months []analytics.MonthBreakdown, labels []string) []MonthBreakdown {
	out := make([]MonthBreakdown, 0, len(months))
	for _, m := range months {
		values := make(map[string]string, len(labels))
		for _, label := range labels {
			values[label] = m.Get(label).String()
		}
		out = append(out, MonthBreakdown{Month: m.Month, Values: values})
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
