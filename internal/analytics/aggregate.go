package analytics

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/weverton790458597/DashBoard/internal/ledger"
)

// MonthlyTotals is the income and expense sum of one calendar month.
type MonthlyTotals struct {
	Key     ledger.MonthKey
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// NamedValue is one bucket of a distribution.
type NamedValue struct {
	Name  string
	Value decimal.Decimal
}

// MonthBreakdown sums one month by a dynamic set of labels. A label missing
// from Values contributed nothing that month.
type MonthBreakdown struct {
	Key    ledger.MonthKey
	Month  string
	Values map[string]decimal.Decimal
}

// Get returns the sum for label, zero when absent.
func (m MonthBreakdown) Get(label string) decimal.Decimal {
	if v, ok := m.Values[label]; ok {
		return v
	}
	return decimal.Zero
}

// MonthlyComparison groups income and expenses by month, oldest first.
func MonthlyComparison(income []ledger.Income, expenses []ledger.Expense) []MonthlyTotals {
	byMonth := map[ledger.MonthKey]*MonthlyTotals{}
	bucket := func(d ledger.Date) *MonthlyTotals {
		key := d.MonthKey()
		totals, ok := byMonth[key]
		if !ok {
			totals = &MonthlyTotals{Key: key, Month: key.Label(), Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[key] = totals
		}
		return totals
	}

	for _, inc := range income {
		totals := bucket(inc.Date)
		totals.Income = totals.Income.Add(inc.Value)
	}
	for _, exp := range expenses {
		totals := bucket(exp.Date)
		totals.Expense = totals.Expense.Add(exp.Value)
	}

	result := make([]MonthlyTotals, 0, len(byMonth))
	for _, totals := range byMonth {
		result = append(result, *totals)
	}
	slices.SortFunc(result, func(a, b MonthlyTotals) int { return compareMonths(a.Key, b.Key) })
	return result
}

// ByCategory selects the expense category.
func ByCategory(e ledger.Expense) string { return e.Category }

// BySource selects the income source.
func BySource(i ledger.Income) string { return i.Source }

// ByType selects the income type label.
func ByType(i ledger.Income) string { return string(i.Type) }

// Distribution sums values per distinct field value, in first-seen order.
func Distribution[T ledger.Transaction](items []T, field func(T) string) []NamedValue {
	index := map[string]int{}
	var result []NamedValue
	for _, item := range items {
		name := field(item)
		i, ok := index[name]
		if !ok {
			i = len(result)
			index[name] = i
			result = append(result, NamedValue{Name: name, Value: decimal.Zero})
		}
		result[i].Value = result[i].Value.Add(item.Base().Value)
	}
	return result
}

func CategoryDistribution(expenses []ledger.Expense) []NamedValue {
	return Distribution(expenses, ByCategory)
}

func SourceDistribution(income []ledger.Income) []NamedValue {
	return Distribution(income, BySource)
}

// StackedExpenses breaks each month's expenses down by category.
func StackedExpenses(expenses []ledger.Expense) []MonthBreakdown {
	return breakdown(expenses, ByCategory)
}

// TypeEvolution breaks each month's income down by income type.
func TypeEvolution(income []ledger.Income) []MonthBreakdown {
	return breakdown(income, ByType)
}

// Labels lists every label used across months, ordered by the first month
// it appears in and alphabetically within that month.
func Labels(months []MonthBreakdown) []string {
	var labels []string
	seen := map[string]bool{}
	for _, m := range months {
		keys := make([]string, 0, len(m.Values))
		for k := range m.Values {
			if !seen[k] {
				keys = append(keys, k)
			}
		}
		slices.Sort(keys)
		for _, k := range keys {
			seen[k] = true
		}
		labels = append(labels, keys...)
	}
	return labels
}

func breakdown[T ledger.Transaction](items []T, field func(T) string) []MonthBreakdown {
	byMonth := map[ledger.MonthKey]*MonthBreakdown{}
	for _, item := range items {
		entry := item.Base()
		key := entry.Date.MonthKey()
		month, ok := byMonth[key]
		if !ok {
			month = &MonthBreakdown{Key: key, Month: key.Label(), Values: map[string]decimal.Decimal{}}
			byMonth[key] = month
		}
		label := field(item)
		month.Values[label] = month.Get(label).Add(entry.Value)
	}

	result := make([]MonthBreakdown, 0, len(byMonth))
	for _, month := range byMonth {
		result = append(result, *month)
	}
	slices.SortFunc(result, func(a, b MonthBreakdown) int { return compareMonths(a.Key, b.Key) })
	return result
}

func compareMonths(a, b ledger.MonthKey) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	}
	return 0
}
