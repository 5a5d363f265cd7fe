package analytics

import (
	"time"

	"github.com/weverton790458597/DashBoard/internal/ledger"
)

// FilterTransactions returns the items matching f, in input order. Date
// windows are evaluated against the calendar day of now.
func FilterTransactions[T ledger.Transaction](items []T, f ledger.Filter, now time.Time) []T {
	today := ledger.DateOf(now)
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if matchesDate(item.Base().Date, f.DateRange, today) && matchesLabels(item, f) {
			matched = append(matched, item)
		}
	}
	return matched
}

func matchesDate(d ledger.Date, r ledger.DateRange, today ledger.Date) bool {
	switch r {
	case ledger.RangeLast30Days:
		return !d.Before(today.AddDays(-30))
	case ledger.RangeCurrentMonth:
		return d.MonthKey() == today.MonthKey()
	case ledger.RangeCurrentYear:
		return d.Year() == today.Year()
	default:
		return true
	}
}

// matchesLabels applies the category filter to expenses and the source
// filter to income. Each passes for the other variant.
func matchesLabels(item ledger.Transaction, f ledger.Filter) bool {
	switch tx := item.(type) {
	case ledger.Expense:
		return f.Category == "" || tx.Category == f.Category
	case ledger.Income:
		return f.Source == "" || tx.Source == f.Source
	}
	return true
}
