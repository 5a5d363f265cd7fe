package ledger

import "fmt"

// DateRange restricts a dashboard view to a window relative to today.
type DateRange string

const (
	RangeAll          DateRange = "all"
	RangeLast30Days   DateRange = "30days"
	RangeCurrentMonth DateRange = "currentMonth"
	RangeCurrentYear  DateRange = "year"
)

// ParseDateRange accepts the wire names. Empty means all.
func ParseDateRange(s string) (DateRange, error) {
	switch DateRange(s) {
	case "":
		return RangeAll, nil
	case RangeAll, RangeLast30Days, RangeCurrentMonth, RangeCurrentYear:
		return DateRange(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDateRange, s)
}

// Filter selects a view over the transaction collections. Category only
// constrains expenses and Source only constrains income.
type Filter struct {
	DateRange DateRange
	Category  string
	Source    string
}
