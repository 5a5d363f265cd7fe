package ledger

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day. The time component is always midnight UTC.
type Date struct {
	time.Time
}

// NewDate creates a new Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

// Before reports whether d is an earlier day than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// MonthKey identifies the calendar month a date falls in.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthKey returns the month bucket of the date.
func (d Date) MonthKey() MonthKey {
	return MonthKey{Year: d.Year(), Month: d.Month()}
}

// Before orders month keys chronologically.
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// Label renders the key as "Jan/24".
func (k MonthKey) Label() string {
	return fmt.Sprintf("%s/%02d", k.Month.String()[:3], k.Year%100)
}
