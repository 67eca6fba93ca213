// Package report contains the monthly reporting use cases and the pure
// derivation functions they are built on.
package report

import (
	"fmt"
	"time"
)

// Month identifies a calendar month (month + year), the reference unit for
// all monthly views.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the calendar month containing the given time.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a month in "2006-01" form.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// String formats the month in "2006-01" form.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Previous returns the month before m; the year rolls over at January.
func (m Month) Previous() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Next returns the month after m; the year rolls over at December.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Contains reports whether the given date falls within the month.
// Dates are compared as local calendar days; no timezone shifting.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}
