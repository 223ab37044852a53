package domain

import (
	"fmt"
	"time"
)

// ProphixDate converts a calendar date to the fiscal date code used by the
// downstream reporting system, formatted {fiscalYear}D{dayNumber:03d}.
// The fiscal year begins May 1: May 1 2026 -> "2026D001", Apr 30 2026 ->
// "2025D365" (or D366 when the span crosses a leap February).
func ProphixDate(t time.Time) string {
	startYear := t.Year()
	if t.Month() < time.May {
		startYear--
	}

	// Normalize both ends to UTC midnight so the day count is true calendar
	// subtraction, independent of the input's time of day or DST offsets.
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	fiscalStart := time.Date(startYear, time.May, 1, 0, 0, 0, 0, time.UTC)
	dayNum := int(date.Sub(fiscalStart)/(24*time.Hour)) + 1

	return fmt.Sprintf("%dD%03d", startYear, dayNum)
}
