package service

import (
	"fmt"
	"time"
)

// monthRange returns the half-open [start, end) date-string range
// covering one calendar month. Dates are stored as YYYY-MM-DD, so
// plain string comparison is correct.
func monthRange(year, month int) (string, string) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}

// monthKey is the YYYY-MM bucket key for a budget's month.
func monthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
