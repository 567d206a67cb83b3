// Package dateutil contains pure date arithmetic and formatting helpers for
// trip dates. Trip dates are date-only values anchored at midnight UTC, so
// none of these functions are sensitive to timezone-boundary drift.
//
// All functions assume well-formed inputs; validation happens upstream.
package dateutil

import (
	"fmt"
	"time"
)

// TripDuration returns the inclusive day count of a trip: a same-day trip
// counts as 1, not 0.
func TripDuration(start, end time.Time) int {
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

// FormatDateRange returns a human label like "Mar 1 – Mar 5, 2024".
// The year is omitted from the start portion when both dates share a year;
// both years are shown when they differ, e.g. "Dec 30, 2023 – Jan 2, 2024".
func FormatDateRange(start, end time.Time) string {
	endStr := end.Format("Jan 2, 2006")
	if start.Year() == end.Year() {
		return fmt.Sprintf("%s – %s", start.Format("Jan 2"), endStr)
	}
	return fmt.Sprintf("%s – %s", start.Format("Jan 2, 2006"), endStr)
}

// FormatMonthYear returns a "March 2024" style label.
func FormatMonthYear(t time.Time) string {
	return t.Format("January 2006")
}

// TimeAgo returns a coarse recency label for t relative to now:
// "Today", "3d ago", "2w ago", "5mo ago", "1y ago".
func TimeAgo(t, now time.Time) string {
	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days < 1:
		return "Today"
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	case days < 30:
		return fmt.Sprintf("%dw ago", days/7)
	case days < 365:
		return fmt.Sprintf("%dmo ago", days/30)
	default:
		return fmt.Sprintf("%dy ago", days/365)
	}
}
