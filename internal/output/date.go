package output

import "time"

// FormatDateRange formats a date range with an arrow separator.
// Same-month ranges abbreviate: "Feb 1 → 29, 2024".
// Cross-month ranges: "Jan 20 → Feb 2, 2025".
// The year appears only on the end date.
func FormatDateRange(start, end time.Time) string {
	if start.Year() == end.Year() && start.Month() == end.Month() {
		return start.Format("Jan 2") + " → " + end.Format("2, 2006")
	}
	if start.Year() == end.Year() {
		return start.Format("Jan 2") + " → " + end.Format("Jan 2, 2006")
	}
	return start.Format("Jan 2, 2006") + " → " + end.Format("Jan 2, 2006")
}

// FormatDateTime formats an instant with its zone: "Jan 25, 2024 17:54 UTC".
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04 MST")
}

// FormatClock formats the time of day: "07:22".
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}
