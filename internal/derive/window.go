package derive

import "time"

// Window is a named relative time range anchored at "now".
type Window string

const (
	WindowAll   Window = "all"
	WindowDay   Window = "day"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// ParseWindow maps a query-string value to a Window. Anything
// unrecognized means no filtering.
func ParseWindow(s string) Window {
	switch Window(s) {
	case WindowDay, WindowWeek, WindowMonth:
		return Window(s)
	}
	return WindowAll
}

// WindowStart returns the inclusive lower bound for a window in now's
// location. ok is false for WindowAll, which has no bound.
//
// day is the start of the current calendar day, matched on-or-after like
// the other windows. week starts at the most recent Sunday 00:00:00;
// month at the 1st of the current month 00:00:00.
func WindowStart(w Window, now time.Time) (time.Time, bool) {
	switch w {
	case WindowDay:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), true
	case WindowWeek:
		sunday := now.AddDate(0, 0, -int(now.Weekday()))
		return time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, now.Location()), true
	case WindowMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}

// FilterByWindow keeps the items whose date falls on or after the window
// start, preserving input order. WindowAll returns the input unchanged.
// Items whose dateOf reports !ok (missing or unparseable date) are dropped
// from every bounded window, never an error.
func FilterByWindow[T any](items []T, dateOf func(T) (time.Time, bool), w Window, now time.Time) []T {
	start, bounded := WindowStart(w, now)
	if !bounded {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		d, ok := dateOf(item)
		if !ok {
			continue
		}
		if !d.Before(start) {
			out = append(out, item)
		}
	}
	return out
}
