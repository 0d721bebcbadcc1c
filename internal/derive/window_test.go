package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type dated struct {
	name string
	at   time.Time
	ok   bool
}

func datedAt(name string, at time.Time) dated { return dated{name, at, true} }

func names(items []dated) []string {
	out := make([]string, 0, len(items))
	for _, d := range items {
		out = append(out, d.name)
	}
	return out
}

func dateOf(d dated) (time.Time, bool) { return d.at, d.ok }

func TestParseWindow(t *testing.T) {
	assert.Equal(t, WindowDay, ParseWindow("day"))
	assert.Equal(t, WindowWeek, ParseWindow("week"))
	assert.Equal(t, WindowMonth, ParseWindow("month"))
	assert.Equal(t, WindowAll, ParseWindow("all"))
	assert.Equal(t, WindowAll, ParseWindow(""))
	assert.Equal(t, WindowAll, ParseWindow("fortnight"))
}

func TestFilterByWindowAllIsIdentity(t *testing.T) {
	now := time.Date(2024, time.June, 12, 15, 30, 0, 0, time.UTC)
	items := []dated{
		datedAt("a", now),
		{"no-date", time.Time{}, false},
		datedAt("old", now.AddDate(-1, 0, 0)),
	}

	got := FilterByWindow(items, dateOf, WindowAll, now)
	assert.Equal(t, []string{"a", "no-date", "old"}, names(got))
}

func TestFilterByWindowDay(t *testing.T) {
	now := time.Date(2024, time.June, 12, 15, 30, 0, 0, time.UTC)
	items := []dated{
		datedAt("this-morning", time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)),
		datedAt("later-today", time.Date(2024, time.June, 12, 23, 59, 0, 0, time.UTC)),
		datedAt("yesterday", time.Date(2024, time.June, 11, 23, 59, 0, 0, time.UTC)),
	}

	got := FilterByWindow(items, dateOf, WindowDay, now)
	assert.Equal(t, []string{"this-morning", "later-today"}, names(got))
}

// Week is anchored at the most recent Sunday 00:00, not a rolling 7 days.
func TestFilterByWindowWeekSundayAnchor(t *testing.T) {
	// Wednesday June 12 2024; the window opens Sunday June 9 00:00.
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)
	items := []dated{
		datedAt("today", now),
		datedAt("minus-3d", now.AddDate(0, 0, -3)), // Sunday, inside
		datedAt("saturday", time.Date(2024, time.June, 8, 23, 0, 0, 0, time.UTC)),
		datedAt("minus-10d", now.AddDate(0, 0, -10)),
	}

	got := FilterByWindow(items, dateOf, WindowWeek, now)
	assert.Equal(t, []string{"today", "minus-3d"}, names(got))
}

func TestFilterByWindowWeekOnSunday(t *testing.T) {
	// Now is itself a Sunday; the window opens at midnight today.
	now := time.Date(2024, time.June, 9, 12, 0, 0, 0, time.UTC)
	items := []dated{
		datedAt("sunday-morning", time.Date(2024, time.June, 9, 1, 0, 0, 0, time.UTC)),
		datedAt("saturday", time.Date(2024, time.June, 8, 12, 0, 0, 0, time.UTC)),
	}

	got := FilterByWindow(items, dateOf, WindowWeek, now)
	assert.Equal(t, []string{"sunday-morning"}, names(got))
}

func TestFilterByWindowMonth(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)
	items := []dated{
		datedAt("first", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)),
		datedAt("mid", time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)),
		datedAt("may-31", time.Date(2024, time.May, 31, 23, 59, 0, 0, time.UTC)),
	}

	got := FilterByWindow(items, dateOf, WindowMonth, now)
	assert.Equal(t, []string{"first", "mid"}, names(got))
}

func TestFilterByWindowExcludesMissingDates(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)
	items := []dated{
		datedAt("valid", now),
		{"missing", time.Time{}, false},
	}

	for _, w := range []Window{WindowDay, WindowWeek, WindowMonth} {
		got := FilterByWindow(items, dateOf, w, now)
		assert.Equal(t, []string{"valid"}, names(got), "window %s", w)
	}
}
