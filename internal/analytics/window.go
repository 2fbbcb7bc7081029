// Package analytics derives time-windowed summaries from ledger snapshots.
// Every function is a pure reducer: inputs are never mutated and results are
// independent of ledger iteration order.
package analytics

import (
	"fmt"
	"strings"
	"time"
)

// Granularity selects the size of an aggregation window.
type Granularity string

const (
	// GranularityWeek is the ISO week containing the anchor.
	GranularityWeek Granularity = "week"
	// GranularityMonth is the calendar month containing the anchor.
	GranularityMonth Granularity = "month"
	// GranularityYear is the calendar year containing the anchor.
	GranularityYear Granularity = "year"
)

// ParseGranularity converts a string into a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(strings.ToLower(strings.TrimSpace(s)))
	switch g {
	case GranularityWeek, GranularityMonth, GranularityYear:
		return g, nil
	}
	return "", fmt.Errorf("%q is not a window (week, month, year)", s)
}

// Window is a time range anchored to a point in time. Both bounds are
// inclusive.
type Window struct {
	Start       time.Time
	End         time.Time
	Granularity Granularity
}

// WindowAt computes the window of the given granularity containing the
// anchor: the ISO week (Monday through Sunday), the calendar month, or the
// calendar year. Bounds are computed in the anchor's location.
func WindowAt(g Granularity, anchor time.Time) Window {
	var start, next time.Time

	switch g {
	case GranularityWeek:
		// Monday-start week per ISO 8601.
		offset := (int(anchor.Weekday()) + 6) % 7
		day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
		start = day.AddDate(0, 0, -offset)
		next = start.AddDate(0, 0, 7)
	case GranularityMonth:
		start = time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		next = start.AddDate(0, 1, 0)
	case GranularityYear:
		start = time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, anchor.Location())
		next = start.AddDate(1, 0, 0)
	default:
		return Window{Granularity: g}
	}

	return Window{
		Start:       start,
		End:         next.Add(-time.Nanosecond),
		Granularity: g,
	}
}

// Previous returns the immediately preceding window of the same granularity.
func (w Window) Previous() Window {
	var start time.Time
	switch w.Granularity {
	case GranularityWeek:
		start = w.Start.AddDate(0, 0, -7)
	case GranularityMonth:
		start = w.Start.AddDate(0, -1, 0)
	case GranularityYear:
		start = w.Start.AddDate(-1, 0, 0)
	default:
		return Window{Granularity: w.Granularity}
	}

	return Window{
		Start:       start,
		End:         w.Start.Add(-time.Nanosecond),
		Granularity: w.Granularity,
	}
}

// Contains reports whether t falls within [Start, End], inclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
