package analytics

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		input   string
		want    Granularity
		wantErr bool
	}{
		{"week", GranularityWeek, false},
		{"month", GranularityMonth, false},
		{"year", GranularityYear, false},
		{"MONTH", GranularityMonth, false},
		{"  week  ", GranularityWeek, false},
		{"quarter", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseGranularity(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGranularity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseGranularity(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWindowAt(t *testing.T) {
	tests := []struct {
		name      string
		g         Granularity
		anchor    time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "week anchored midweek starts the preceding monday",
			g:         GranularityWeek,
			anchor:    date(2024, time.March, 14), // a Thursday
			wantStart: date(2024, time.March, 11),
			wantEnd:   date(2024, time.March, 18).Add(-time.Nanosecond),
		},
		{
			name:      "week anchored on sunday belongs to the week that started six days earlier",
			g:         GranularityWeek,
			anchor:    date(2024, time.March, 17),
			wantStart: date(2024, time.March, 11),
			wantEnd:   date(2024, time.March, 18).Add(-time.Nanosecond),
		},
		{
			name:      "week anchored on monday starts that day",
			g:         GranularityWeek,
			anchor:    date(2024, time.March, 11),
			wantStart: date(2024, time.March, 11),
			wantEnd:   date(2024, time.March, 18).Add(-time.Nanosecond),
		},
		{
			name:      "week spanning a month boundary",
			g:         GranularityWeek,
			anchor:    date(2024, time.April, 1), // a Monday
			wantStart: date(2024, time.April, 1),
			wantEnd:   date(2024, time.April, 8).Add(-time.Nanosecond),
		},
		{
			name:      "month",
			g:         GranularityMonth,
			anchor:    date(2024, time.February, 15),
			wantStart: date(2024, time.February, 1),
			wantEnd:   date(2024, time.March, 1).Add(-time.Nanosecond),
		},
		{
			name:      "leap february covers the 29th",
			g:         GranularityMonth,
			anchor:    date(2024, time.February, 29),
			wantStart: date(2024, time.February, 1),
			wantEnd:   date(2024, time.March, 1).Add(-time.Nanosecond),
		},
		{
			name:      "december stays inside its year",
			g:         GranularityMonth,
			anchor:    date(2023, time.December, 31),
			wantStart: date(2023, time.December, 1),
			wantEnd:   date(2024, time.January, 1).Add(-time.Nanosecond),
		},
		{
			name:      "year",
			g:         GranularityYear,
			anchor:    date(2024, time.July, 4),
			wantStart: date(2024, time.January, 1),
			wantEnd:   date(2025, time.January, 1).Add(-time.Nanosecond),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WindowAt(tt.g, tt.anchor)
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, want %v", got.Start, tt.wantStart)
			}
			if !got.End.Equal(tt.wantEnd) {
				t.Errorf("End = %v, want %v", got.End, tt.wantEnd)
			}
			if !got.Contains(tt.anchor) {
				t.Errorf("window %v..%v does not contain its anchor %v", got.Start, got.End, tt.anchor)
			}
		})
	}
}

func TestWindow_Previous(t *testing.T) {
	tests := []struct {
		name      string
		g         Granularity
		anchor    time.Time
		wantStart time.Time
	}{
		{
			name:      "previous week",
			g:         GranularityWeek,
			anchor:    date(2024, time.March, 14),
			wantStart: date(2024, time.March, 4),
		},
		{
			name:      "previous month across a year boundary",
			g:         GranularityMonth,
			anchor:    date(2024, time.January, 15),
			wantStart: date(2023, time.December, 1),
		},
		{
			name:      "previous year",
			g:         GranularityYear,
			anchor:    date(2024, time.June, 1),
			wantStart: date(2023, time.January, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WindowAt(tt.g, tt.anchor)
			prev := w.Previous()

			if !prev.Start.Equal(tt.wantStart) {
				t.Errorf("Previous().Start = %v, want %v", prev.Start, tt.wantStart)
			}
			if !prev.End.Equal(w.Start.Add(-time.Nanosecond)) {
				t.Errorf("Previous().End = %v, want %v", prev.End, w.Start.Add(-time.Nanosecond))
			}
			if prev.Granularity != tt.g {
				t.Errorf("Previous().Granularity = %v, want %v", prev.Granularity, tt.g)
			}
		})
	}
}

func TestWindow_Contains(t *testing.T) {
	w := WindowAt(GranularityMonth, date(2024, time.February, 10))

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"first instant", w.Start, true},
		{"last instant", w.End, true},
		{"just before", w.Start.Add(-time.Nanosecond), false},
		{"just after", w.End.Add(time.Nanosecond), false},
		{"midway", date(2024, time.February, 15), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Contains(tt.t); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestWindowsTile(t *testing.T) {
	// Consecutive windows must cover time with no gap and no overlap.
	for _, g := range []Granularity{GranularityWeek, GranularityMonth, GranularityYear} {
		w := WindowAt(g, date(2024, time.March, 1))
		prev := w.Previous()

		if !prev.End.Add(time.Nanosecond).Equal(w.Start) {
			t.Errorf("%s: gap between %v and %v", g, prev.End, w.Start)
		}
		if prev.Contains(w.Start) {
			t.Errorf("%s: windows overlap at %v", g, w.Start)
		}
	}
}
