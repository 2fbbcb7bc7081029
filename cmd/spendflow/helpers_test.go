package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendflow/internal/analytics"
)

func TestWindowFlag(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    analytics.Granularity
		wantErr bool
	}{
		{name: "week", value: "week", want: analytics.GranularityWeek},
		{name: "month", value: "month", want: analytics.GranularityMonth},
		{name: "year", value: "year", want: analytics.GranularityYear},
		{name: "mixed case", value: "Month", want: analytics.GranularityMonth},
		{name: "unknown", value: "fortnight", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := windowFlag(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.Granularity)
			assert.True(t, w.Contains(time.Now()))
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "bare date",
			value: "2024-03-15",
			want:  time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "rfc 3339",
			value: "2024-03-15T14:30:00Z",
			want:  time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			value: "  2024-03-15  ",
			want:  time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local),
		},
		{name: "garbage", value: "next tuesday", wantErr: true},
		{name: "wrong order", value: "15-03-2024", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "parseDate(%q) = %v, want %v", tt.value, got, tt.want)
		})
	}
}

func TestDateRange(t *testing.T) {
	t.Run("both bounds", func(t *testing.T) {
		start, end, err := dateRange("2024-01-01", "2024-01-31")
		require.NoError(t, err)

		assert.True(t, start.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)))
		// The upper bound covers the whole of its day.
		lastMoment := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local).Add(-time.Nanosecond)
		assert.True(t, end.Equal(lastMoment), "end = %v, want %v", end, lastMoment)
	})

	t.Run("open below", func(t *testing.T) {
		start, _, err := dateRange("", "2024-01-31")
		require.NoError(t, err)
		assert.True(t, start.IsZero())
	})

	t.Run("open above", func(t *testing.T) {
		_, end, err := dateRange("2024-01-01", "")
		require.NoError(t, err)
		assert.Equal(t, 9999, end.Year())
	})

	t.Run("bad from", func(t *testing.T) {
		_, _, err := dateRange("not-a-date", "")
		assert.Error(t, err)
	})

	t.Run("bad to", func(t *testing.T) {
		_, _, err := dateRange("", "not-a-date")
		assert.Error(t, err)
	})
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "simple list", value: "work,travel", want: []string{"work", "travel"}},
		{name: "spaces trimmed", value: " work , travel ", want: []string{"work", "travel"}},
		{name: "empty segments dropped", value: "work,,travel,", want: []string{"work", "travel"}},
		{name: "single tag", value: "work", want: []string{"work"}},
		{name: "empty value", value: "", want: []string{}},
		{name: "only separators", value: ", ,", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitTags(tt.value))
		})
	}
}
