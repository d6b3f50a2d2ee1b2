package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveDate(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		today    time.Time
		want     time.Time
	}{
		{
			name:     "past date this year",
			fragment: "06-01",
			today:    day(2024, time.June, 15),
			want:     day(2024, time.June, 1),
		},
		{
			name:     "future this year resolves to last year",
			fragment: "01-05",
			today:    day(2024, time.January, 2),
			want:     day(2023, time.January, 5),
		},
		{
			name:     "same day as today",
			fragment: "06-15",
			today:    day(2024, time.June, 15),
			want:     day(2024, time.June, 15),
		},
		{
			name:     "year component is ignored",
			fragment: "2024-01-05",
			today:    day(2024, time.January, 2),
			want:     day(2023, time.January, 5),
		},
		{
			name:     "leap day in a leap year",
			fragment: "02-29",
			today:    day(2024, time.March, 1),
			want:     day(2024, time.February, 29),
		},
		{
			name:     "empty fragment resolves to zero",
			fragment: "",
			today:    day(2024, time.June, 15),
			want:     time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDate(tt.fragment, tt.today)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDateNeverFuture(t *testing.T) {
	today := day(2024, time.June, 15)
	fragments := []string{"01-01", "06-14", "06-15", "06-16", "12-31"}

	for _, fragment := range fragments {
		got, err := ResolveDate(fragment, today)
		require.NoError(t, err)
		assert.False(t, got.After(today), "resolved %s to %s, after today", fragment, got)
	}
}

func TestResolveDateInvalid(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
	}{
		{name: "month 13", fragment: "13-01"},
		{name: "day 30 in february", fragment: "02-30"},
		{name: "day zero", fragment: "01-00"},
		{name: "not numeric", fragment: "ab-cd"},
		{name: "no separator", fragment: "0601"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveDate(tt.fragment, day(2024, time.June, 15))
			require.Error(t, err)

			var invalid *InvalidDateError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(day(2024, time.June, 15), time.Date(2024, time.June, 15, 23, 30, 0, 0, time.UTC)))
	assert.False(t, SameDay(day(2024, time.June, 15), day(2024, time.June, 16)))
	assert.False(t, SameDay(time.Time{}, time.Time{}), "zero times never match")
}
