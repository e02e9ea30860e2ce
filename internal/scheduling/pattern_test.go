package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	"github.com/pawspace/PetCare-BookingService/pkg/types"
)

func mustRange(t *testing.T, start, end string) domain.TimeRange {
	t.Helper()
	r := domain.TimeRange{
		Start: types.TimeString(start),
		End:   types.TimeString(end),
	}
	require.NoError(t, r.Validate())
	return r
}

func TestExpandPattern_HorizonBounds(t *testing.T) {
	pattern := domain.WeeklyPattern{
		time.Monday:    {mustRange(t, "09:00", "12:00")},
		time.Wednesday: {mustRange(t, "09:00", "12:00"), mustRange(t, "14:00", "18:00")},
		time.Saturday:  {mustRange(t, "10:00", "16:00")},
	}

	today := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC) // a Monday
	horizon := 90

	slots, err := ExpandPattern(pattern, today, horizon)
	require.NoError(t, err)

	end := today.AddDate(0, 0, horizon)
	for key, ranges := range slots {
		date, err := time.Parse(domain.DateFormat, key)
		require.NoError(t, err)

		assert.False(t, date.Before(today), "date %s before today", key)
		assert.True(t, date.Before(end), "date %s outside horizon", key)
		assert.NotEmpty(t, ranges, "date %s present with empty slots", key)
	}

	expected := 0
	for i := 0; i < horizon; i++ {
		switch today.AddDate(0, 0, i).Weekday() {
		case time.Monday, time.Wednesday, time.Saturday:
			expected++
		}
	}
	assert.Len(t, slots, expected)
}

func TestExpandPattern_EmptyWeekdaysOmitted(t *testing.T) {
	pattern := domain.WeeklyPattern{
		time.Tuesday: {mustRange(t, "08:00", "10:00")},
		time.Friday:  {}, // explicitly empty: same as absent
	}

	today := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	slots, err := ExpandPattern(pattern, today, 14)
	require.NoError(t, err)

	for key := range slots {
		date, err := time.Parse(domain.DateFormat, key)
		require.NoError(t, err)
		assert.Equal(t, time.Tuesday, date.Weekday())
	}
	assert.Len(t, slots, 2)
}

func TestExpandPattern_FullyUnavailable(t *testing.T) {
	today := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	slots, err := ExpandPattern(domain.WeeklyPattern{}, today, 90)
	require.NoError(t, err)
	assert.Empty(t, slots, "empty pattern must expand to no slots, not an error")
}

func TestExpandPattern_Deterministic(t *testing.T) {
	pattern := domain.WeeklyPattern{
		time.Monday: {mustRange(t, "09:00", "17:00")},
	}
	today := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	first, err := ExpandPattern(pattern, today, 30)
	require.NoError(t, err)
	second, err := ExpandPattern(pattern, today, 30)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExpandPattern_SharedRangesAcrossDates(t *testing.T) {
	pattern := domain.WeeklyPattern{
		time.Monday: {mustRange(t, "09:00", "12:00")},
	}
	today := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	slots, err := ExpandPattern(pattern, today, 15)
	require.NoError(t, err)

	first := slots["2024-03-04"]
	second := slots["2024-03-11"]
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first, second, "weekday ranges are reused verbatim for every matching date")
}

func TestExpandPattern_InvalidHorizon(t *testing.T) {
	today := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	_, err := ExpandPattern(domain.WeeklyPattern{}, today, 0)
	assert.ErrorIs(t, err, ErrNegativeHorizon)

	_, err = ExpandPattern(domain.WeeklyPattern{}, today, -5)
	assert.ErrorIs(t, err, ErrNegativeHorizon)
}

func TestBeforeDay_MixedLocations(t *testing.T) {
	nyc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	utcDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	nycMorning := time.Date(2026, 9, 1, 8, 0, 0, 0, nyc)

	// Same civil date even though the UTC midnight is the earlier instant.
	assert.False(t, BeforeDay(utcDate, nycMorning))
	assert.False(t, BeforeDay(nycMorning, utcDate))

	assert.True(t, BeforeDay(time.Date(2026, 8, 31, 23, 0, 0, 0, nyc), utcDate))
	assert.False(t, BeforeDay(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), nycMorning))
}

func TestDaysBetween_SpansDSTTransition(t *testing.T) {
	nyc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2026-03-08 is the spring-forward date; the local day has 23 hours.
	from := time.Date(2026, 3, 7, 0, 0, 0, 0, nyc)
	to := time.Date(2026, 3, 10, 0, 0, 0, 0, nyc)
	assert.Equal(t, 3, DaysBetween(from, to))

	assert.Equal(t, 3, DaysBetween(
		time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 0, 0, 0, 0, nyc)))

	assert.Equal(t, 0, DaysBetween(from, from))
}
