package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	"github.com/pawspace/PetCare-BookingService/pkg/ptr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateKeys(intents []Intent) []string {
	keys := make([]string, len(intents))
	for i, intent := range intents {
		keys[i] = domain.DateKey(intent.Date)
	}
	return keys
}

func defaultParams(now time.Time) ExpandParams {
	return ExpandParams{
		Now:         now,
		HorizonDays: 90,
	}
}

var window0910 = domain.TimeRange{Start: "09:00", End: "10:00"}

func TestExpandRequest_WeeklyRecurrence(t *testing.T) {
	req := Request{
		Dates: []time.Time{date(2024, 1, 1)},
		Recurrence: &Recurrence{
			Frequency: FrequencyWeekly,
			EndDate:   date(2024, 1, 22),
		},
		DefaultWindow: window0910,
	}

	result, err := ExpandRequest(req, defaultParams(date(2024, 1, 1)))
	require.NoError(t, err)
	require.Empty(t, result.Failures)

	assert.Equal(t,
		[]string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22"},
		dateKeys(result.Intents))
}

func TestExpandRequest_BiweeklyRecurrence(t *testing.T) {
	req := Request{
		Dates: []time.Time{date(2024, 1, 1)},
		Recurrence: &Recurrence{
			Frequency: FrequencyBiweekly,
			EndDate:   date(2024, 2, 12),
		},
		DefaultWindow: window0910,
	}

	result, err := ExpandRequest(req, defaultParams(date(2024, 1, 1)))
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"2024-01-01", "2024-01-15", "2024-01-29", "2024-02-12"},
		dateKeys(result.Intents))
}

func TestExpandRequest_MonthlyRecurrenceClampsShortMonths(t *testing.T) {
	req := Request{
		Dates: []time.Time{date(2024, 1, 31)},
		Recurrence: &Recurrence{
			Frequency: FrequencyMonthly,
			EndDate:   date(2024, 4, 30),
		},
		DefaultWindow: window0910,
	}

	result, err := ExpandRequest(req, ExpandParams{Now: date(2024, 1, 15), HorizonDays: 365})
	require.NoError(t, err)
	require.Empty(t, result.Failures)

	// Day-of-month 31 clamps to each month's last day without drifting.
	assert.Equal(t,
		[]string{"2024-01-31", "2024-02-29", "2024-03-31", "2024-04-30"},
		dateKeys(result.Intents))
}

func TestExpandRequest_RangeWithWeekdayFilterAndExclusions(t *testing.T) {
	req := Request{
		RangeStart:    ptr.Ptr(date(2024, 3, 4)),  // Monday
		RangeEnd:      ptr.Ptr(date(2024, 3, 17)), // Sunday, two weeks
		Weekdays:      []time.Weekday{time.Monday, time.Friday},
		ExcludeDates:  []time.Time{date(2024, 3, 8)}, // drop the first Friday
		DefaultWindow: window0910,
	}

	result, err := ExpandRequest(req, defaultParams(date(2024, 3, 1)))
	require.NoError(t, err)
	require.Empty(t, result.Failures)

	assert.Equal(t,
		[]string{"2024-03-04", "2024-03-11", "2024-03-15"},
		dateKeys(result.Intents))
}

func TestExpandRequest_DeduplicatesByDate(t *testing.T) {
	// 2024-03-04 is reachable via the explicit list and the range.
	req := Request{
		Dates:         []time.Time{date(2024, 3, 4)},
		RangeStart:    ptr.Ptr(date(2024, 3, 4)),
		RangeEnd:      ptr.Ptr(date(2024, 3, 5)),
		DefaultWindow: window0910,
	}

	result, err := ExpandRequest(req, defaultParams(date(2024, 3, 1)))
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-03-04", "2024-03-05"}, dateKeys(result.Intents))
}

func TestExpandRequest_PerDateOverrides(t *testing.T) {
	override := domain.TimeRange{Start: "15:00", End: "16:00"}
	req := Request{
		Dates:         []time.Time{date(2024, 3, 4), date(2024, 3, 5)},
		DefaultWindow: window0910,
		Overrides: map[string]domain.TimeRange{
			"2024-03-05": override,
		},
	}

	result, err := ExpandRequest(req, defaultParams(date(2024, 3, 1)))
	require.NoError(t, err)
	require.Len(t, result.Intents, 2)

	assert.Equal(t, window0910, result.Intents[0].Window)
	assert.Equal(t, override, result.Intents[1].Window)
}

func TestExpandRequest_PartialBatchFailure(t *testing.T) {
	// Caregiver only works Mondays. A five-date request where two dates
	// fall outside availability yields three intents and two structured
	// failures; the batch never throws.
	slots := domain.DailySlots{
		"2024-03-04": {window0910},
		"2024-03-11": {window0910},
		"2024-03-18": {window0910},
	}

	req := Request{
		Dates: []time.Time{
			date(2024, 3, 4),
			date(2024, 3, 5), // no availability
			date(2024, 3, 11),
			date(2024, 3, 12), // no availability
			date(2024, 3, 18),
		},
		DefaultWindow: window0910,
	}

	result, err := ExpandRequest(req, ExpandParams{
		Now:         date(2024, 3, 1),
		HorizonDays: 90,
		Slots:       slots,
		CheckSlots:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-03-04", "2024-03-11", "2024-03-18"}, dateKeys(result.Intents))
	require.Len(t, result.Failures, 2)

	assert.Equal(t, "2024-03-05", result.Failures[0].Date)
	assert.Equal(t, "2024-03-12", result.Failures[1].Date)
	for _, failure := range result.Failures {
		var noAvail *NoAvailabilityError
		assert.ErrorAs(t, failure.Reason, &noAvail)
	}
}

func TestExpandRequest_SlotContainmentFailureCarriesWindows(t *testing.T) {
	slots := domain.DailySlots{
		"2024-03-04": {{Start: "08:00", End: "09:30"}},
	}
	req := Request{
		Dates:         []time.Time{date(2024, 3, 4)},
		DefaultWindow: window0910,
	}

	result, err := ExpandRequest(req, ExpandParams{
		Now:         date(2024, 3, 1),
		HorizonDays: 90,
		Slots:       slots,
		CheckSlots:  true,
	})
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)

	var outside *OutsideWindowsError
	require.ErrorAs(t, result.Failures[0].Reason, &outside)
	assert.Equal(t, []domain.TimeRange{{Start: "08:00", End: "09:30"}}, outside.Windows)
}

func TestExpandRequest_PastAndHorizonBounds(t *testing.T) {
	now := time.Date(2024, 3, 10, 10, 30, 0, 0, time.UTC)

	req := Request{
		Dates: []time.Time{
			date(2024, 3, 9),  // yesterday
			date(2024, 3, 10), // today, window starts 09:00 < 10:30
			date(2024, 3, 11),
			date(2024, 6, 9), // day 91
		},
		DefaultWindow: window0910,
	}

	result, err := ExpandRequest(req, ExpandParams{Now: now, HorizonDays: 90})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-03-11"}, dateKeys(result.Intents))
	require.Len(t, result.Failures, 3)

	assert.ErrorIs(t, result.Failures[0].Reason, ErrDateInPast)
	assert.ErrorIs(t, result.Failures[1].Reason, ErrStartInPast)
	assert.ErrorIs(t, result.Failures[2].Reason, ErrBeyondHorizon)
}

func TestExpandRequest_WestOfUTCClockAcceptsToday(t *testing.T) {
	nyc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 08:00 in New York is already 12:00 UTC, so an instant comparison
	// would put the UTC-parsed request date behind the clock.
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, nyc)

	req := Request{
		Dates: []time.Time{
			date(2026, 8, 31), // yesterday everywhere
			date(2026, 9, 1),  // today by civil date
		},
		DefaultWindow: window0910,
	}

	result, err := ExpandRequest(req, ExpandParams{Now: now, HorizonDays: 90})
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-09-01"}, dateKeys(result.Intents))
	require.Len(t, result.Failures, 1)
	assert.ErrorIs(t, result.Failures[0].Reason, ErrDateInPast)
}

func TestExpandRequest_MalformedWindowIsPerDateFailure(t *testing.T) {
	req := Request{
		Dates:         []time.Time{date(2024, 3, 4)},
		DefaultWindow: domain.TimeRange{Start: "10:00", End: "09:00"},
	}

	result, err := ExpandRequest(req, defaultParams(date(2024, 3, 1)))
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)

	var malformed *MalformedIntervalError
	assert.ErrorAs(t, result.Failures[0].Reason, &malformed)
}

func TestExpandRequest_Idempotent(t *testing.T) {
	req := Request{
		RangeStart:    ptr.Ptr(date(2024, 3, 4)),
		RangeEnd:      ptr.Ptr(date(2024, 3, 10)),
		DefaultWindow: window0910,
	}
	params := defaultParams(date(2024, 3, 1))

	first, err := ExpandRequest(req, params)
	require.NoError(t, err)
	second, err := ExpandRequest(req, params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExpandRequest_InvalidInputs(t *testing.T) {
	t.Run("no dates", func(t *testing.T) {
		_, err := ExpandRequest(Request{DefaultWindow: window0910}, defaultParams(date(2024, 3, 1)))
		assert.ErrorIs(t, err, ErrNoDates)
	})

	t.Run("unknown frequency", func(t *testing.T) {
		req := Request{
			Dates:         []time.Time{date(2024, 3, 4)},
			Recurrence:    &Recurrence{Frequency: "fortnightly", EndDate: date(2024, 4, 1)},
			DefaultWindow: window0910,
		}
		_, err := ExpandRequest(req, defaultParams(date(2024, 3, 1)))
		assert.ErrorIs(t, err, ErrInvalidRecurrence)
	})

	t.Run("end date before base", func(t *testing.T) {
		req := Request{
			Dates:         []time.Time{date(2024, 3, 4)},
			Recurrence:    &Recurrence{Frequency: FrequencyWeekly, EndDate: date(2024, 2, 1)},
			DefaultWindow: window0910,
		}
		_, err := ExpandRequest(req, defaultParams(date(2024, 3, 1)))
		assert.ErrorIs(t, err, ErrInvalidRecurrence)
	})

	t.Run("bad horizon", func(t *testing.T) {
		req := Request{Dates: []time.Time{date(2024, 3, 4)}, DefaultWindow: window0910}
		_, err := ExpandRequest(req, ExpandParams{Now: date(2024, 3, 1), HorizonDays: 0})
		assert.ErrorIs(t, err, ErrNegativeHorizon)
	})
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		base string
		n    int
		want string
	}{
		{"2024-01-31", 1, "2024-02-29"},
		{"2023-01-31", 1, "2023-02-28"},
		{"2024-01-31", 2, "2024-03-31"},
		{"2024-01-31", 3, "2024-04-30"},
		{"2024-01-15", 1, "2024-02-15"},
		{"2024-11-30", 3, "2025-02-28"},
	}

	for _, tt := range tests {
		base, err := time.Parse(domain.DateFormat, tt.base)
		require.NoError(t, err)
		got := addMonthsClamped(base, tt.n)
		assert.Equal(t, tt.want, domain.DateKey(got), "%s + %d months", tt.base, tt.n)
	}
}
