// Package scheduling is the availability and booking scheduling engine:
// weekly pattern expansion, slot validation, booking request expansion and
// the cancellation refund policy.
//
// Everything in this package is a pure function over its inputs. The
// current time is always a parameter, never read from a global, so callers
// own determinism and tests need no clock mocking.
package scheduling

import (
	"fmt"
	"time"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
)

// ExpandPattern resolves a weekly availability pattern into concrete
// per-date slots for every date in [today, today+horizonDays).
//
// Dates whose weekday has no entries are omitted entirely, which keeps the
// distinction between "no availability" and "available but zero-duration";
// the latter never occurs because patterns are validated at the boundary.
// The weekday's range slice is shared verbatim across all matching dates:
// there is no per-date customization at this layer.
//
// A pattern with all weekdays empty yields an empty result, not an error;
// callers treat it as "fully unavailable".
func ExpandPattern(pattern domain.WeeklyPattern, today time.Time, horizonDays int) (domain.DailySlots, error) {
	if horizonDays <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeHorizon, horizonDays)
	}

	start := Midnight(today)
	slots := make(domain.DailySlots)

	for i := 0; i < horizonDays; i++ {
		date := start.AddDate(0, 0, i)
		ranges := pattern[date.Weekday()]
		if len(ranges) == 0 {
			continue
		}
		slots[domain.DateKey(date)] = ranges
	}

	return slots, nil
}

// Midnight truncates a timestamp to the start of its civil day,
// preserving the location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same civil date.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// BeforeDay reports whether a falls on an earlier civil date than b.
// The comparison is component-wise, so the operands may carry different
// locations: request dates parse as UTC midnights while the clock ticks
// in the platform timezone.
func BeforeDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

// DaysBetween returns the number of civil days from a to b. Both dates
// are rebuilt as UTC midnights before subtracting, so the count is exact
// across DST transitions regardless of the operands' locations.
func DaysBetween(a, b time.Time) int {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	ua := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	ub := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
