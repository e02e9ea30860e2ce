package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/pawspace/PetCare-BookingService/pkg/types"
)

var (
	// ErrMalformedRange is returned when a time range has missing endpoints or end <= start.
	ErrMalformedRange = errors.New("domain: malformed time range")

	// ErrOverlappingRanges is returned when a weekday holds overlapping intervals.
	ErrOverlappingRanges = errors.New("domain: overlapping time ranges")
)

// TimeRange is a half-open wall-clock interval [Start, End) within one day.
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// Validate checks both endpoints are present, well-formed and Start < End.
func (r TimeRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: missing endpoint", ErrMalformedRange)
	}
	if err := r.Start.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRange, err)
	}
	if err := r.End.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRange, err)
	}
	if !r.Start.IsBefore(r.End) {
		return fmt.Errorf("%w: %s is not before %s", ErrMalformedRange, r.Start, r.End)
	}
	return nil
}

// Contains reports whether other lies fully within r.
// Containment within a single range is the booking rule: an interval
// spanning two adjacent availability blocks is not bookable.
func (r TimeRange) Contains(other TimeRange) bool {
	return !other.Start.IsBefore(r.Start) && !r.End.IsBefore(other.End)
}

// Overlaps reports whether r and other share any time.
// Touching endpoints do not count as overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.IsBefore(other.End) && other.Start.IsBefore(r.End)
}

// String formats the range as "HH:MM–HH:MM" for user-facing messages.
func (r TimeRange) String() string {
	return fmt.Sprintf("%s–%s", r.Start, r.End)
}

// WeeklyPattern is a caregiver's recurring availability: for each weekday,
// an ordered list of open time ranges in the caregiver's local civil time.
// Weekdays without entries carry no availability.
//
// The pattern is a live document owned by the caregiver. It is validated
// once at the boundary; code past the boundary may assume ranges are
// well-formed, sorted and non-overlapping.
type WeeklyPattern map[time.Weekday][]TimeRange

// Validate checks every range and that ranges within a day are sorted
// and pairwise non-overlapping.
func (p WeeklyPattern) Validate() error {
	for day, ranges := range p {
		for i, r := range ranges {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("%s[%d]: %w", day, i, err)
			}
			if i > 0 {
				prev := ranges[i-1]
				if r.Start.IsBefore(prev.Start) {
					return fmt.Errorf("%s[%d]: %w: ranges out of order", day, i, ErrOverlappingRanges)
				}
				if prev.Overlaps(r) {
					return fmt.Errorf("%s[%d]: %w: %s overlaps %s", day, i, ErrOverlappingRanges, prev, r)
				}
			}
		}
	}
	return nil
}

// IsEmpty reports whether no weekday carries any availability.
func (p WeeklyPattern) IsEmpty() bool {
	for _, ranges := range p {
		if len(ranges) > 0 {
			return false
		}
	}
	return true
}

// DailySlots maps concrete calendar dates (formatted with DateFormat) to
// the availability ranges applicable on that date. Derived from a
// WeeklyPattern over a bounded horizon; dates without availability are
// absent, never present with an empty list.
type DailySlots map[string][]TimeRange

// DateKey formats a date for DailySlots lookup.
func DateKey(date time.Time) string {
	return date.Format(DateFormat)
}

// ForDate returns the slots applicable on the given date.
// A missing entry yields a nil slice, which readers treat as "no availability".
func (s DailySlots) ForDate(date time.Time) []TimeRange {
	return s[DateKey(date)]
}
