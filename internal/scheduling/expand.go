package scheduling

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	"github.com/pawspace/PetCare-BookingService/pkg/types"
)

// Frequency is a supported recurrence interval.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// ErrStartInPast is returned for a same-day window that starts before now.
var ErrStartInPast = errors.New("scheduling: start time is in the past")

// Recurrence repeats the base date at a fixed frequency until EndDate inclusive.
type Recurrence struct {
	Frequency Frequency
	EndDate   time.Time
}

// Request is the ephemeral input of booking request expansion.
type Request struct {
	// Explicit target dates.
	Dates []time.Time

	// Inclusive date range, enumerated day by day. May be combined with Dates.
	RangeStart *time.Time
	RangeEnd   *time.Time

	// Optional weekday filter applied to the date set above.
	Weekdays []time.Weekday

	// Dates dropped from the final set.
	ExcludeDates []time.Time

	// Optional recurrence: repeats the earliest selected date.
	Recurrence *Recurrence

	// Time window applied to every date without an override.
	DefaultWindow domain.TimeRange

	// Per-date window overrides, keyed by domain.DateKey.
	Overrides map[string]domain.TimeRange
}

// Intent is one validated (date, window) pair, ready to become a Booking.
type Intent struct {
	Date   time.Time
	Window domain.TimeRange
}

// FailedDate is one candidate date that did not validate, with the reason.
type FailedDate struct {
	Date   string
	Window domain.TimeRange
	Reason error
}

// Result carries both outcomes of a batch expansion. Partial success is a
// normal result, not an error: whether a partial batch is acceptable is the
// caller's policy, never the engine's.
type Result struct {
	Intents  []Intent
	Failures []FailedDate
}

// ExpandParams supplies the environment the expansion is evaluated against.
type ExpandParams struct {
	// Now is the current instant; its civil date is "today".
	Now time.Time

	// HorizonDays bounds how far ahead a date may be booked.
	HorizonDays int

	// Slots is the caregiver's resolved availability. Consulted only when
	// CheckSlots is set; unassigned requests have no caregiver to check.
	Slots      domain.DailySlots
	CheckSlots bool
}

// ExpandRequest turns a booking request into per-date intents.
//
// The date set is the union of explicit dates and the enumerated range,
// filtered by the optional weekday set, minus exclusions, de-duplicated by
// date and sorted ascending. Recurrence generates further dates from the
// earliest selected date. Every date is then validated independently
// (past/horizon bounds, window shape, slot containment); failures are
// collected alongside the successes and never abort the batch.
//
// Identical inputs always produce identical results.
func ExpandRequest(req Request, p ExpandParams) (Result, error) {
	if p.HorizonDays <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrNegativeHorizon, p.HorizonDays)
	}

	dates, err := resolveDates(req)
	if err != nil {
		return Result{}, err
	}
	if len(dates) == 0 {
		return Result{}, ErrNoDates
	}

	today := Midnight(p.Now)
	horizonEnd := today.AddDate(0, 0, p.HorizonDays) // exclusive

	result := Result{
		Intents:  make([]Intent, 0, len(dates)),
		Failures: make([]FailedDate, 0),
	}

	for _, date := range dates {
		window := req.DefaultWindow
		if override, ok := req.Overrides[domain.DateKey(date)]; ok {
			window = override
		}

		if err := validateCandidate(date, window, today, horizonEnd, p); err != nil {
			result.Failures = append(result.Failures, FailedDate{
				Date:   domain.DateKey(date),
				Window: window,
				Reason: err,
			})
			continue
		}

		result.Intents = append(result.Intents, Intent{Date: date, Window: window})
	}

	return result, nil
}

func validateCandidate(date time.Time, window domain.TimeRange, today, horizonEnd time.Time, p ExpandParams) error {
	if err := window.Validate(); err != nil {
		return &MalformedIntervalError{Proposed: window}
	}

	// Civil-date comparisons: the candidate parses as a UTC midnight
	// while the clock runs in the platform timezone.
	if BeforeDay(date, today) {
		return ErrDateInPast
	}
	if !BeforeDay(date, horizonEnd) {
		return fmt.Errorf("%w: %s", ErrBeyondHorizon, domain.DateKey(date))
	}
	if SameDay(date, p.Now) && window.Start.IsBefore(types.NewTimeString(p.Now)) {
		return ErrStartInPast
	}

	if p.CheckSlots {
		return ValidateInterval(date, window, p.Slots.ForDate(date))
	}
	return nil
}

// resolveDates builds the deterministic, de-duplicated, sorted date set.
func resolveDates(req Request) ([]time.Time, error) {
	seen := make(map[string]time.Time)

	add := func(d time.Time) {
		d = Midnight(d)
		seen[domain.DateKey(d)] = d
	}

	for _, d := range req.Dates {
		add(d)
	}

	if req.RangeStart != nil && req.RangeEnd != nil {
		start := Midnight(*req.RangeStart)
		end := Midnight(*req.RangeEnd)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			add(d)
		}
	}

	if len(req.Weekdays) > 0 {
		allowed := make(map[time.Weekday]struct{}, len(req.Weekdays))
		for _, wd := range req.Weekdays {
			allowed[wd] = struct{}{}
		}
		for key, d := range seen {
			if _, ok := allowed[d.Weekday()]; !ok {
				delete(seen, key)
			}
		}
	}

	if req.Recurrence != nil {
		base, ok := earliest(seen)
		if !ok {
			return nil, ErrNoDates
		}
		generated, err := expandRecurrence(base, *req.Recurrence)
		if err != nil {
			return nil, err
		}
		for _, d := range generated {
			add(d)
		}
	}

	for _, d := range req.ExcludeDates {
		delete(seen, domain.DateKey(Midnight(d)))
	}

	dates := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	return dates, nil
}

// expandRecurrence repeats base at the rule's frequency until EndDate
// inclusive. The base date itself is already in the set; only subsequent
// occurrences are returned.
//
// Monthly recurrence keeps the base day-of-month and clamps to the last day
// of shorter months, so a base on the 31st lands on Feb 28/29, Apr 30 and
// so on. Clamping is computed from the base every step; the day never
// drifts downward permanently.
func expandRecurrence(base time.Time, rule Recurrence) ([]time.Time, error) {
	end := Midnight(rule.EndDate)
	if end.Before(base) {
		return nil, fmt.Errorf("%w: end date %s before base date %s",
			ErrInvalidRecurrence, domain.DateKey(end), domain.DateKey(base))
	}

	var dates []time.Time

	switch rule.Frequency {
	case FrequencyWeekly, FrequencyBiweekly:
		step := 7
		if rule.Frequency == FrequencyBiweekly {
			step = 14
		}
		for d := base.AddDate(0, 0, step); !d.After(end); d = d.AddDate(0, 0, step) {
			dates = append(dates, d)
		}
	case FrequencyMonthly:
		for n := 1; ; n++ {
			d := addMonthsClamped(base, n)
			if d.After(end) {
				break
			}
			dates = append(dates, d)
		}
	default:
		return nil, fmt.Errorf("%w: unknown frequency %q", ErrInvalidRecurrence, rule.Frequency)
	}

	return dates, nil
}

// addMonthsClamped adds n months keeping the base day-of-month, clamped to
// the target month's last day. time.AddDate would normalize Jan 31 + 1
// month into March; that is exactly the behavior being avoided here.
func addMonthsClamped(base time.Time, n int) time.Time {
	y, m, day := base.Date()
	firstOfTarget := time.Date(y, m, 1, 0, 0, 0, 0, base.Location()).AddDate(0, n, 0)

	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, base.Location())
}

func earliest(dates map[string]time.Time) (time.Time, bool) {
	var min time.Time
	found := false
	for _, d := range dates {
		if !found || d.Before(min) {
			min = d
			found = true
		}
	}
	return min, found
}
