package scheduling

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
)

var (
	// ErrNegativeHorizon is a precondition violation: expansion horizons must be positive.
	ErrNegativeHorizon = errors.New("scheduling: horizon must be positive")

	// ErrDateInPast is returned for candidate dates before today.
	ErrDateInPast = errors.New("scheduling: date is in the past")

	// ErrBeyondHorizon is returned for candidate dates past the booking horizon.
	ErrBeyondHorizon = errors.New("scheduling: date is beyond the booking horizon")

	// ErrInvalidRecurrence is returned for unknown recurrence frequencies or
	// an end date before the base date.
	ErrInvalidRecurrence = errors.New("scheduling: invalid recurrence rule")

	// ErrNoDates is returned when a request resolves to zero candidate dates.
	ErrNoDates = errors.New("scheduling: request resolves to no dates")
)

// MalformedIntervalError reports a proposed interval with missing endpoints
// or end <= start. This is an input error, not a scheduling outcome.
type MalformedIntervalError struct {
	Proposed domain.TimeRange
}

func (e *MalformedIntervalError) Error() string {
	return fmt.Sprintf("malformed interval %s–%s: end must be after start", e.Proposed.Start, e.Proposed.End)
}

// NoAvailabilityError reports that the caregiver has no open windows at all
// on the requested date. There are no alternatives to enumerate.
type NoAvailabilityError struct {
	Date string
}

func (e *NoAvailabilityError) Error() string {
	return fmt.Sprintf("no availability on %s", e.Date)
}

// OutsideWindowsError reports an interval that is not fully contained in any
// single availability window. It carries the day's actual windows so the
// caller can offer alternatives.
type OutsideWindowsError struct {
	Date     string
	Proposed domain.TimeRange
	Windows  []domain.TimeRange
}

func (e *OutsideWindowsError) Error() string {
	formatted := make([]string, len(e.Windows))
	for i, w := range e.Windows {
		formatted[i] = w.String()
	}
	return fmt.Sprintf("interval %s on %s is outside the available windows (%s)",
		e.Proposed, e.Date, strings.Join(formatted, ", "))
}
