package scheduling

import (
	"time"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
)

// ValidateInterval checks whether a proposed booking interval fits the
// availability on one date. Rules apply in order:
//
//  1. Both endpoints present and end > start, else *MalformedIntervalError.
//  2. The date must have at least one open window, else *NoAvailabilityError.
//  3. The interval must be fully contained within a single window, else
//     *OutsideWindowsError carrying the day's actual windows.
//
// Containment within one window is deliberate: an interval that starts in
// one availability block and bleeds across the gap into the next block is
// rejected even though every minute of it overlaps some window.
func ValidateInterval(date time.Time, proposed domain.TimeRange, slots []domain.TimeRange) error {
	if err := proposed.Validate(); err != nil {
		return &MalformedIntervalError{Proposed: proposed}
	}

	if len(slots) == 0 {
		return &NoAvailabilityError{Date: domain.DateKey(date)}
	}

	for _, slot := range slots {
		if slot.Contains(proposed) {
			return nil
		}
	}

	return &OutsideWindowsError{
		Date:     domain.DateKey(date),
		Proposed: proposed,
		Windows:  slots,
	}
}
