package scheduling

import (
	"time"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
)

// RefundOutcome is the result of evaluating a cancellation against the
// refund policy. It is derived, not stored on its own; callers record the
// tier and fraction on the booking and hand the fraction to settlement.
type RefundOutcome struct {
	Tier     domain.RefundTier
	Fraction float64
}

// EvaluateRefund determines the refund tier for cancelling a booking that
// starts at bookingStart, at the moment cancelledAt. Both timestamps must
// be in the platform's civil time zone; the noon cutoff is a wall-clock
// boundary, not a UTC one.
//
// The full-refund cutoff is 12:00 noon on the calendar day before the
// booking's start date:
//
//   - FULL: cancelledAt is at or before the cutoff. The boundary is
//     inclusive; cancelling at exactly 12:00:00 still refunds in full,
//     so the outcome never oscillates on sub-second timing.
//   - HALF: after the cutoff but still strictly before the start instant.
//   - NONE: at or after the start instant.
func EvaluateRefund(bookingStart, cancelledAt time.Time) RefundOutcome {
	y, m, d := bookingStart.Date()
	noonDayBefore := time.Date(y, m, d, 12, 0, 0, 0, bookingStart.Location()).AddDate(0, 0, -1)

	if !cancelledAt.After(noonDayBefore) {
		return outcome(domain.RefundFull)
	}

	if cancelledAt.Before(bookingStart) {
		return outcome(domain.RefundHalf)
	}

	return outcome(domain.RefundNone)
}

func outcome(tier domain.RefundTier) RefundOutcome {
	return RefundOutcome{Tier: tier, Fraction: tier.Fraction()}
}
