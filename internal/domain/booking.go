package domain

import (
	"time"

	"github.com/pawspace/PetCare-BookingService/pkg/types"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"   // awaiting a caregiver match
	StatusAssigned  BookingStatus = "assigned"  // caregiver attached, awaiting confirmation
	StatusConfirmed BookingStatus = "confirmed" // both parties committed
	StatusCompleted BookingStatus = "completed" // service delivered, terminal
	StatusCancelled BookingStatus = "cancelled" // terminal
)

// RefundTier is the cancellation outcome band.
type RefundTier string

const (
	RefundFull RefundTier = "full"
	RefundHalf RefundTier = "half"
	RefundNone RefundTier = "none"
)

// Fraction returns the refunded share of the booking price for the tier.
func (t RefundTier) Fraction() float64 {
	switch t {
	case RefundFull:
		return 1.0
	case RefundHalf:
		return 0.5
	default:
		return 0.0
	}
}

// ServiceType enumerates the marketplace services a booking can be for.
type ServiceType string

const (
	ServiceWalking  ServiceType = "walking"
	ServiceSitting  ServiceType = "sitting"
	ServiceBoarding ServiceType = "boarding"
	ServiceDaycare  ServiceType = "daycare"
	ServiceGrooming ServiceType = "grooming"
)

// ValidServiceTypes lists every accepted service type.
var ValidServiceTypes = []ServiceType{
	ServiceWalking,
	ServiceSitting,
	ServiceBoarding,
	ServiceDaycare,
	ServiceGrooming,
}

// IsValid reports whether the service type is one of the known values.
func (s ServiceType) IsValid() bool {
	for _, v := range ValidServiceTypes {
		if s == v {
			return true
		}
	}
	return false
}

// Booking is one reserved (date, time window) for one pet with one caregiver.
// A multi-date request produces several independent Booking rows sharing a
// RecurrenceGroupID; they carry no transactional fate together.
type Booking struct {
	ID          int64
	OwnerID     int64
	CaregiverID *int64 // nil until a caregiver is matched
	PetID       int64
	ServiceType ServiceType

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    BookingStatus

	RecurrenceGroupID *string // uuid shared by bookings expanded from one request

	// Denormalized for history
	PetName    string
	PetSpecies string
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time
	RefundTier         *RefundTier
	RefundFraction     *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window returns the booked time range.
func (b *Booking) Window() TimeRange {
	return TimeRange{Start: b.StartTime, End: b.EndTime}
}

// IsActive reports whether the booking still occupies the calendar.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsTerminal reports whether no further transition is possible.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanBeCancelled reports whether cancellation is a legal transition.
func (b *Booking) CanBeCancelled() bool {
	return CanTransition(b.Status, StatusCancelled)
}

// StartInstant combines the booking date and start time into a concrete
// instant in the given location.
func (b *Booking) StartInstant(loc *time.Location) (time.Time, error) {
	return b.StartTime.At(b.Date, loc)
}

// CaregiverBookingsFilter narrows caregiver calendar queries.
type CaregiverBookingsFilter struct {
	CaregiverID     int64
	StartDate       *time.Time // inclusive, nil = unbounded
	EndDate         *time.Time // inclusive, nil = unbounded
	Status          *BookingStatus
	IncludeInactive bool // include cancelled bookings
}
