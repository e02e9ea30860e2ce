package create_booking

import (
	"time"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	"github.com/pawspace/PetCare-BookingService/internal/scheduling"
)

// Window is a requested time window for one or all dates.
type Window struct {
	Start string // "09:00"
	End   string // "10:00"
}

// RecurrenceRule repeats the earliest requested date until EndDate inclusive.
type RecurrenceRule struct {
	Frequency string // weekly, biweekly, monthly
	EndDate   time.Time
}

// Request is a booking request: one pet, one service type, one or many
// dates, optionally addressed to a specific caregiver.
type Request struct {
	OwnerID     int64
	CaregiverID *int64 // nil: open request, matched later
	PetID       int64
	ServiceType string

	Dates        []time.Time
	RangeStart   *time.Time
	RangeEnd     *time.Time
	Weekdays     []time.Weekday
	ExcludeDates []time.Time
	Recurrence   *RecurrenceRule

	DefaultWindow Window
	Overrides     map[string]Window // keyed by "2006-01-02"

	Notes *string
}

// CreatedBooking is one booking produced by the request.
type CreatedBooking struct {
	ID                int64
	Date              string // "2026-03-10"
	StartTime         string
	EndTime           string
	Status            string
	CaregiverID       *int64
	RecurrenceGroupID *string
}

// FailedDate is one requested date that did not validate.
type FailedDate struct {
	Date      string
	StartTime string
	EndTime   string
	Reason    string
}

// Response carries both halves of the batch outcome. Failures are data;
// the request as a whole succeeds as long as at least one date did.
type Response struct {
	OwnerID  int64
	Bookings []CreatedBooking
	Failures []FailedDate
}

func failureFromEngine(f scheduling.FailedDate) FailedDate {
	return FailedDate{
		Date:      f.Date,
		StartTime: f.Window.Start.String(),
		EndTime:   f.Window.End.String(),
		Reason:    f.Reason.Error(),
	}
}

func createdFromDomain(b *domain.Booking) CreatedBooking {
	return CreatedBooking{
		ID:                b.ID,
		Date:              b.Date.Format(domain.DateFormat),
		StartTime:         b.StartTime.String(),
		EndTime:           b.EndTime.String(),
		Status:            string(b.Status),
		CaregiverID:       b.CaregiverID,
		RecurrenceGroupID: b.RecurrenceGroupID,
	}
}
