package domain

// Default configuration values
const (
	DefaultHorizonDays = 90 // how far ahead availability is expanded and bookings accepted
)

// Business validation constants
const (
	MinHorizonDays              = 1
	MaxHorizonDays              = 365
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxDatesPerRequest          = 62 // two months of daily visits in one submission
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists statuses excluded from a caregiver's working calendar.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses lists statuses that occupy a caregiver's calendar.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusAssigned,
	StatusConfirmed,
	StatusCompleted,
}
