package create_booking

import "errors"

var (
	// ErrCaregiverNotFound is returned when the named caregiver does not exist.
	ErrCaregiverNotFound = errors.New("create_booking: caregiver not found")

	// ErrCaregiverInactive is returned when the named caregiver is not active.
	ErrCaregiverInactive = errors.New("create_booking: caregiver is not active")

	// ErrServiceNotOffered is returned when the named caregiver does not
	// offer the requested service type.
	ErrServiceNotOffered = errors.New("create_booking: caregiver does not offer this service")

	// ErrPetNotFound is returned when the owner has no such pet.
	ErrPetNotFound = errors.New("create_booking: pet not found")

	// ErrInvalidServiceType is returned for an unknown service type.
	ErrInvalidServiceType = errors.New("create_booking: invalid service type")

	// ErrNoDatesRequested is returned when the request selects no dates
	// at all (no explicit dates, no range).
	ErrNoDatesRequested = errors.New("create_booking: no dates requested")

	// ErrTooManyDates is returned when the request expands past the
	// per-request date cap.
	ErrTooManyDates = errors.New("create_booking: too many dates in one request")

	// ErrNoValidDates is returned when every requested date failed
	// validation. The response still carries the per-date failures.
	ErrNoValidDates = errors.New("create_booking: no valid dates in request")

	// ErrInvalidRecurrence is returned for an unknown frequency or an end
	// date before the base date.
	ErrInvalidRecurrence = errors.New("create_booking: invalid recurrence rule")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("create_booking: internal error")
)
