package get_available_slots

import "errors"

var (
	// ErrCaregiverNotFound is returned when the caregiver does not exist.
	ErrCaregiverNotFound = errors.New("caregiver not found")

	// ErrInvalidDate is returned for a start date in the past.
	ErrInvalidDate = errors.New("invalid start date")

	// ErrDateTooFarInFuture is returned when the requested window reaches
	// past the booking horizon.
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("usecase: internal error")
)
