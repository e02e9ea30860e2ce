package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCaregiverNotFound is returned when the caregiver profile does not exist.
	ErrCaregiverNotFound = errors.New("caregiver not found")

	// ErrCaregiverInactive is returned when the caregiver has deactivated
	// their profile.
	ErrCaregiverInactive = errors.New("caregiver is not active")

	// ErrServiceNotOffered is returned when the caregiver does not offer
	// the booking's service type.
	ErrServiceNotOffered = errors.New("caregiver does not offer this service")

	// ErrAccessDenied is returned when the actor may not touch the booking.
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the booking is already terminal.
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidStatus is returned for an unknown or unreachable target status.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("service: internal error")
)
