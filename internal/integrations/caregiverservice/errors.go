package caregiverservice

import "errors"

var (
	// ErrCaregiverNotFound is returned when no caregiver profile exists.
	ErrCaregiverNotFound = errors.New("caregiver not found")

	// ErrInternal is returned on client-side failures.
	ErrInternal = errors.New("caregiverservice client: internal error")

	// ErrInvalidResponse is returned when CaregiverService answers with an
	// unexpected status or an unparseable body.
	ErrInvalidResponse = errors.New("caregiverservice client: invalid response")
)
