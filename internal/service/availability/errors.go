package availability

import "errors"

var (
	// ErrCaregiverNotFound is returned when the caregiver profile does not exist.
	ErrCaregiverNotFound = errors.New("caregiver not found")

	// ErrAccessDenied is returned when the actor may not edit the pattern.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidPattern is returned when the submitted pattern fails
	// validation (malformed, unsorted or overlapping ranges).
	ErrInvalidPattern = errors.New("invalid availability pattern")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("service: internal error")
)
