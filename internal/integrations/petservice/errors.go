package petservice

import "errors"

var (
	// ErrPetNotFound is returned when the owner has no pet with the given id.
	ErrPetNotFound = errors.New("pet not found for owner")

	// ErrInternal is returned on client-side failures.
	ErrInternal = errors.New("petservice client: internal error")

	// ErrInvalidResponse is returned when PetService answers with an
	// unexpected status or an unparseable body.
	ErrInvalidResponse = errors.New("petservice client: invalid response")

	// ErrServiceDegraded signals that PetService was unreachable and the
	// caller should proceed without the pet profile.
	ErrServiceDegraded = errors.New("petservice unavailable: graceful degradation applied")
)
