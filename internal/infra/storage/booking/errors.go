package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking row matches the query.
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrTransaction is returned on transaction failures.
	ErrTransaction = errors.New("booking.repository: transaction error")

	// ErrBuildQuery is returned when the SQL builder fails.
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
