package paymentservice

import "errors"

var (
	// ErrInternal is returned on client-side failures.
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse is returned when PaymentService answers with an
	// unexpected status or an unparseable body.
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")

	// ErrServiceDegraded signals that PaymentService was unreachable.
	// The cancellation still commits; the refund is retried out of band.
	ErrServiceDegraded = errors.New("paymentservice unavailable: graceful degradation applied")
)
