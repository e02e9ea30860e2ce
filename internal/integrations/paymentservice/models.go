package paymentservice

// RefundRequest asks PaymentService to refund a share of a booking's price.
type RefundRequest struct {
	BookingID int64   `json:"booking_id"`
	OwnerID   int64   `json:"owner_id"`
	Tier      string  `json:"tier"`     // full, half, none
	Fraction  float64 `json:"fraction"` // 1.0, 0.5, 0.0
	Reason    string  `json:"reason"`
}

// RefundResponse is PaymentService's acknowledgement.
type RefundResponse struct {
	RefundID string `json:"refund_id"`
	Status   string `json:"status"`
}

// ErrorResponse is PaymentService's error envelope.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
