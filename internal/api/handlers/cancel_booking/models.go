package cancel_booking

import (
	"github.com/pawspace/PetCare-BookingService/internal/service/bookings/models"
)

// CancelBookingRequest is the HTTP request model.
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service model.
// The acting user comes from the auth middleware, not the body.
func (r *CancelBookingRequest) ToServiceRequest(userID int64) *models.CancelBookingRequest {
	reason := ""
	if r.CancellationReason != nil {
		reason = *r.CancellationReason
	}

	return &models.CancelBookingRequest{
		UserID:             userID,
		CancellationReason: reason,
	}
}
