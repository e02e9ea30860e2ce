package update_booking_status

import (
	"github.com/pawspace/PetCare-BookingService/internal/service/bookings/models"
)

// UpdateStatusRequest is the HTTP request model.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *UpdateStatusRequest) ToServiceRequest(userID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID: userID,
		Status: r.Status,
	}
}
