package update_availability

import (
	"github.com/pawspace/PetCare-BookingService/internal/service/availability/models"
)

// UpdateAvailabilityRequest is the HTTP request model. The pattern is
// keyed by lowercase day name; days omitted become unavailable.
type UpdateAvailabilityRequest struct {
	Pattern models.WeeklyPatternDTO `json:"pattern"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *UpdateAvailabilityRequest) ToServiceRequest(userID, caregiverID int64) *models.UpdateAvailabilityRequest {
	return &models.UpdateAvailabilityRequest{
		UserID:      userID,
		CaregiverID: caregiverID,
		Pattern:     r.Pattern,
	}
}
