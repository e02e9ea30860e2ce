package assign_caregiver

import (
	"github.com/pawspace/PetCare-BookingService/internal/scheduling"
	"github.com/pawspace/PetCare-BookingService/internal/service/bookings/models"
)

// AssignCaregiverRequest is the HTTP request model. The caregiver being
// assigned must be the authenticated user; the explicit field keeps the
// intent visible in the request body.
type AssignCaregiverRequest struct {
	CaregiverID int64 `json:"caregiverId"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *AssignCaregiverRequest) ToServiceRequest(userID int64) *models.AssignCaregiverRequest {
	return &models.AssignCaregiverRequest{
		UserID:      userID,
		CaregiverID: r.CaregiverID,
	}
}

// WindowDTO is one availability window in a conflict response.
type WindowDTO struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// OutsideWindowsResponse explains an assignment rejected because the
// booking window does not fit the caregiver's availability. It carries
// the day's actual windows so the client can offer alternatives.
type OutsideWindowsResponse struct {
	Error            string      `json:"error"`
	Date             string      `json:"date"`
	Proposed         WindowDTO   `json:"proposed"`
	AvailableWindows []WindowDTO `json:"availableWindows"`
}

// FromOutsideWindowsError converts the scheduling error into the HTTP model.
func FromOutsideWindowsError(e *scheduling.OutsideWindowsError) *OutsideWindowsResponse {
	windows := make([]WindowDTO, len(e.Windows))
	for i, w := range e.Windows {
		windows[i] = WindowDTO{
			StartTime: w.Start.String(),
			EndTime:   w.End.String(),
		}
	}

	return &OutsideWindowsResponse{
		Error: "booking window is outside the caregiver's availability",
		Date:  e.Date,
		Proposed: WindowDTO{
			StartTime: e.Proposed.Start.String(),
			EndTime:   e.Proposed.End.String(),
		},
		AvailableWindows: windows,
	}
}
