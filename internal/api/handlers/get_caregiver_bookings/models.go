package get_caregiver_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	"github.com/pawspace/PetCare-BookingService/internal/service/bookings/models"
)

// ToServiceRequest builds the service request from the URL and query
// parameters. All filters are optional.
func ToServiceRequest(userID, caregiverID int64, query url.Values) (*models.GetCaregiverBookingsRequest, error) {
	req := &models.GetCaregiverBookingsRequest{
		UserID:      userID,
		CaregiverID: caregiverID,
	}

	var err error
	if req.StartDate, err = parseDatePtr(query.Get("from")); err != nil {
		return nil, err
	}
	if req.EndDate, err = parseDatePtr(query.Get("to")); err != nil {
		return nil, err
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := query.Get("includeInactive"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive %q", raw)
		}
		req.IncludeInactive = include
	}

	return req, nil
}

func parseDatePtr(date string) (*time.Time, error) {
	if date == "" {
		return nil, nil
	}

	d, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return &d, nil
}
