package get_available_slots

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	getAvailableSlots "github.com/pawspace/PetCare-BookingService/internal/usecase/get_available_slots"
)

// ToUseCaseRequest builds the use case request from the URL and query
// parameters. Empty from and days keep the use case defaults.
func ToUseCaseRequest(caregiverID int64, fromStr, daysStr string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{
		CaregiverID: caregiverID,
	}

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", fromStr)
		}
		req.From = &from
	}

	if daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return nil, fmt.Errorf("invalid days %q", daysStr)
		}
		req.Days = &days
	}

	return req, nil
}
