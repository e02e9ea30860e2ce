package create_booking

import (
	"fmt"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	"github.com/pawspace/PetCare-BookingService/internal/scheduling"
	"github.com/pawspace/PetCare-BookingService/pkg/types"
)

// validateRequest checks the request shape before any expansion work.
// Per-date time validation belongs to the scheduling engine; this guards
// the envelope only.
func validateRequest(req *Request) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: owner id must be positive", ErrInvalidInput)
	}
	if req.PetID <= 0 {
		return fmt.Errorf("%w: pet id must be positive", ErrInvalidInput)
	}
	if req.CaregiverID != nil && *req.CaregiverID <= 0 {
		return fmt.Errorf("%w: caregiver id must be positive", ErrInvalidInput)
	}

	if !domain.ServiceType(req.ServiceType).IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidServiceType, req.ServiceType)
	}

	if len(req.Dates) == 0 && (req.RangeStart == nil || req.RangeEnd == nil) {
		return ErrNoDatesRequested
	}
	if (req.RangeStart == nil) != (req.RangeEnd == nil) {
		return fmt.Errorf("%w: date range needs both start and end", ErrInvalidInput)
	}
	if req.RangeStart != nil && req.RangeEnd.Before(*req.RangeStart) {
		return fmt.Errorf("%w: range end before range start", ErrInvalidInput)
	}
	if len(req.Dates) > domain.MaxDatesPerRequest {
		return fmt.Errorf("%w: %d dates, limit %d", ErrTooManyDates, len(req.Dates), domain.MaxDatesPerRequest)
	}

	if req.Recurrence != nil {
		switch scheduling.Frequency(req.Recurrence.Frequency) {
		case scheduling.FrequencyWeekly, scheduling.FrequencyBiweekly, scheduling.FrequencyMonthly:
		default:
			return fmt.Errorf("%w: unknown frequency %q", ErrInvalidRecurrence, req.Recurrence.Frequency)
		}
		if req.Recurrence.EndDate.IsZero() {
			return fmt.Errorf("%w: missing end date", ErrInvalidRecurrence)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// toEngineRequest converts the request into the scheduling engine's input.
func toEngineRequest(req *Request) scheduling.Request {
	engineReq := scheduling.Request{
		Dates:        req.Dates,
		RangeStart:   req.RangeStart,
		RangeEnd:     req.RangeEnd,
		Weekdays:     req.Weekdays,
		ExcludeDates: req.ExcludeDates,
		DefaultWindow: domain.TimeRange{
			Start: types.TimeString(req.DefaultWindow.Start),
			End:   types.TimeString(req.DefaultWindow.End),
		},
	}

	if req.Recurrence != nil {
		engineReq.Recurrence = &scheduling.Recurrence{
			Frequency: scheduling.Frequency(req.Recurrence.Frequency),
			EndDate:   req.Recurrence.EndDate,
		}
	}

	if len(req.Overrides) > 0 {
		engineReq.Overrides = make(map[string]domain.TimeRange, len(req.Overrides))
		for date, window := range req.Overrides {
			engineReq.Overrides[date] = domain.TimeRange{
				Start: types.TimeString(window.Start),
				End:   types.TimeString(window.End),
			}
		}
	}

	return engineReq
}
