package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	createBooking "github.com/pawspace/PetCare-BookingService/internal/usecase/create_booking"
)

// weekdayNames maps lowercase day names to time.Weekday. Day names are
// the wire format; numeric weekdays never cross the API boundary.
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// WindowDTO is a requested time window on the wire.
type WindowDTO struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "10:00"
}

// RecurrenceDTO repeats the earliest requested date until endDate inclusive.
type RecurrenceDTO struct {
	Frequency string `json:"frequency"` // weekly, biweekly, monthly
	EndDate   string `json:"endDate"`   // "2026-04-30"
}

// CreateBookingRequest is the HTTP request model. The owner is the
// authenticated user; dates may be listed explicitly or described as a
// range with optional weekday and exclusion filters.
type CreateBookingRequest struct {
	CaregiverID *int64 `json:"caregiverId,omitempty"`
	PetID       int64  `json:"petId"`
	ServiceType string `json:"serviceType"`

	Dates        []string       `json:"dates,omitempty"`
	RangeStart   *string        `json:"rangeStart,omitempty"`
	RangeEnd     *string        `json:"rangeEnd,omitempty"`
	Weekdays     []string       `json:"weekdays,omitempty"`
	ExcludeDates []string       `json:"excludeDates,omitempty"`
	Recurrence   *RecurrenceDTO `json:"recurrence,omitempty"`

	Window    WindowDTO            `json:"window"`
	Overrides map[string]WindowDTO `json:"overrides,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing every date and weekday name.
func (r *CreateBookingRequest) ToUseCaseRequest(ownerID int64) (*createBooking.Request, error) {
	req := &createBooking.Request{
		OwnerID:     ownerID,
		CaregiverID: r.CaregiverID,
		PetID:       r.PetID,
		ServiceType: r.ServiceType,
		DefaultWindow: createBooking.Window{
			Start: r.Window.StartTime,
			End:   r.Window.EndTime,
		},
		Notes: r.Notes,
	}

	var err error
	if req.Dates, err = parseDates(r.Dates); err != nil {
		return nil, err
	}
	if req.ExcludeDates, err = parseDates(r.ExcludeDates); err != nil {
		return nil, err
	}
	if req.RangeStart, err = parseDatePtr(r.RangeStart); err != nil {
		return nil, err
	}
	if req.RangeEnd, err = parseDatePtr(r.RangeEnd); err != nil {
		return nil, err
	}

	for _, name := range r.Weekdays {
		day, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		req.Weekdays = append(req.Weekdays, day)
	}

	if r.Recurrence != nil {
		endDate, err := time.Parse(domain.DateFormat, r.Recurrence.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid recurrence end date %q", r.Recurrence.EndDate)
		}
		req.Recurrence = &createBooking.RecurrenceRule{
			Frequency: r.Recurrence.Frequency,
			EndDate:   endDate,
		}
	}

	if len(r.Overrides) > 0 {
		req.Overrides = make(map[string]createBooking.Window, len(r.Overrides))
		for date, window := range r.Overrides {
			if _, err := time.Parse(domain.DateFormat, date); err != nil {
				return nil, fmt.Errorf("invalid override date %q", date)
			}
			req.Overrides[date] = createBooking.Window{
				Start: window.StartTime,
				End:   window.EndTime,
			}
		}
	}

	return req, nil
}

func parseDates(dates []string) ([]time.Time, error) {
	if len(dates) == 0 {
		return nil, nil
	}

	parsed := make([]time.Time, len(dates))
	for i, date := range dates {
		d, err := time.Parse(domain.DateFormat, date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
		}
		parsed[i] = d
	}
	return parsed, nil
}

func parseDatePtr(date *string) (*time.Time, error) {
	if date == nil {
		return nil, nil
	}

	d, err := time.Parse(domain.DateFormat, *date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", *date)
	}
	return &d, nil
}

// BookingDTO is one created booking in the HTTP response.
type BookingDTO struct {
	ID                int64   `json:"id"`
	Date              string  `json:"date"`
	StartTime         string  `json:"startTime"`
	EndTime           string  `json:"endTime"`
	Status            string  `json:"status"`
	CaregiverID       *int64  `json:"caregiverId,omitempty"`
	RecurrenceGroupID *string `json:"recurrenceGroupId,omitempty"`
}

// FailureDTO is one requested date that did not validate.
type FailureDTO struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason"`
}

// CreateBookingResponse is the HTTP response model for the batch outcome.
type CreateBookingResponse struct {
	OwnerID  int64        `json:"ownerId"`
	Bookings []BookingDTO `json:"bookings"`
	Failures []FailureDTO `json:"failures"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	out := &CreateBookingResponse{
		OwnerID:  resp.OwnerID,
		Bookings: make([]BookingDTO, len(resp.Bookings)),
		Failures: make([]FailureDTO, len(resp.Failures)),
	}

	for i, b := range resp.Bookings {
		out.Bookings[i] = BookingDTO{
			ID:                b.ID,
			Date:              b.Date,
			StartTime:         b.StartTime,
			EndTime:           b.EndTime,
			Status:            b.Status,
			CaregiverID:       b.CaregiverID,
			RecurrenceGroupID: b.RecurrenceGroupID,
		}
	}
	for i, f := range resp.Failures {
		out.Failures[i] = FailureDTO{
			Date:      f.Date,
			StartTime: f.StartTime,
			EndTime:   f.EndTime,
			Reason:    f.Reason,
		}
	}

	return out
}
