package models

import (
	"errors"
	"time"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status string.
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// CancelBookingRequest asks to cancel a booking on behalf of its owner.
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest moves a booking along its lifecycle.
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// AssignCaregiverRequest attaches a caregiver to a pending booking.
type AssignCaregiverRequest struct {
	UserID      int64 `json:"userId"`
	CaregiverID int64 `json:"caregiverId"`
}

// GetOwnerBookingsRequest lists an owner's booking history.
type GetOwnerBookingsRequest struct {
	UserID  int64   `json:"userId"`
	OwnerID int64   `json:"ownerId"`
	Status  *string `json:"status,omitempty"`
}

// GetCaregiverBookingsRequest lists a caregiver's calendar with filters.
type GetCaregiverBookingsRequest struct {
	UserID          int64      `json:"userId"`
	CaregiverID     int64      `json:"caregiverId"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into a domain filter.
func (r *GetCaregiverBookingsRequest) ToDomainFilter() (domain.CaregiverBookingsFilter, error) {
	filter := domain.CaregiverBookingsFilter{
		CaregiverID:     r.CaregiverID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// BookingResponse is the booking DTO returned to clients.
type BookingResponse struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"ownerId"`
	CaregiverID *int64 `json:"caregiverId,omitempty"`
	PetID       int64  `json:"petId"`
	ServiceType string `json:"serviceType"`

	BookingDate string `json:"bookingDate"` // "2026-03-10"
	StartTime   string `json:"startTime"`   // "09:00"
	EndTime     string `json:"endTime"`     // "10:00"
	Status      string `json:"status"`

	RecurrenceGroupID *string `json:"recurrenceGroupId,omitempty"`

	PetName    string  `json:"petName"`
	PetSpecies string  `json:"petSpecies"`
	Notes      *string `json:"notes,omitempty"`

	CancellationReason *string  `json:"cancellationReason,omitempty"`
	CancelledAt        *string  `json:"cancelledAt,omitempty"` // RFC 3339
	RefundTier         *string  `json:"refundTier,omitempty"`
	RefundFraction     *float64 `json:"refundFraction,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse wraps a booking list.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CancelBookingResponse reports the cancellation outcome including the
// refund tier the policy picked.
type CancelBookingResponse struct {
	ID             int64   `json:"id"`
	Status         string  `json:"status"`
	RefundTier     string  `json:"refundTier"`
	RefundFraction float64 `json:"refundFraction"`
	CancelledAt    string  `json:"cancelledAt"` // RFC 3339
}

// Conversion

// FromDomainBooking converts a domain booking into its DTO.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		OwnerID:            b.OwnerID,
		CaregiverID:        b.CaregiverID,
		PetID:              b.PetID,
		ServiceType:        string(b.ServiceType),
		BookingDate:        b.Date.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		Status:             string(b.Status),
		RecurrenceGroupID:  b.RecurrenceGroupID,
		PetName:            b.PetName,
		PetSpecies:         b.PetSpecies,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}
	if b.RefundTier != nil {
		tierStr := string(*b.RefundTier)
		resp.RefundTier = &tierStr
	}
	resp.RefundFraction = b.RefundFraction

	return resp
}

// FromDomainBookingList converts a list of domain bookings.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus validates and converts a status string.
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
