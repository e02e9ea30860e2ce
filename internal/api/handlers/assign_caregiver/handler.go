package assign_caregiver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pawspace/PetCare-BookingService/internal/api/handlers"
	"github.com/pawspace/PetCare-BookingService/internal/api/middleware"
	"github.com/pawspace/PetCare-BookingService/internal/domain"
	"github.com/pawspace/PetCare-BookingService/internal/scheduling"
	"github.com/pawspace/PetCare-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "invalid booking ID"
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user ID"
	msgNotFound           = "booking not found"
	msgCaregiverNotFound  = "caregiver not found"
	msgCaregiverInactive  = "caregiver is not active"
	msgServiceNotOffered  = "caregiver does not offer this service"
	msgForbidden          = "access denied"
	msgNoAvailability     = "caregiver has no availability on the booking date"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/assign - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/assign - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AssignCaregiverRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.AssignCaregiver(r.Context(), bookingID, req.ToServiceRequest(userID))
	if err != nil {
		var transitionErr *domain.InvalidTransitionError
		var outsideErr *scheduling.OutsideWindowsError
		var noAvailErr *scheduling.NoAvailabilityError

		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/assign - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCaregiverNotFound):
			h.logger.Warn("PATCH /bookings/{id}/assign - Caregiver not found: caregiver_id=%d", req.CaregiverID)
			handlers.RespondNotFound(w, msgCaregiverNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/assign - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrCaregiverInactive):
			h.logger.Warn("PATCH /bookings/{id}/assign - Caregiver inactive: caregiver_id=%d", req.CaregiverID)
			handlers.RespondConflict(w, msgCaregiverInactive)

		case errors.Is(err, bookings.ErrServiceNotOffered):
			h.logger.Warn("PATCH /bookings/{id}/assign - Service not offered: booking_id=%d, caregiver_id=%d",
				bookingID, req.CaregiverID)
			handlers.RespondConflict(w, msgServiceNotOffered)

		case errors.As(err, &transitionErr):
			h.logger.Warn("PATCH /bookings/{id}/assign - Invalid transition: booking_id=%d, from=%s",
				bookingID, transitionErr.From)
			handlers.RespondConflict(w, transitionErr.Error())

		case errors.As(err, &outsideErr):
			h.logger.Warn("PATCH /bookings/{id}/assign - Outside availability: booking_id=%d, caregiver_id=%d",
				bookingID, req.CaregiverID)
			handlers.RespondJSON(w, http.StatusConflict, FromOutsideWindowsError(outsideErr))

		case errors.As(err, &noAvailErr):
			h.logger.Warn("PATCH /bookings/{id}/assign - No availability: booking_id=%d, caregiver_id=%d",
				bookingID, req.CaregiverID)
			handlers.RespondConflict(w, msgNoAvailability)

		default:
			h.logger.Error("PATCH /bookings/{id}/assign - Failed to assign caregiver: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/assign - Caregiver assigned: booking_id=%d, caregiver_id=%d",
		bookingID, req.CaregiverID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
