package update_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pawspace/PetCare-BookingService/internal/api/handlers"
	"github.com/pawspace/PetCare-BookingService/internal/api/middleware"
	"github.com/pawspace/PetCare-BookingService/internal/service/availability"
)

const (
	msgInvalidCaregiverID = "invalid caregiver ID"
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user ID"
	msgCaregiverNotFound  = "caregiver not found"
	msgForbidden          = "access denied"
	msgInvalidPattern     = "invalid availability pattern"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/caregivers/{caregiverId}/availability
//
// Replaces the whole weekly pattern. Existing bookings are not touched.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	caregiverIDStr := vars["caregiverId"]

	caregiverID, err := strconv.ParseInt(caregiverIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /caregivers/{id}/availability - Invalid caregiver ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCaregiverID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /caregivers/{id}/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /caregivers/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateAvailability(r.Context(), req.ToServiceRequest(userID, caregiverID))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrCaregiverNotFound):
			h.logger.Warn("PUT /caregivers/{id}/availability - Caregiver not found: caregiver_id=%d", caregiverID)
			handlers.RespondNotFound(w, msgCaregiverNotFound)

		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("PUT /caregivers/{id}/availability - Access denied: caregiver_id=%d, user_id=%d",
				caregiverID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrInvalidPattern), errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /caregivers/{id}/availability - Invalid pattern: caregiver_id=%d, error=%v",
				caregiverID, err)
			handlers.RespondBadRequest(w, msgInvalidPattern)

		default:
			h.logger.Error("PUT /caregivers/{id}/availability - Failed to update availability: caregiver_id=%d, error=%v",
				caregiverID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /caregivers/{id}/availability - Availability updated: caregiver_id=%d", caregiverID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
