package get_caregiver_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pawspace/PetCare-BookingService/internal/api/handlers"
	"github.com/pawspace/PetCare-BookingService/internal/api/middleware"
	"github.com/pawspace/PetCare-BookingService/internal/service/bookings"
)

const (
	msgInvalidCaregiverID = "invalid caregiver ID"
	msgMissingUserID      = "missing user ID"
	msgForbidden          = "access denied"
	msgInvalidFilter      = "invalid filter"
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

// Handle GET /api/v1/caregivers/{caregiverId}/bookings
// Query params: from, to (YYYY-MM-DD), status, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	caregiverIDStr := vars["caregiverId"]

	caregiverID, err := strconv.ParseInt(caregiverIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /caregivers/{id}/bookings - Invalid caregiver ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCaregiverID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /caregivers/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceReq, err := ToServiceRequest(userID, caregiverID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /caregivers/{id}/bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.GetCaregiverBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /caregivers/{id}/bookings - Access denied: caregiver_id=%d, user_id=%d",
				caregiverID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /caregivers/{id}/bookings - Invalid filter: caregiver_id=%d", caregiverID)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /caregivers/{id}/bookings - Failed to get bookings: caregiver_id=%d, error=%v",
				caregiverID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /caregivers/{id}/bookings - Bookings retrieved: caregiver_id=%d, count=%d",
		caregiverID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
