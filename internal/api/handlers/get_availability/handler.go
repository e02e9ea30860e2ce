package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pawspace/PetCare-BookingService/internal/api/handlers"
	"github.com/pawspace/PetCare-BookingService/internal/service/availability"
)

const (
	msgInvalidCaregiverID = "invalid caregiver ID"
	msgCaregiverNotFound  = "caregiver not found"
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

// Handle GET /api/v1/caregivers/{caregiverId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	caregiverIDStr := vars["caregiverId"]

	caregiverID, err := strconv.ParseInt(caregiverIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /caregivers/{id}/availability - Invalid caregiver ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCaregiverID)
		return
	}

	result, err := h.service.GetAvailability(r.Context(), caregiverID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrCaregiverNotFound):
			h.logger.Warn("GET /caregivers/{id}/availability - Caregiver not found: caregiver_id=%d", caregiverID)
			handlers.RespondNotFound(w, msgCaregiverNotFound)

		default:
			h.logger.Error("GET /caregivers/{id}/availability - Failed to get availability: caregiver_id=%d, error=%v",
				caregiverID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /caregivers/{id}/availability - Availability retrieved: caregiver_id=%d", caregiverID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
