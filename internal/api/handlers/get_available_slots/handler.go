package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pawspace/PetCare-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/pawspace/PetCare-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidCaregiverID = "invalid caregiver ID"
	msgCaregiverNotFound  = "caregiver not found"
	msgDateInPast         = "start date is in the past"
	msgDateTooFar         = "start date is beyond the scheduling horizon"
	msgInvalidInput       = "invalid input data"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/caregivers/{caregiverId}/available-slots
// Query params: from (optional, YYYY-MM-DD), days (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	caregiverIDStr := vars["caregiverId"]

	caregiverID, err := strconv.ParseInt(caregiverIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /caregivers/{id}/available-slots - Invalid caregiver ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCaregiverID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(caregiverID, r.URL.Query().Get("from"), r.URL.Query().Get("days"))
	if err != nil {
		h.logger.Warn("GET /caregivers/{id}/available-slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrCaregiverNotFound):
			h.logger.Warn("GET /caregivers/{id}/available-slots - Caregiver not found: caregiver_id=%d", caregiverID)
			handlers.RespondNotFound(w, msgCaregiverNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /caregivers/{id}/available-slots - Date in past: caregiver_id=%d", caregiverID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /caregivers/{id}/available-slots - Date beyond horizon: caregiver_id=%d", caregiverID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /caregivers/{id}/available-slots - Invalid input: caregiver_id=%d, error=%v", caregiverID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /caregivers/{id}/available-slots - Failed to get slots: caregiver_id=%d, error=%v", caregiverID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /caregivers/{id}/available-slots - Slots retrieved: caregiver_id=%d, days_with_slots=%d",
		caregiverID, len(result.Available))
	handlers.RespondJSON(w, http.StatusOK, result)
}
