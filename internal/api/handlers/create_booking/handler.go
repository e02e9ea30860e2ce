package create_booking

import (
	"errors"
	"net/http"

	"github.com/pawspace/PetCare-BookingService/internal/api/handlers"
	"github.com/pawspace/PetCare-BookingService/internal/api/middleware"
	createBooking "github.com/pawspace/PetCare-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user ID"
	msgCaregiverNotFound  = "caregiver not found"
	msgCaregiverInactive  = "caregiver is not active"
	msgServiceNotOffered  = "caregiver does not offer this service"
	msgPetNotFound        = "pet not found"
	msgInvalidServiceType = "invalid service type"
	msgNoDatesRequested   = "no dates requested"
	msgTooManyDates       = "too many dates in one request"
	msgInvalidRecurrence  = "invalid recurrence rule"
	msgInvalidInput       = "invalid input data"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
//
// Responds 201 when at least one date produced a booking; failed dates
// ride along in the body. Responds 422 with the same body shape when
// every requested date failed validation.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid request data: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrNoValidDates):
			// The batch outcome still carries the per-date reasons.
			h.logger.Warn("POST /bookings - No valid dates: owner_id=%d", userID)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, FromUseCaseResponse(result))

		case errors.Is(err, createBooking.ErrCaregiverNotFound):
			h.logger.Warn("POST /bookings - Caregiver not found: owner_id=%d", userID)
			handlers.RespondNotFound(w, msgCaregiverNotFound)

		case errors.Is(err, createBooking.ErrPetNotFound):
			h.logger.Warn("POST /bookings - Pet not found: owner_id=%d, pet_id=%d", userID, req.PetID)
			handlers.RespondNotFound(w, msgPetNotFound)

		case errors.Is(err, createBooking.ErrCaregiverInactive):
			h.logger.Warn("POST /bookings - Caregiver inactive: owner_id=%d", userID)
			handlers.RespondConflict(w, msgCaregiverInactive)

		case errors.Is(err, createBooking.ErrServiceNotOffered):
			h.logger.Warn("POST /bookings - Service not offered: owner_id=%d, service=%s", userID, req.ServiceType)
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, createBooking.ErrInvalidServiceType):
			h.logger.Warn("POST /bookings - Invalid service type: owner_id=%d, service=%s", userID, req.ServiceType)
			handlers.RespondBadRequest(w, msgInvalidServiceType)

		case errors.Is(err, createBooking.ErrNoDatesRequested):
			h.logger.Warn("POST /bookings - No dates requested: owner_id=%d", userID)
			handlers.RespondBadRequest(w, msgNoDatesRequested)

		case errors.Is(err, createBooking.ErrTooManyDates):
			h.logger.Warn("POST /bookings - Too many dates: owner_id=%d", userID)
			handlers.RespondBadRequest(w, msgTooManyDates)

		case errors.Is(err, createBooking.ErrInvalidRecurrence):
			h.logger.Warn("POST /bookings - Invalid recurrence: owner_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidRecurrence)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: owner_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create bookings: owner_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Bookings created: owner_id=%d, created=%d, failed=%d",
		userID, len(result.Bookings), len(result.Failures))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
