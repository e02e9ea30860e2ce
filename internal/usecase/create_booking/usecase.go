package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	caregiverClient "github.com/pawspace/PetCare-BookingService/internal/integrations/caregiverservice"
	petClient "github.com/pawspace/PetCare-BookingService/internal/integrations/petservice"
	"github.com/pawspace/PetCare-BookingService/internal/scheduling"
)

// UseCase expands a booking request into per-date bookings.
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	caregiverClient  CaregiverServiceClient
	petClient        PetServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	horizonDays      int
	logger           Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	caregiverClient CaregiverServiceClient,
	petClient PetServiceClient,
	txManager TransactionManager,
	horizonDays int,
	logger Logger,
) *UseCase {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		caregiverClient:  caregiverClient,
		petClient:        petClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		horizonDays:      horizonDays,
		logger:           logger,
	}
}

// WithTimeProvider replaces the clock, for tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute expands and validates the request, then creates one booking
// per valid date. Bookings addressed to a caregiver are checked against
// that caregiver's availability and created as assigned; open requests
// skip the slot check and are created as pending.
//
// Dates that fail validation are collected in the response, never
// aborting the batch. Only a batch with zero valid dates is an error
// (ErrNoValidDates), and even then the response carries the failures.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: owner=%d, caregiver=%v, pet=%d, service=%s",
		req.OwnerID, req.CaregiverID, req.PetID, req.ServiceType)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// Resolve the caregiver up front: a direct booking to a missing,
	// inactive or mismatched caregiver fails as a whole.
	var caregiver *caregiverClient.Caregiver
	if req.CaregiverID != nil {
		var err error
		caregiver, err = uc.caregiverClient.GetCaregiver(ctx, *req.CaregiverID)
		if err != nil {
			if errors.Is(err, caregiverClient.ErrCaregiverNotFound) {
				uc.logger.Warn("CreateBooking: caregiver id=%d not found", *req.CaregiverID)
				return nil, ErrCaregiverNotFound
			}
			uc.logger.Error("CreateBooking: failed to get caregiver id=%d: %v", *req.CaregiverID, err)
			return nil, fmt.Errorf("%w: failed to get caregiver: %v", ErrInternal, err)
		}
		if !caregiver.IsActive {
			uc.logger.Warn("CreateBooking: caregiver id=%d is inactive", *req.CaregiverID)
			return nil, ErrCaregiverInactive
		}
		if !caregiver.Offers(req.ServiceType) {
			uc.logger.Warn("CreateBooking: caregiver id=%d does not offer %s", *req.CaregiverID, req.ServiceType)
			return nil, ErrServiceNotOffered
		}
	}

	// Pet lookup is denormalization, not validation: a degraded
	// PetService leaves the snapshot empty instead of failing the batch.
	var petName, petSpecies string
	pet, err := uc.petClient.GetPetWithGracefulDegradation(ctx, req.OwnerID, req.PetID)
	switch {
	case err == nil:
		petName, petSpecies = pet.Name, pet.Species
	case errors.Is(err, petClient.ErrPetNotFound):
		uc.logger.Warn("CreateBooking: pet id=%d not found for owner=%d", req.PetID, req.OwnerID)
		return nil, ErrPetNotFound
	case errors.Is(err, petClient.ErrServiceDegraded):
		uc.logger.Warn("CreateBooking: proceeding without pet snapshot for pet id=%d", req.PetID)
	default:
		uc.logger.Error("CreateBooking: failed to get pet id=%d: %v", req.PetID, err)
		return nil, fmt.Errorf("%w: failed to get pet: %v", ErrInternal, err)
	}

	var response *Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		params := scheduling.ExpandParams{
			Now:         now,
			HorizonDays: uc.horizonDays,
		}

		if req.CaregiverID != nil {
			pattern, err := uc.availabilityRepo.GetWeeklyPattern(txCtx, *req.CaregiverID)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to load availability for caregiver=%d: %v", *req.CaregiverID, err)
				return fmt.Errorf("%w: failed to load availability: %v", ErrInternal, err)
			}
			slots, err := scheduling.ExpandPattern(pattern, scheduling.Midnight(now), uc.horizonDays)
			if err != nil {
				return fmt.Errorf("%w: failed to expand availability: %v", ErrInternal, err)
			}
			params.Slots = slots
			params.CheckSlots = true
		}

		result, err := scheduling.ExpandRequest(toEngineRequest(req), params)
		if err != nil {
			uc.logger.Warn("CreateBooking: expansion failed: %v", err)
			switch {
			case errors.Is(err, scheduling.ErrNoDates):
				return ErrNoDatesRequested
			case errors.Is(err, scheduling.ErrInvalidRecurrence):
				return fmt.Errorf("%w: %v", ErrInvalidRecurrence, err)
			default:
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
		}

		if total := len(result.Intents) + len(result.Failures); total > domain.MaxDatesPerRequest {
			uc.logger.Warn("CreateBooking: request expanded to %d dates, limit %d", total, domain.MaxDatesPerRequest)
			return fmt.Errorf("%w: %d dates, limit %d", ErrTooManyDates, total, domain.MaxDatesPerRequest)
		}

		response = &Response{
			OwnerID:  req.OwnerID,
			Bookings: make([]CreatedBooking, 0, len(result.Intents)),
			Failures: make([]FailedDate, 0, len(result.Failures)),
		}
		for _, f := range result.Failures {
			response.Failures = append(response.Failures, failureFromEngine(f))
		}

		if len(result.Intents) == 0 {
			return ErrNoValidDates
		}

		// Multi-date batches share a recurrence group so clients can
		// address the whole series later.
		var groupID *string
		if len(result.Intents) > 1 {
			gid := uuid.NewString()
			groupID = &gid
		}

		status := domain.StatusPending
		if req.CaregiverID != nil {
			status = domain.StatusAssigned
		}

		for _, intent := range result.Intents {
			booking := &domain.Booking{
				OwnerID:           req.OwnerID,
				CaregiverID:       req.CaregiverID,
				PetID:             req.PetID,
				ServiceType:       domain.ServiceType(req.ServiceType),
				Date:              intent.Date,
				StartTime:         intent.Window.Start,
				EndTime:           intent.Window.End,
				Status:            status,
				RecurrenceGroupID: groupID,
				PetName:           petName,
				PetSpecies:        petSpecies,
				Notes:             req.Notes,
			}

			created, err := uc.bookingRepo.Create(txCtx, booking)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to create booking for %s: %v", domain.DateKey(intent.Date), err)
				return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
			}

			response.Bookings = append(response.Bookings, createdFromDomain(created))
		}

		return nil
	})

	if err != nil {
		// All-dates-failed still hands the failures back to the caller.
		if errors.Is(err, ErrNoValidDates) {
			uc.logger.Warn("CreateBooking: no valid dates for owner=%d, %d failures", req.OwnerID, len(response.Failures))
			return response, err
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: created %d bookings for owner=%d (%d dates failed)",
		len(response.Bookings), req.OwnerID, len(response.Failures))
	return response, nil
}
