package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	bookingRepo "github.com/pawspace/PetCare-BookingService/internal/infra/storage/booking"
	caregiverClient "github.com/pawspace/PetCare-BookingService/internal/integrations/caregiverservice"
	"github.com/pawspace/PetCare-BookingService/internal/integrations/paymentservice"
	"github.com/pawspace/PetCare-BookingService/internal/scheduling"
	"github.com/pawspace/PetCare-BookingService/internal/service/bookings/models"
)

// Service owns the booking lifecycle: reads, assignment, status moves
// and cancellation with refund evaluation.
type Service struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	caregiverClient  CaregiverServiceClient
	paymentClient    PaymentServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	location         *time.Location
	logger           Logger
}

// NewService wires the service. location is the platform civil timezone
// used for refund cutoff evaluation.
func NewService(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	caregiverClient CaregiverServiceClient,
	paymentClient PaymentServiceClient,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		caregiverClient:  caregiverClient,
		paymentClient:    paymentClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		location:         location,
		logger:           logger,
	}
}

// WithTimeProvider replaces the clock, for tests.
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID fetches a booking. Only the owner and the assigned caregiver
// may see it.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !canView(booking, userID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetOwnerBookings lists an owner's booking history, optionally filtered
// by status. Owners only see their own history.
func (s *Service) GetOwnerBookings(ctx context.Context, req *models.GetOwnerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetOwnerBookings: fetching bookings for owner=%d, status=%v", req.OwnerID, req.Status)

	if req.UserID != req.OwnerID {
		s.logger.Warn("GetOwnerBookings: user=%d requested history of owner=%d", req.UserID, req.OwnerID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetOwnerBookings: invalid status=%s for owner=%d", *req.Status, req.OwnerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByOwnerID(ctx, req.OwnerID, domainStatus)
	if err != nil {
		s.logger.Error("GetOwnerBookings: repository error for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: GetOwnerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerBookings: fetched %d bookings for owner=%d", len(bookings), req.OwnerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetCaregiverBookings lists a caregiver's calendar with period and
// status filters. Caregivers only see their own calendar.
func (s *Service) GetCaregiverBookings(ctx context.Context, req *models.GetCaregiverBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCaregiverBookings: fetching bookings for caregiver=%d", req.CaregiverID)

	if req.UserID != req.CaregiverID {
		s.logger.Warn("GetCaregiverBookings: user=%d requested calendar of caregiver=%d", req.UserID, req.CaregiverID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetCaregiverBookings: invalid filter for caregiver=%d: %v", req.CaregiverID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByCaregiverWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCaregiverBookings: repository error for caregiver=%d: %v", req.CaregiverID, err)
		return nil, fmt.Errorf("%w: GetCaregiverBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCaregiverBookings: fetched %d bookings for caregiver=%d", len(bookings), req.CaregiverID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel cancels a booking on behalf of its owner.
//
// The refund tier is evaluated from the injected clock in the platform
// timezone, the transition and the refund columns commit in one
// serializable transaction, and only then is PaymentService notified.
// A PaymentService failure is logged and does not undo the cancellation.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.CancelBookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	now := s.timeProvider.Now().In(s.location)

	var (
		cancelled *domain.Booking
		outcome   scheduling.RefundOutcome
	)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if booking.OwnerID != req.UserID {
			return ErrAccessDenied
		}

		if !booking.CanBeCancelled() {
			return ErrCannotCancel
		}

		start, err := booking.StartInstant(s.location)
		if err != nil {
			return fmt.Errorf("%w: Cancel - invalid start time: %v", ErrInternal, err)
		}

		outcome = scheduling.EvaluateRefund(start, now)

		if err := s.bookingRepo.Cancel(txCtx, bookingID, req.CancellationReason, now, outcome.Tier, outcome.Fraction); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		cancelled = booking
		return nil
	})

	if err != nil {
		s.logger.Warn("Cancel: booking id=%d not cancelled: %v", bookingID, err)
		return nil, err
	}

	s.logger.Info("Cancel: booking id=%d cancelled, tier=%s, fraction=%.2f", bookingID, outcome.Tier, outcome.Fraction)

	// Refund settlement is best-effort: the cancellation already stands.
	_, err = s.paymentClient.SubmitRefundWithGracefulDegradation(ctx, paymentservice.RefundRequest{
		BookingID: bookingID,
		OwnerID:   cancelled.OwnerID,
		Tier:      string(outcome.Tier),
		Fraction:  outcome.Fraction,
		Reason:    req.CancellationReason,
	})
	if err != nil {
		s.logger.Error("Cancel: refund settlement degraded for booking id=%d: %v", bookingID, err)
	}

	return &models.CancelBookingResponse{
		ID:             bookingID,
		Status:         string(domain.StatusCancelled),
		RefundTier:     string(outcome.Tier),
		RefundFraction: outcome.Fraction,
		CancelledAt:    now.Format(time.RFC3339),
	}, nil
}

// AssignCaregiver attaches a caregiver to a pending booking.
//
// The caregiver must exist, be active, offer the booking's service type,
// and the booking window must lie within the caregiver's current weekly
// availability.
func (s *Service) AssignCaregiver(ctx context.Context, bookingID int64, req *models.AssignCaregiverRequest) (*models.BookingResponse, error) {
	s.logger.Info("AssignCaregiver: assigning caregiver=%d to booking id=%d", req.CaregiverID, bookingID)

	if req.UserID != req.CaregiverID {
		s.logger.Warn("AssignCaregiver: user=%d tried to assign caregiver=%d", req.UserID, req.CaregiverID)
		return nil, ErrAccessDenied
	}

	caregiver, err := s.caregiverClient.GetCaregiver(ctx, req.CaregiverID)
	if err != nil {
		if errors.Is(err, caregiverClient.ErrCaregiverNotFound) {
			s.logger.Warn("AssignCaregiver: caregiver id=%d not found", req.CaregiverID)
			return nil, ErrCaregiverNotFound
		}
		s.logger.Error("AssignCaregiver: failed to get caregiver id=%d: %v", req.CaregiverID, err)
		return nil, fmt.Errorf("%w: failed to get caregiver: %v", ErrInternal, err)
	}

	if !caregiver.IsActive {
		s.logger.Warn("AssignCaregiver: caregiver id=%d is inactive", req.CaregiverID)
		return nil, ErrCaregiverInactive
	}

	var assigned *domain.Booking

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: AssignCaregiver - repository error: %v", ErrInternal, err)
		}

		if !caregiver.Offers(string(booking.ServiceType)) {
			return ErrServiceNotOffered
		}

		newStatus, err := domain.Transition(booking.Status, domain.StatusAssigned)
		if err != nil {
			return err
		}

		pattern, err := s.availabilityRepo.GetWeeklyPattern(txCtx, req.CaregiverID)
		if err != nil {
			return fmt.Errorf("%w: AssignCaregiver - failed to load availability: %v", ErrInternal, err)
		}

		daySlots := pattern[booking.Date.Weekday()]
		if err := scheduling.ValidateInterval(booking.Date, booking.Window(), daySlots); err != nil {
			return err
		}

		if err := s.bookingRepo.AssignCaregiver(txCtx, bookingID, req.CaregiverID, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: AssignCaregiver - repository error: %v", ErrInternal, err)
		}

		booking.CaregiverID = &req.CaregiverID
		booking.Status = newStatus
		assigned = booking
		return nil
	})

	if err != nil {
		s.logger.Warn("AssignCaregiver: booking id=%d not assigned: %v", bookingID, err)
		return nil, err
	}

	s.logger.Info("AssignCaregiver: booking id=%d assigned to caregiver=%d", bookingID, req.CaregiverID)
	return models.FromDomainBooking(assigned), nil
}

// UpdateStatus moves a booking along its lifecycle (confirm, complete).
// Only the assigned caregiver may do this; cancellation has its own
// operation and is rejected here.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d", bookingID, req.Status, req.UserID)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	if newStatus == domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: cancellation requested through status update for booking id=%d", bookingID)
		return nil, fmt.Errorf("%w: use the cancel operation", ErrInvalidStatus)
	}

	var updated *domain.Booking

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if booking.CaregiverID == nil || *booking.CaregiverID != req.UserID {
			return ErrAccessDenied
		}

		next, err := domain.Transition(booking.Status, newStatus)
		if err != nil {
			return err
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, next); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		booking.Status = next
		updated = booking
		return nil
	})

	if err != nil {
		s.logger.Warn("UpdateStatus: booking id=%d not updated: %v", bookingID, err)
		return nil, err
	}

	s.logger.Info("UpdateStatus: booking id=%d moved to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(updated), nil
}

// canView reports whether the user is the owner or the assigned caregiver.
func canView(booking *domain.Booking, userID int64) bool {
	if booking.OwnerID == userID {
		return true
	}
	return booking.CaregiverID != nil && *booking.CaregiverID == userID
}
