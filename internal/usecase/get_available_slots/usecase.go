package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	caregiverClient "github.com/pawspace/PetCare-BookingService/internal/integrations/caregiverservice"
	"github.com/pawspace/PetCare-BookingService/internal/scheduling"
)

// UseCase expands a caregiver's weekly pattern into concrete bookable
// slots over a bounded horizon.
type UseCase struct {
	availabilityRepo AvailabilityRepository
	caregiverClient  CaregiverServiceClient
	timeProvider     TimeProvider
	horizonDays      int
	logger           Logger
}

func NewUseCase(
	availabilityRepo AvailabilityRepository,
	caregiverClient CaregiverServiceClient,
	horizonDays int,
	logger Logger,
) *UseCase {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}
	return &UseCase{
		availabilityRepo: availabilityRepo,
		caregiverClient:  caregiverClient,
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

// Execute returns the caregiver's open slots for [from, from+days).
// The window is clipped to the booking horizon counted from today;
// dates with no availability are omitted.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: caregiver=%d, from=%v, days=%v", req.CaregiverID, req.From, req.Days)

	if req.CaregiverID <= 0 {
		return nil, fmt.Errorf("%w: caregiver id must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	today := scheduling.Midnight(now)

	from := today
	if req.From != nil {
		from = scheduling.Midnight(*req.From)
	}
	if scheduling.BeforeDay(from, today) {
		uc.logger.Warn("GetAvailableSlots: start date %s is in the past", domain.DateKey(from))
		return nil, ErrInvalidDate
	}

	horizonEnd := today.AddDate(0, 0, uc.horizonDays) // exclusive
	if !scheduling.BeforeDay(from, horizonEnd) {
		uc.logger.Warn("GetAvailableSlots: start date %s is beyond the horizon", domain.DateKey(from))
		return nil, ErrDateTooFarInFuture
	}

	days := uc.horizonDays
	if req.Days != nil {
		if *req.Days <= 0 {
			return nil, fmt.Errorf("%w: days must be positive", ErrInvalidInput)
		}
		days = *req.Days
	}
	// Clip the window to the horizon. Civil-day counting keeps the
	// remainder exact across DST transitions.
	if remaining := scheduling.DaysBetween(from, horizonEnd); days > remaining {
		days = remaining
	}

	if _, err := uc.caregiverClient.GetCaregiver(ctx, req.CaregiverID); err != nil {
		if errors.Is(err, caregiverClient.ErrCaregiverNotFound) {
			uc.logger.Warn("GetAvailableSlots: caregiver id=%d not found", req.CaregiverID)
			return nil, ErrCaregiverNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get caregiver id=%d: %v", req.CaregiverID, err)
		return nil, fmt.Errorf("%w: failed to get caregiver: %v", ErrInternal, err)
	}

	pattern, err := uc.availabilityRepo.GetWeeklyPattern(ctx, req.CaregiverID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load availability for caregiver=%d: %v", req.CaregiverID, err)
		return nil, fmt.Errorf("%w: failed to load availability: %v", ErrInternal, err)
	}

	slots, err := scheduling.ExpandPattern(pattern, from, days)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to expand availability: %v", ErrInternal, err)
	}

	available := make([]DaySlots, 0, len(slots))
	for date, ranges := range slots {
		day := DaySlots{Date: date, Slots: make([]Slot, len(ranges))}
		for i, r := range ranges {
			day.Slots[i] = Slot{StartTime: r.Start.String(), EndTime: r.End.String()}
		}
		available = append(available, day)
	}
	sort.Slice(available, func(i, j int) bool { return available[i].Date < available[j].Date })

	uc.logger.Info("GetAvailableSlots: caregiver=%d has availability on %d of %d days", req.CaregiverID, len(available), days)
	return &Response{
		CaregiverID: req.CaregiverID,
		From:        domain.DateKey(from),
		Days:        days,
		Available:   available,
	}, nil
}
