package availability

import (
	"context"
	"errors"
	"fmt"

	caregiverClient "github.com/pawspace/PetCare-BookingService/internal/integrations/caregiverservice"
	"github.com/pawspace/PetCare-BookingService/internal/service/availability/models"
)

// Service owns caregiver weekly availability patterns.
type Service struct {
	availabilityRepo AvailabilityRepository
	caregiverClient  CaregiverServiceClient
	txManager        TransactionManager
	logger           Logger
}

func NewService(
	availabilityRepo AvailabilityRepository,
	caregiverClient CaregiverServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		caregiverClient:  caregiverClient,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetAvailability returns a caregiver's weekly pattern. A caregiver who
// never set one gets an empty pattern.
func (s *Service) GetAvailability(ctx context.Context, caregiverID int64) (*models.AvailabilityResponse, error) {
	s.logger.Info("GetAvailability: fetching pattern for caregiver=%d", caregiverID)

	pattern, err := s.availabilityRepo.GetWeeklyPattern(ctx, caregiverID)
	if err != nil {
		s.logger.Error("GetAvailability: repository error for caregiver=%d: %v", caregiverID, err)
		return nil, fmt.Errorf("%w: GetAvailability - repository error: %v", ErrInternal, err)
	}

	return &models.AvailabilityResponse{
		CaregiverID: caregiverID,
		Pattern:     models.FromDomainPattern(pattern),
	}, nil
}

// UpdateAvailability replaces a caregiver's weekly pattern.
//
// The pattern is validated once here, at the boundary; everything past
// this point assumes well-formed, sorted, non-overlapping ranges. Only
// the caregiver themselves may edit their pattern.
func (s *Service) UpdateAvailability(ctx context.Context, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("UpdateAvailability: updating pattern for caregiver=%d by user=%d", req.CaregiverID, req.UserID)

	if req.UserID != req.CaregiverID {
		s.logger.Warn("UpdateAvailability: user=%d tried to edit pattern of caregiver=%d", req.UserID, req.CaregiverID)
		return nil, ErrAccessDenied
	}

	if _, err := s.caregiverClient.GetCaregiver(ctx, req.CaregiverID); err != nil {
		if errors.Is(err, caregiverClient.ErrCaregiverNotFound) {
			s.logger.Warn("UpdateAvailability: caregiver id=%d not found", req.CaregiverID)
			return nil, ErrCaregiverNotFound
		}
		s.logger.Error("UpdateAvailability: failed to get caregiver id=%d: %v", req.CaregiverID, err)
		return nil, fmt.Errorf("%w: failed to get caregiver: %v", ErrInternal, err)
	}

	pattern, err := req.Pattern.ToDomainPattern()
	if err != nil {
		s.logger.Warn("UpdateAvailability: malformed pattern for caregiver=%d: %v", req.CaregiverID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	if err := pattern.Validate(); err != nil {
		s.logger.Warn("UpdateAvailability: invalid pattern for caregiver=%d: %v", req.CaregiverID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.availabilityRepo.ReplaceWeeklyPattern(txCtx, req.CaregiverID, pattern)
	})
	if err != nil {
		s.logger.Error("UpdateAvailability: repository error for caregiver=%d: %v", req.CaregiverID, err)
		return nil, fmt.Errorf("%w: UpdateAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateAvailability: pattern replaced for caregiver=%d", req.CaregiverID)
	return &models.AvailabilityResponse{
		CaregiverID: req.CaregiverID,
		Pattern:     models.FromDomainPattern(pattern),
	}, nil
}
