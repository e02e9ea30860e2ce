package availability

import (
	"context"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	"github.com/pawspace/PetCare-BookingService/internal/integrations/caregiverservice"
)

// AvailabilityRepository is the persistence dependency of the service.
type AvailabilityRepository interface {
	GetWeeklyPattern(ctx context.Context, caregiverID int64) (domain.WeeklyPattern, error)
	ReplaceWeeklyPattern(ctx context.Context, caregiverID int64, pattern domain.WeeklyPattern) error
}

// CaregiverServiceClient is the CaregiverService dependency.
type CaregiverServiceClient interface {
	GetCaregiver(ctx context.Context, caregiverID int64) (*caregiverservice.Caregiver, error)
}

// TransactionManager runs functions inside database transactions.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger defines the logging dependency of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
