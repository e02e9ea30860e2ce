package get_available_slots

import (
	"context"
	"time"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	"github.com/pawspace/PetCare-BookingService/internal/integrations/caregiverservice"
)

// AvailabilityRepository loads caregiver weekly patterns.
type AvailabilityRepository interface {
	GetWeeklyPattern(ctx context.Context, caregiverID int64) (domain.WeeklyPattern, error)
}

// CaregiverServiceClient is the CaregiverService dependency.
type CaregiverServiceClient interface {
	GetCaregiver(ctx context.Context, caregiverID int64) (*caregiverservice.Caregiver, error)
}

// TimeProvider abstracts the clock for tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger defines the logging dependency of the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
