package create_booking

import (
	"context"
	"time"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	"github.com/pawspace/PetCare-BookingService/internal/integrations/caregiverservice"
	"github.com/pawspace/PetCare-BookingService/internal/integrations/petservice"
)

// BookingRepository is the persistence dependency of the usecase.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AvailabilityRepository loads the caregiver's weekly pattern for
// slot validation of direct bookings.
type AvailabilityRepository interface {
	GetWeeklyPattern(ctx context.Context, caregiverID int64) (domain.WeeklyPattern, error)
}

// CaregiverServiceClient is the CaregiverService dependency.
type CaregiverServiceClient interface {
	GetCaregiver(ctx context.Context, caregiverID int64) (*caregiverservice.Caregiver, error)
}

// PetServiceClient is the PetService dependency.
type PetServiceClient interface {
	GetPetWithGracefulDegradation(ctx context.Context, ownerID, petID int64) (*petservice.Pet, error)
}

// TransactionManager runs functions inside database transactions.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
