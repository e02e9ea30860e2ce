package bookings

import (
	"context"
	"time"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	"github.com/pawspace/PetCare-BookingService/internal/integrations/caregiverservice"
	"github.com/pawspace/PetCare-BookingService/internal/integrations/paymentservice"
)

// BookingRepository is the persistence dependency of the service.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByOwnerID(ctx context.Context, ownerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByCaregiverWithFilter(ctx context.Context, filter domain.CaregiverBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	AssignCaregiver(ctx context.Context, id int64, caregiverID int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string, cancelledAt time.Time, tier domain.RefundTier, fraction float64) error
}

// AvailabilityRepository loads caregiver weekly patterns for assignment checks.
type AvailabilityRepository interface {
	GetWeeklyPattern(ctx context.Context, caregiverID int64) (domain.WeeklyPattern, error)
}

// CaregiverServiceClient is the CaregiverService dependency.
type CaregiverServiceClient interface {
	GetCaregiver(ctx context.Context, caregiverID int64) (*caregiverservice.Caregiver, error)
}

// PaymentServiceClient is the PaymentService dependency.
type PaymentServiceClient interface {
	SubmitRefundWithGracefulDegradation(ctx context.Context, refund paymentservice.RefundRequest) (*paymentservice.RefundResponse, error)
}

// TransactionManager runs functions inside database transactions.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider abstracts the clock for tests.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger defines the logging dependency of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
