package update_availability

import (
	"context"

	"github.com/pawspace/PetCare-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	UpdateAvailability(ctx context.Context, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
