package assign_caregiver

import (
	"context"

	"github.com/pawspace/PetCare-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	AssignCaregiver(ctx context.Context, bookingID int64, req *models.AssignCaregiverRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
