package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	bookingRepo "github.com/pawspace/PetCare-BookingService/internal/infra/storage/booking"
	"github.com/pawspace/PetCare-BookingService/internal/integrations/caregiverservice"
	"github.com/pawspace/PetCare-BookingService/internal/integrations/paymentservice"
	"github.com/pawspace/PetCare-BookingService/internal/scheduling"
	"github.com/pawspace/PetCare-BookingService/internal/service/bookings/models"
	"github.com/pawspace/PetCare-BookingService/pkg/ptr"
	"github.com/pawspace/PetCare-BookingService/pkg/types"
)

// Test doubles

type stubBookingRepo struct {
	booking *domain.Booking

	cancelledReason   string
	cancelledTier     domain.RefundTier
	cancelledFraction float64
	cancelCalled      bool

	updatedStatus  *domain.BookingStatus
	assignedTo     *int64
	assignedStatus domain.BookingStatus
}

func (r *stubBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if r.booking == nil || r.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *r.booking
	return &cp, nil
}

func (r *stubBookingRepo) GetByOwnerID(ctx context.Context, ownerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	if r.booking != nil && r.booking.OwnerID == ownerID {
		return []*domain.Booking{r.booking}, nil
	}
	return []*domain.Booking{}, nil
}

func (r *stubBookingRepo) GetByCaregiverWithFilter(ctx context.Context, filter domain.CaregiverBookingsFilter) ([]*domain.Booking, error) {
	if r.booking != nil && r.booking.CaregiverID != nil && *r.booking.CaregiverID == filter.CaregiverID {
		return []*domain.Booking{r.booking}, nil
	}
	return []*domain.Booking{}, nil
}

func (r *stubBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	r.updatedStatus = &status
	return nil
}

func (r *stubBookingRepo) AssignCaregiver(ctx context.Context, id int64, caregiverID int64, status domain.BookingStatus) error {
	r.assignedTo = &caregiverID
	r.assignedStatus = status
	return nil
}

func (r *stubBookingRepo) Cancel(ctx context.Context, id int64, reason string, cancelledAt time.Time, tier domain.RefundTier, fraction float64) error {
	r.cancelCalled = true
	r.cancelledReason = reason
	r.cancelledTier = tier
	r.cancelledFraction = fraction
	return nil
}

type stubAvailabilityRepo struct {
	pattern domain.WeeklyPattern
}

func (r *stubAvailabilityRepo) GetWeeklyPattern(ctx context.Context, caregiverID int64) (domain.WeeklyPattern, error) {
	if r.pattern == nil {
		return domain.WeeklyPattern{}, nil
	}
	return r.pattern, nil
}

type stubCaregiverClient struct {
	caregiver *caregiverservice.Caregiver
}

func (c *stubCaregiverClient) GetCaregiver(ctx context.Context, caregiverID int64) (*caregiverservice.Caregiver, error) {
	if c.caregiver == nil || c.caregiver.ID != caregiverID {
		return nil, caregiverservice.ErrCaregiverNotFound
	}
	return c.caregiver, nil
}

type stubPaymentClient struct {
	refunds []paymentservice.RefundRequest
	fail    bool
}

func (c *stubPaymentClient) SubmitRefundWithGracefulDegradation(ctx context.Context, refund paymentservice.RefundRequest) (*paymentservice.RefundResponse, error) {
	if c.fail {
		return nil, paymentservice.ErrServiceDegraded
	}
	c.refunds = append(c.refunds, refund)
	return &paymentservice.RefundResponse{RefundID: "rf-1", Status: "accepted"}, nil
}

type passthroughTxManager struct{}

func (m *passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Fixtures

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:          42,
		OwnerID:     100,
		CaregiverID: ptr.Ptr(int64(200)),
		PetID:       7,
		ServiceType: domain.ServiceWalking,
		Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("10:00"),
		Status:      domain.StatusConfirmed,
		PetName:     "Rex",
		PetSpecies:  "dog",
	}
}

func newTestService(repo *stubBookingRepo, avail *stubAvailabilityRepo, caregivers *stubCaregiverClient, payments *stubPaymentClient, now time.Time) *Service {
	if avail == nil {
		avail = &stubAvailabilityRepo{}
	}
	if caregivers == nil {
		caregivers = &stubCaregiverClient{}
	}
	if payments == nil {
		payments = &stubPaymentClient{}
	}
	svc := NewService(repo, avail, caregivers, payments, &passthroughTxManager{}, time.UTC, nopLogger{})
	return svc.WithTimeProvider(&fixedTimeProvider{now: now})
}

// Tests

func TestCancel_RecordsRefundTier(t *testing.T) {
	tests := []struct {
		name         string
		now          time.Time
		wantTier     domain.RefundTier
		wantFraction float64
	}{
		{
			name:         "before noon cutoff gives full refund",
			now:          time.Date(2026, 3, 9, 11, 0, 0, 0, time.UTC),
			wantTier:     domain.RefundFull,
			wantFraction: 1.0,
		},
		{
			name:         "after cutoff but before start gives half refund",
			now:          time.Date(2026, 3, 9, 13, 0, 0, 0, time.UTC),
			wantTier:     domain.RefundHalf,
			wantFraction: 0.5,
		},
		{
			name:         "after start gives no refund",
			now:          time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
			wantTier:     domain.RefundNone,
			wantFraction: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubBookingRepo{booking: confirmedBooking()}
			payments := &stubPaymentClient{}
			svc := newTestService(repo, nil, nil, payments, tt.now)

			resp, err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
				UserID:             100,
				CancellationReason: "plans changed",
			})
			require.NoError(t, err)

			assert.True(t, repo.cancelCalled)
			assert.Equal(t, tt.wantTier, repo.cancelledTier)
			assert.Equal(t, tt.wantFraction, repo.cancelledFraction)
			assert.Equal(t, "plans changed", repo.cancelledReason)

			assert.Equal(t, string(domain.StatusCancelled), resp.Status)
			assert.Equal(t, string(tt.wantTier), resp.RefundTier)
			assert.Equal(t, tt.wantFraction, resp.RefundFraction)

			require.Len(t, payments.refunds, 1)
			assert.Equal(t, int64(42), payments.refunds[0].BookingID)
			assert.Equal(t, tt.wantFraction, payments.refunds[0].Fraction)
		})
	}
}

func TestCancel_PaymentOutageDoesNotUndoCancellation(t *testing.T) {
	repo := &stubBookingRepo{booking: confirmedBooking()}
	payments := &stubPaymentClient{fail: true}
	svc := newTestService(repo, nil, nil, payments, time.Date(2026, 3, 9, 11, 0, 0, 0, time.UTC))

	resp, err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 100, CancellationReason: "sick"})
	require.NoError(t, err, "cancellation stands even when settlement is down")

	assert.True(t, repo.cancelCalled)
	assert.Equal(t, string(domain.RefundFull), resp.RefundTier)
}

func TestCancel_Denied(t *testing.T) {
	t.Run("not the owner", func(t *testing.T) {
		repo := &stubBookingRepo{booking: confirmedBooking()}
		svc := newTestService(repo, nil, nil, nil, time.Date(2026, 3, 9, 11, 0, 0, 0, time.UTC))

		_, err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 999})
		require.ErrorIs(t, err, ErrAccessDenied)
		assert.False(t, repo.cancelCalled)
	})

	t.Run("already completed", func(t *testing.T) {
		b := confirmedBooking()
		b.Status = domain.StatusCompleted
		repo := &stubBookingRepo{booking: b}
		svc := newTestService(repo, nil, nil, nil, time.Date(2026, 3, 9, 11, 0, 0, 0, time.UTC))

		_, err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 100})
		require.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("unknown booking", func(t *testing.T) {
		repo := &stubBookingRepo{}
		svc := newTestService(repo, nil, nil, nil, time.Date(2026, 3, 9, 11, 0, 0, 0, time.UTC))

		_, err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 100})
		require.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestUpdateStatus(t *testing.T) {
	now := time.Date(2026, 3, 9, 11, 0, 0, 0, time.UTC)

	t.Run("caregiver completes a confirmed booking", func(t *testing.T) {
		repo := &stubBookingRepo{booking: confirmedBooking()}
		svc := newTestService(repo, nil, nil, nil, now)

		resp, err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
			UserID: 200,
			Status: "completed",
		})
		require.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
		require.NotNil(t, repo.updatedStatus)
		assert.Equal(t, domain.StatusCompleted, *repo.updatedStatus)
	})

	t.Run("illegal transition is rejected with the attempted edge", func(t *testing.T) {
		b := confirmedBooking()
		b.Status = domain.StatusCompleted
		repo := &stubBookingRepo{booking: b}
		svc := newTestService(repo, nil, nil, nil, now)

		_, err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
			UserID: 200,
			Status: "assigned",
		})

		var invalid *domain.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, domain.StatusCompleted, invalid.From)
		assert.Equal(t, domain.StatusAssigned, invalid.To)
		assert.Nil(t, repo.updatedStatus)
	})

	t.Run("cancel must go through the cancel operation", func(t *testing.T) {
		repo := &stubBookingRepo{booking: confirmedBooking()}
		svc := newTestService(repo, nil, nil, nil, now)

		_, err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
			UserID: 200,
			Status: "cancelled",
		})
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("only the assigned caregiver may move the status", func(t *testing.T) {
		repo := &stubBookingRepo{booking: confirmedBooking()}
		svc := newTestService(repo, nil, nil, nil, now)

		_, err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
			UserID: 100, // the owner
			Status: "completed",
		})
		require.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestAssignCaregiver(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	pendingBooking := func() *domain.Booking {
		b := confirmedBooking()
		b.Status = domain.StatusPending
		b.CaregiverID = nil
		return b
	}

	activeCaregiver := &caregiverservice.Caregiver{
		ID:       200,
		IsActive: true,
		Services: []string{"walking", "sitting"},
	}

	// 2026-03-10 is a Tuesday.
	openTuesdays := domain.WeeklyPattern{
		time.Tuesday: {{Start: types.TimeString("08:00"), End: types.TimeString("18:00")}},
	}

	t.Run("pending booking gets assigned", func(t *testing.T) {
		repo := &stubBookingRepo{booking: pendingBooking()}
		svc := newTestService(repo, &stubAvailabilityRepo{pattern: openTuesdays}, &stubCaregiverClient{caregiver: activeCaregiver}, nil, now)

		resp, err := svc.AssignCaregiver(context.Background(), 42, &models.AssignCaregiverRequest{
			UserID:      200,
			CaregiverID: 200,
		})
		require.NoError(t, err)

		assert.Equal(t, "assigned", resp.Status)
		require.NotNil(t, repo.assignedTo)
		assert.Equal(t, int64(200), *repo.assignedTo)
		assert.Equal(t, domain.StatusAssigned, repo.assignedStatus)
	})

	t.Run("window outside availability is rejected with the day's slots", func(t *testing.T) {
		repo := &stubBookingRepo{booking: pendingBooking()}
		narrow := domain.WeeklyPattern{
			time.Tuesday: {{Start: types.TimeString("14:00"), End: types.TimeString("18:00")}},
		}
		svc := newTestService(repo, &stubAvailabilityRepo{pattern: narrow}, &stubCaregiverClient{caregiver: activeCaregiver}, nil, now)

		_, err := svc.AssignCaregiver(context.Background(), 42, &models.AssignCaregiverRequest{
			UserID:      200,
			CaregiverID: 200,
		})

		var outside *scheduling.OutsideWindowsError
		require.ErrorAs(t, err, &outside)
		assert.Nil(t, repo.assignedTo)
	})

	t.Run("service type not offered", func(t *testing.T) {
		groomerOnly := &caregiverservice.Caregiver{ID: 200, IsActive: true, Services: []string{"grooming"}}
		repo := &stubBookingRepo{booking: pendingBooking()}
		svc := newTestService(repo, &stubAvailabilityRepo{pattern: openTuesdays}, &stubCaregiverClient{caregiver: groomerOnly}, nil, now)

		_, err := svc.AssignCaregiver(context.Background(), 42, &models.AssignCaregiverRequest{
			UserID:      200,
			CaregiverID: 200,
		})
		require.ErrorIs(t, err, ErrServiceNotOffered)
	})

	t.Run("inactive caregiver", func(t *testing.T) {
		inactive := &caregiverservice.Caregiver{ID: 200, IsActive: false, Services: []string{"walking"}}
		repo := &stubBookingRepo{booking: pendingBooking()}
		svc := newTestService(repo, nil, &stubCaregiverClient{caregiver: inactive}, nil, now)

		_, err := svc.AssignCaregiver(context.Background(), 42, &models.AssignCaregiverRequest{
			UserID:      200,
			CaregiverID: 200,
		})
		require.ErrorIs(t, err, ErrCaregiverInactive)
	})

	t.Run("already assigned booking is rejected by the state machine", func(t *testing.T) {
		b := pendingBooking()
		b.Status = domain.StatusAssigned
		repo := &stubBookingRepo{booking: b}
		svc := newTestService(repo, &stubAvailabilityRepo{pattern: openTuesdays}, &stubCaregiverClient{caregiver: activeCaregiver}, nil, now)

		_, err := svc.AssignCaregiver(context.Background(), 42, &models.AssignCaregiverRequest{
			UserID:      200,
			CaregiverID: 200,
		})

		var invalid *domain.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
	})
}

func TestGetByID_Access(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := &stubBookingRepo{booking: confirmedBooking()}
	svc := newTestService(repo, nil, nil, nil, now)

	_, err := svc.GetByID(context.Background(), 42, 100)
	assert.NoError(t, err, "owner sees the booking")

	_, err = svc.GetByID(context.Background(), 42, 200)
	assert.NoError(t, err, "assigned caregiver sees the booking")

	_, err = svc.GetByID(context.Background(), 42, 999)
	require.ErrorIs(t, err, ErrAccessDenied)
}
