package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	"github.com/pawspace/PetCare-BookingService/internal/integrations/caregiverservice"
	"github.com/pawspace/PetCare-BookingService/internal/integrations/petservice"
	"github.com/pawspace/PetCare-BookingService/pkg/ptr"
	"github.com/pawspace/PetCare-BookingService/pkg/types"
)

// Test doubles

type stubBookingRepo struct {
	created []*domain.Booking
	nextID  int64
}

func (r *stubBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.nextID++
	booking.ID = r.nextID
	r.created = append(r.created, booking)
	return booking, nil
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

type stubPetClient struct {
	pet      *petservice.Pet
	degraded bool
}

func (c *stubPetClient) GetPetWithGracefulDegradation(ctx context.Context, ownerID, petID int64) (*petservice.Pet, error) {
	if c.degraded {
		return nil, petservice.ErrServiceDegraded
	}
	if c.pet == nil || c.pet.ID != petID {
		return nil, petservice.ErrPetNotFound
	}
	return c.pet, nil
}

type passthroughTxManager struct{}

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

var testNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC) // a Monday

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func walkerPattern() domain.WeeklyPattern {
	// Open every weekday morning.
	open := []domain.TimeRange{{Start: types.TimeString("08:00"), End: types.TimeString("12:00")}}
	return domain.WeeklyPattern{
		time.Monday:    open,
		time.Tuesday:   open,
		time.Wednesday: open,
		time.Thursday:  open,
		time.Friday:    open,
	}
}

func newTestUseCase(repo *stubBookingRepo, pattern domain.WeeklyPattern) *UseCase {
	walker := &caregiverservice.Caregiver{ID: 200, IsActive: true, Services: []string{"walking"}}
	rex := &petservice.Pet{ID: 7, OwnerID: 100, Name: "Rex", Species: "dog"}

	uc := NewUseCase(
		repo,
		&stubAvailabilityRepo{pattern: pattern},
		&stubCaregiverClient{caregiver: walker},
		&stubPetClient{pet: rex},
		&passthroughTxManager{},
		domain.DefaultHorizonDays,
		nopLogger{},
	)
	return uc.WithTimeProvider(&fixedTimeProvider{now: testNow})
}

func baseRequest() *Request {
	return &Request{
		OwnerID:       100,
		CaregiverID:   ptr.Ptr(int64(200)),
		PetID:         7,
		ServiceType:   "walking",
		Dates:         []time.Time{date(2026, 3, 9)},
		DefaultWindow: Window{Start: "09:00", End: "10:00"},
	}
}

// Tests

func TestExecute_SingleDateAssigned(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo, walkerPattern())

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 1)
	assert.Empty(t, resp.Failures)

	b := resp.Bookings[0]
	assert.Equal(t, "2026-03-09", b.Date)
	assert.Equal(t, "09:00", b.StartTime)
	assert.Equal(t, "10:00", b.EndTime)
	assert.Equal(t, "assigned", b.Status)
	assert.Nil(t, b.RecurrenceGroupID, "single booking carries no group")

	require.Len(t, repo.created, 1)
	assert.Equal(t, "Rex", repo.created[0].PetName)
	assert.Equal(t, "dog", repo.created[0].PetSpecies)
}

func TestExecute_OpenRequestIsPendingAndSkipsSlotCheck(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo, domain.WeeklyPattern{}) // no availability anywhere

	req := baseRequest()
	req.CaregiverID = nil
	req.DefaultWindow = Window{Start: "22:00", End: "23:00"} // outside any pattern

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "pending", resp.Bookings[0].Status)
	assert.Nil(t, resp.Bookings[0].CaregiverID)
}

func TestExecute_PartialBatch(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo, walkerPattern())

	req := baseRequest()
	req.Dates = []time.Time{
		date(2026, 3, 9),  // Monday, fine
		date(2026, 3, 10), // Tuesday, fine
		date(2026, 3, 14), // Saturday, no availability
		date(2026, 2, 23), // past
		date(2026, 3, 11), // Wednesday, fine
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err, "partial failure is a success with failures attached")

	assert.Len(t, resp.Bookings, 3)
	require.Len(t, resp.Failures, 2)

	// Failures keep date order.
	assert.Equal(t, "2026-02-23", resp.Failures[0].Date)
	assert.Equal(t, "2026-03-14", resp.Failures[1].Date)
	assert.NotEmpty(t, resp.Failures[0].Reason)

	// The batch shares one recurrence group.
	group := resp.Bookings[0].RecurrenceGroupID
	require.NotNil(t, group)
	for _, b := range resp.Bookings {
		require.NotNil(t, b.RecurrenceGroupID)
		assert.Equal(t, *group, *b.RecurrenceGroupID)
	}
}

func TestExecute_AllDatesFailed(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo, walkerPattern())

	req := baseRequest()
	req.Dates = []time.Time{
		date(2026, 3, 14), // Saturday, no availability
		date(2026, 3, 15), // Sunday, no availability
	}

	resp, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrNoValidDates)

	require.NotNil(t, resp, "failures are still reported")
	assert.Empty(t, resp.Bookings)
	assert.Len(t, resp.Failures, 2)
	assert.Empty(t, repo.created)
}

func TestExecute_WeeklyRecurrence(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo, walkerPattern())

	req := baseRequest()
	req.Dates = []time.Time{date(2026, 3, 9)}
	req.Recurrence = &RecurrenceRule{
		Frequency: "weekly",
		EndDate:   date(2026, 3, 30),
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 4)
	assert.Equal(t, "2026-03-09", resp.Bookings[0].Date)
	assert.Equal(t, "2026-03-16", resp.Bookings[1].Date)
	assert.Equal(t, "2026-03-23", resp.Bookings[2].Date)
	assert.Equal(t, "2026-03-30", resp.Bookings[3].Date)
}

func TestExecute_DegradedPetServiceLeavesSnapshotEmpty(t *testing.T) {
	repo := &stubBookingRepo{}
	walker := &caregiverservice.Caregiver{ID: 200, IsActive: true, Services: []string{"walking"}}
	uc := NewUseCase(
		repo,
		&stubAvailabilityRepo{pattern: walkerPattern()},
		&stubCaregiverClient{caregiver: walker},
		&stubPetClient{degraded: true},
		&passthroughTxManager{},
		domain.DefaultHorizonDays,
		nopLogger{},
	).WithTimeProvider(&fixedTimeProvider{now: testNow})

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Empty(t, repo.created[0].PetName)
	assert.Empty(t, repo.created[0].PetSpecies)
	assert.Len(t, resp.Bookings, 1)
}

func TestExecute_RequestValidation(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, walkerPattern())

	t.Run("unknown service type", func(t *testing.T) {
		req := baseRequest()
		req.ServiceType = "dogsurfing"
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidServiceType)
	})

	t.Run("no dates at all", func(t *testing.T) {
		req := baseRequest()
		req.Dates = nil
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrNoDatesRequested)
	})

	t.Run("unknown pet", func(t *testing.T) {
		req := baseRequest()
		req.PetID = 999
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrPetNotFound)
	})

	t.Run("unknown caregiver", func(t *testing.T) {
		req := baseRequest()
		req.CaregiverID = ptr.Ptr(int64(999))
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrCaregiverNotFound)
	})

	t.Run("service not offered", func(t *testing.T) {
		req := baseRequest()
		req.ServiceType = "grooming"
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrServiceNotOffered)
	})

	t.Run("bad recurrence frequency", func(t *testing.T) {
		req := baseRequest()
		req.Recurrence = &RecurrenceRule{Frequency: "daily", EndDate: date(2026, 4, 1)}
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidRecurrence)
	})

	t.Run("range expansion past the cap", func(t *testing.T) {
		req := baseRequest()
		req.Dates = nil
		req.RangeStart = ptr.Ptr(date(2026, 3, 9))
		req.RangeEnd = ptr.Ptr(date(2026, 5, 31))
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrTooManyDates)
	})
}
