package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_Matrix(t *testing.T) {
	allowed := map[[2]BookingStatus]bool{
		{StatusPending, StatusAssigned}:    true,
		{StatusPending, StatusCancelled}:   true,
		{StatusAssigned, StatusConfirmed}:  true,
		{StatusAssigned, StatusCancelled}:  true,
		{StatusConfirmed, StatusCompleted}: true,
		{StatusConfirmed, StatusCancelled}: true,
	}

	statuses := []BookingStatus{
		StatusPending, StatusAssigned, StatusConfirmed, StatusCompleted, StatusCancelled,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			got, err := Transition(from, to)
			if allowed[[2]BookingStatus{from, to}] {
				assert.NoError(t, err, "%s -> %s should be allowed", from, to)
				assert.Equal(t, to, got)
			} else {
				var invalid *InvalidTransitionError
				require.ErrorAs(t, err, &invalid, "%s -> %s should be rejected", from, to)
				assert.Equal(t, from, invalid.From)
				assert.Equal(t, to, invalid.To)
				assert.Equal(t, from, got, "rejected transition must not change status")
			}
		}
	}
}

func TestTransition_TerminalStates(t *testing.T) {
	// The regression that matters most: nothing leaves a terminal state.
	_, err := Transition(StatusCompleted, StatusAssigned)
	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "invalid booking transition: completed -> assigned", invalid.Error())

	_, err = Transition(StatusCancelled, StatusPending)
	assert.Error(t, err)

	_, err = Transition(StatusCancelled, StatusCancelled)
	assert.Error(t, err, "cancelling twice is rejected, not idempotent")
}

func TestBookingPredicates(t *testing.T) {
	b := &Booking{Status: StatusPending}
	assert.True(t, b.CanBeCancelled())
	assert.True(t, b.IsActive())
	assert.False(t, b.IsTerminal())

	b.Status = StatusCompleted
	assert.False(t, b.CanBeCancelled())
	assert.True(t, b.IsTerminal())

	b.Status = StatusCancelled
	assert.False(t, b.CanBeCancelled())
	assert.False(t, b.IsActive())
	assert.True(t, b.IsTerminal())
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusAssigned, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus("in_progress"))
	assert.False(t, IsValidStatus(""))
}
