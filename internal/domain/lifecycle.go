package domain

import "fmt"

// transitions is the full edge set of the booking lifecycle.
// completed and cancelled have no outgoing edges.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusAssigned, StatusCancelled},
	StatusAssigned:  {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// InvalidTransitionError reports a rejected lifecycle transition.
// It carries the attempted edge so callers can explain what went wrong,
// typically a stale client view ("already cancelled").
type InvalidTransitionError struct {
	From BookingStatus
	To   BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid booking transition: %s -> %s", e.From, e.To)
}

// CanTransition reports whether from -> to is a legal lifecycle edge.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates the edge and returns the new status, or an
// *InvalidTransitionError. It never mutates the booking; callers persist
// the returned status.
func Transition(from, to BookingStatus) (BookingStatus, error) {
	if !CanTransition(from, to) {
		return from, &InvalidTransitionError{From: from, To: to}
	}
	return to, nil
}

// IsValidStatus reports whether s is one of the known lifecycle states.
func IsValidStatus(s BookingStatus) bool {
	_, ok := transitions[s]
	return ok
}
