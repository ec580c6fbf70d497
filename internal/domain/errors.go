package domain

import (
	"errors"
	"strings"
)

var (
	ErrCourtNotFound       = errors.New("court not found")
	ErrCourtNameRequired   = errors.New("court name is required")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrInvalidDate         = errors.New("invalid date")
	ErrNoSlotsRequested    = errors.New("at least one slot is required")
	ErrInvalidSlot         = errors.New("slot is not offered by this court")
	ErrSlotConflict        = errors.New("slot is already booked")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidTransition   = errors.New("reservation status cannot change")
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrInvalidID           = errors.New("invalid id")
)

// BookingFailedError is returned when no slot of a booking request could
// be reserved. The message joins every per-slot reason so callers see the
// full picture in one line.
type BookingFailedError struct {
	Failures []SlotFailure
	// AllConflicts is true when every slot failed because it was taken,
	// as opposed to storage failures.
	AllConflicts bool
}

func (e *BookingFailedError) Error() string {
	reasons := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		reasons = append(reasons, f.Reason)
	}
	return strings.Join(reasons, "; ")
}
