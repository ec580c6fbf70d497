package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// Reservation binds one slot on one court/date to a booking.
type Reservation struct {
	ID        string
	BookingID string
	CourtID   string
	// Date is the calendar day in YYYY-MM-DD form.
	Date          string
	Slot          string
	Price         float64
	CustomerName  string
	CustomerEmail string
	Status        ReservationStatus
	CreatedAt     time.Time
}

// CanTransitionTo reports whether the status change is legal. Only
// confirmed reservations may move, and both targets are terminal.
func (r Reservation) CanTransitionTo(next ReservationStatus) bool {
	if r.Status != ReservationStatusConfirmed {
		return false
	}
	return next == ReservationStatusCancelled || next == ReservationStatusCompleted
}

// SlotFailure records one slot of a booking request that could not be
// reserved, with a human-readable reason.
type SlotFailure struct {
	Slot   string
	Reason string
}

// BookingResult is the aggregate outcome of a multi-slot booking request.
// A request succeeds as long as at least one slot was reserved.
type BookingResult struct {
	BookingID string
	Succeeded []Reservation
	Failed    []SlotFailure
}

// TotalPrice sums the prices of the reservations that were created.
func (r BookingResult) TotalPrice() float64 {
	var total float64
	for _, res := range r.Succeeded {
		total += res.Price
	}
	return total
}
