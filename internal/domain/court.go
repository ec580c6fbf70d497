package domain

import "time"

// Court represents a bookable playing area (e.g. "Football Court 1").
type Court struct {
	ID          string
	Name        string
	Location    string
	HourlyPrice float64
	// Slots is the ordered list of legal slot labels for this court,
	// e.g. "06:00" through "23:00".
	Slots     []string
	CreatedAt time.Time
}

// HasSlot reports whether label is a legal slot on this court.
func (c Court) HasSlot(label string) bool {
	for _, s := range c.Slots {
		if s == label {
			return true
		}
	}
	return false
}
