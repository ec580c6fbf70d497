package domain

import "time"

// AuditEntry records one mutating back-office action.
type AuditEntry struct {
	ID         string
	Actor      string
	Action     string
	EntityType string
	EntityID   string
	Detail     string
	CreatedAt  time.Time
}
