package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a per-donor alert about an active blood request. It lives
// in Redis, not Postgres: one primary record keyed by notification ID plus a
// donor-scoped index key used for listing.
type Notification struct {
	ID        uuid.UUID      `json:"id"`
	DonorID   uuid.UUID      `json:"donor_id"`
	RequestID uuid.UUID      `json:"request_id"`
	Message   string         `json:"message"`
	Urgency   RequestUrgency `json:"urgency"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"created_at"`
}
