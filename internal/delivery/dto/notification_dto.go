package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	DonorID   uuid.UUID `json:"donor_id"`
	RequestID uuid.UUID `json:"request_id"`
	Message   string    `json:"message"`
	Urgency   string    `json:"urgency"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}
