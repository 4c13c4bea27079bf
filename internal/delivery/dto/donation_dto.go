package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RecordDonationRequest struct {
	DonorID      uuid.UUID  `json:"donor_id" validate:"required"`
	HospitalID   uuid.UUID  `json:"hospital_id" validate:"required"`
	DonationDate string     `json:"donation_date" validate:"required"` // Format: YYYY-MM-DD
	RequestID    *uuid.UUID `json:"request_id" validate:"omitempty"`
}

// Response DTOs

type DonationResponse struct {
	ID           uuid.UUID  `json:"id"`
	DonorID      uuid.UUID  `json:"donor_id"`
	DonorName    string     `json:"donor_name,omitempty"`
	HospitalID   uuid.UUID  `json:"hospital_id"`
	HospitalName string     `json:"hospital_name,omitempty"`
	DonationDate time.Time  `json:"donation_date"`
	RequestID    *uuid.UUID `json:"request_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type DonationListResponse struct {
	Donations []DonationResponse `json:"donations"`
	Total     int                `json:"total"`
}
