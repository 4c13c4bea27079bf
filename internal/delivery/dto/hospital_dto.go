package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ApplyHospitalRequest struct {
	Name          string   `json:"name" validate:"required,min=2"`
	Address       string   `json:"address" validate:"required"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	ContactPerson string   `json:"contact_person" validate:"required,min=2"`
	ContactPhone  string   `json:"contact_phone" validate:"omitempty,min=7,max=20"`
	ContactEmail  string   `json:"contact_email" validate:"omitempty,email"`
	LicenseNumber string   `json:"license_number" validate:"required"`
}

// Response DTOs

type HospitalResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	ContactPerson string    `json:"contact_person"`
	ContactPhone  string    `json:"contact_phone,omitempty"`
	ContactEmail  string    `json:"contact_email,omitempty"`
	LicenseNumber string    `json:"license_number"`
	AppliedAt     time.Time `json:"applied_at"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}
