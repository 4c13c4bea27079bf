package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type GeoPoint struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type FindDonorsRequest struct {
	BloodGroupNeeded string    `json:"blood_group_needed" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	HospitalLocation *GeoPoint `json:"hospital_location" validate:"omitempty"`
	RadiusKM         float64   `json:"radius_km" validate:"omitempty,gt=0"`
}

type NotifyDonorsRequest struct {
	RequestID uuid.UUID   `json:"request_id" validate:"required"`
	DonorIDs  []uuid.UUID `json:"donor_ids" validate:"required,min=1"`
}

// Response DTOs

type DonorResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	FullName    string    `json:"full_name"`
	BloodType   string    `json:"blood_type"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
}

type FindDonorsResponse struct {
	Donors           []DonorResponse `json:"donors"`
	BloodGroupNeeded string          `json:"blood_group_needed"`
	CompatibleTypes  []string        `json:"compatible_types"`
}

type NotifyDonorsResponse struct {
	Message            string `json:"message"`
	NotificationsCount int    `json:"notifications_count"`
}
