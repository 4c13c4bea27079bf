package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateProfileRequest struct {
	FullName     string   `json:"full_name" validate:"omitempty,min=2"`
	PhoneNumber  string   `json:"phone_number" validate:"omitempty,min=7,max=20"`
	DateOfBirth  string   `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	BloodType    string   `json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Availability string   `json:"availability" validate:"omitempty,oneof=available unavailable recently_donated"`
}

// AssignRoleRequest is a platform-admin operation setting a user's role and
// hospital affiliation.
type AssignRoleRequest struct {
	Role       string     `json:"role" validate:"required,oneof=individual hospital_admin platform_admin"`
	HospitalID *uuid.UUID `json:"hospital_id" validate:"omitempty"`
}

// Response DTOs

type ProfileResponse struct {
	UserID          uuid.UUID         `json:"user_id"`
	FullName        string            `json:"full_name"`
	Email           string            `json:"email"`
	Role            string            `json:"role"`
	PhoneNumber     string            `json:"phone_number,omitempty"`
	DateOfBirth     *time.Time        `json:"date_of_birth,omitempty"`
	BloodType       string            `json:"blood_type"`
	Latitude        *float64          `json:"latitude,omitempty"`
	Longitude       *float64          `json:"longitude,omitempty"`
	Availability    string            `json:"availability"`
	ProfileComplete bool              `json:"profile_complete"`
	HospitalID      *uuid.UUID        `json:"hospital_id,omitempty"`
	Hospital        *HospitalResponse `json:"hospital,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
