package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBloodRequestRequest struct {
	PatientName string    `json:"patient_name" validate:"required,min=2"`
	PatientAge  *int      `json:"patient_age" validate:"required,gte=0,lte=150"`
	BloodType   string    `json:"blood_type" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Urgency     string    `json:"urgency" validate:"required,oneof=critical high medium low"`
	HospitalID  uuid.UUID `json:"hospital_id" validate:"required"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=fulfilled cancelled"`
}

// Response DTOs

type BloodRequestResponse struct {
	ID          uuid.UUID         `json:"id"`
	RequesterID uuid.UUID         `json:"requester_id"`
	PatientName string            `json:"patient_name"`
	PatientAge  int               `json:"patient_age"`
	BloodType   string            `json:"blood_type"`
	Urgency     string            `json:"urgency"`
	HospitalID  uuid.UUID         `json:"hospital_id"`
	Hospital    *HospitalResponse `json:"hospital,omitempty"`
	Status      string            `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type BloodRequestListResponse struct {
	Requests []BloodRequestResponse `json:"requests"`
	Total    int                    `json:"total"`
}
