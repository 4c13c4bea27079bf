package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the lifecycle state of a blood request
type RequestStatus string

const (
	RequestStatusPendingVerification RequestStatus = "pending_verification"
	RequestStatusActive              RequestStatus = "active"
	RequestStatusFulfilled           RequestStatus = "fulfilled"
	RequestStatusCancelled           RequestStatus = "cancelled"
)

// RequestUrgency represents how urgently blood is needed
type RequestUrgency string

const (
	UrgencyCritical RequestUrgency = "critical"
	UrgencyHigh     RequestUrgency = "high"
	UrgencyMedium   RequestUrgency = "medium"
	UrgencyLow      RequestUrgency = "low"
)

// BloodRequest represents a request for blood submitted by an individual.
// Only an admin of the referenced hospital (or a platform admin) may move it
// out of pending_verification.
type BloodRequest struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RequesterID uuid.UUID      `gorm:"type:uuid;not null;index" json:"requester_id"`
	PatientName string         `gorm:"type:varchar(255);not null" json:"patient_name"`
	PatientAge  int            `gorm:"not null" json:"patient_age"`
	BloodType   BloodType      `gorm:"type:blood_type;not null;index" json:"blood_type"`
	Urgency     RequestUrgency `gorm:"type:request_urgency;not null;index" json:"urgency"`
	HospitalID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"hospital_id"`
	Status      RequestStatus  `gorm:"type:request_status;not null;default:'pending_verification';index" json:"status"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Requester User     `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Hospital  Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (BloodRequest) TableName() string {
	return "blood_requests"
}

// IsPendingVerification checks if the request still awaits hospital review
func (r *BloodRequest) IsPendingVerification() bool {
	return r.Status == RequestStatusPendingVerification
}

// IsActive checks if the request has been verified and is open
func (r *BloodRequest) IsActive() bool {
	return r.Status == RequestStatusActive
}

// Verify transitions the request from pending verification to active
func (r *BloodRequest) Verify() {
	r.Status = RequestStatusActive
}

// Fulfil closes the request as fulfilled
func (r *BloodRequest) Fulfil() {
	r.Status = RequestStatusFulfilled
}

// Cancel closes the request as cancelled
func (r *BloodRequest) Cancel() {
	r.Status = RequestStatusCancelled
}
