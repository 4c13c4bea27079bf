package entity

import (
	"time"

	"github.com/google/uuid"
)

// HospitalStatus represents the verification state of a hospital
type HospitalStatus string

const (
	HospitalStatusPendingReview HospitalStatus = "pending_review"
	HospitalStatusApproved      HospitalStatus = "approved"
	HospitalStatusSuspended     HospitalStatus = "suspended"
)

// Hospital represents a hospital that applied to join the platform.
// Applications are submitted publicly; a platform admin approves or removes them.
type Hospital struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	Address       string         `gorm:"type:text;not null" json:"address"`
	Latitude      *float64       `gorm:"type:double precision" json:"latitude,omitempty"`
	Longitude     *float64       `gorm:"type:double precision" json:"longitude,omitempty"`
	ContactPerson string         `gorm:"type:varchar(255);not null" json:"contact_person"`
	ContactPhone  string         `gorm:"type:varchar(20)" json:"contact_phone,omitempty"`
	ContactEmail  string         `gorm:"type:varchar(255)" json:"contact_email,omitempty"`
	LicenseNumber string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"license_number"`
	AppliedAt     time.Time      `gorm:"not null" json:"applied_at"`
	Status        HospitalStatus `gorm:"type:hospital_status;not null;default:'pending_review';index" json:"status"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

// IsApproved checks if the hospital passed review
func (h *Hospital) IsApproved() bool {
	return h.Status == HospitalStatusApproved
}

// Approve transitions the hospital to approved
func (h *Hospital) Approve() {
	h.Status = HospitalStatusApproved
}

// Suspend transitions the hospital to suspended
func (h *Hospital) Suspend() {
	h.Status = HospitalStatusSuspended
}
