package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityStatus represents whether a donor can currently donate
type AvailabilityStatus string

const (
	AvailabilityAvailable       AvailabilityStatus = "available"
	AvailabilityUnavailable     AvailabilityStatus = "unavailable"
	AvailabilityRecentlyDonated AvailabilityStatus = "recently_donated"
)

// Profile holds donor/requester attributes for a user. One row per user,
// created eagerly at registration or lazily on first login.
type Profile struct {
	UserID          uuid.UUID          `gorm:"type:uuid;primaryKey" json:"user_id"`
	PhoneNumber     string             `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	DateOfBirth     *time.Time         `gorm:"type:date" json:"date_of_birth,omitempty"`
	BloodType       BloodType          `gorm:"type:blood_type;not null;default:'unknown';index" json:"blood_type"`
	Latitude        *float64           `gorm:"type:double precision" json:"latitude,omitempty"`
	Longitude       *float64           `gorm:"type:double precision" json:"longitude,omitempty"`
	Availability    AvailabilityStatus `gorm:"type:availability_status;not null;default:'available';index" json:"availability"`
	ProfileComplete bool               `gorm:"not null;default:false;index" json:"profile_complete"`
	HospitalID      *uuid.UUID         `gorm:"type:uuid;index" json:"hospital_id,omitempty"`
	CreatedAt       time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}

// RecomputeCompleteness updates the profile-complete flag from the fields
// matching requires: blood type, date of birth and a contact number.
func (p *Profile) RecomputeCompleteness() {
	p.ProfileComplete = p.BloodType != BloodTypeUnknown &&
		IsValidBloodType(p.BloodType) &&
		p.DateOfBirth != nil &&
		p.PhoneNumber != ""
}
