package entity

import (
	"time"

	"github.com/google/uuid"
)

// Donation is an append-only record of a completed donation, written by a
// hospital admin. Never updated or deleted except by account cascade.
type Donation struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DonorID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"donor_id"`
	HospitalID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"hospital_id"`
	DonationDate time.Time  `gorm:"type:date;not null" json:"donation_date"`
	RequestID    *uuid.UUID `gorm:"type:uuid;index" json:"request_id,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Donor    User          `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	Hospital Hospital      `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Request  *BloodRequest `gorm:"foreignKey:RequestID" json:"request,omitempty"`
}

func (Donation) TableName() string {
	return "donations"
}
