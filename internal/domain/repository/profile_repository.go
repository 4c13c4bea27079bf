package repository

import (
	"lifelink-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(db *gorm.DB, profile *entity.Profile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Profile, error)
	Update(db *gorm.DB, profile *entity.Profile) error
	// FindAvailableDonors returns complete, available individual profiles
	// whose blood type is in the given compatible set.
	FindAvailableDonors(db *gorm.DB, bloodTypes []entity.BloodType) ([]entity.Profile, error)
}
