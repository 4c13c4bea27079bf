package repository

import (
	"errors"

	"lifelink-backend/internal/domain/entity"
	domainRepo "lifelink-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type profileRepository struct{}

func NewProfileRepository() domainRepo.ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(db *gorm.DB, profile *entity.Profile) error {
	return db.Create(profile).Error
}

func (r *profileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Profile, error) {
	var profile entity.Profile
	err := db.Preload("User").Preload("Hospital").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(db *gorm.DB, profile *entity.Profile) error {
	return db.Save(profile).Error
}

func (r *profileRepository) FindAvailableDonors(db *gorm.DB, bloodTypes []entity.BloodType) ([]entity.Profile, error) {
	var profiles []entity.Profile
	err := db.Preload("User").
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("users.role = ?", entity.RoleIndividual).
		Where("profiles.profile_complete = ?", true).
		Where("profiles.availability = ?", entity.AvailabilityAvailable).
		Where("profiles.blood_type IN ?", bloodTypes).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
