package repository

import (
	"lifelink-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonationRepository interface {
	Create(db *gorm.DB, donation *entity.Donation) error
	FindByDonor(db *gorm.DB, donorID uuid.UUID) ([]entity.Donation, error)
	FindByHospital(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Donation, error)
}
