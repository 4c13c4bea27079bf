package repository

import (
	"lifelink-backend/internal/domain/entity"
	domainRepo "lifelink-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type donationRepository struct{}

func NewDonationRepository() domainRepo.DonationRepository {
	return &donationRepository{}
}

func (r *donationRepository) Create(db *gorm.DB, donation *entity.Donation) error {
	return db.Create(donation).Error
}

func (r *donationRepository) FindByDonor(db *gorm.DB, donorID uuid.UUID) ([]entity.Donation, error) {
	var donations []entity.Donation
	err := db.Preload("Hospital").
		Where("donor_id = ?", donorID).
		Order("donation_date DESC").
		Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) FindByHospital(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Donation, error) {
	var donations []entity.Donation
	err := db.Preload("Donor").
		Where("hospital_id = ?", hospitalID).
		Order("donation_date DESC").
		Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}
