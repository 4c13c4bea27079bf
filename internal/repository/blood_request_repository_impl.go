package repository

import (
	"errors"

	"lifelink-backend/internal/domain/entity"
	domainRepo "lifelink-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bloodRequestRepository struct{}

func NewBloodRequestRepository() domainRepo.BloodRequestRepository {
	return &bloodRequestRepository{}
}

func (r *bloodRequestRepository) Create(db *gorm.DB, request *entity.BloodRequest) error {
	return db.Create(request).Error
}

func (r *bloodRequestRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.BloodRequest, error) {
	var request entity.BloodRequest
	err := db.Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *bloodRequestRepository) FindByIDWithRelations(db *gorm.DB, id uuid.UUID) (*entity.BloodRequest, error) {
	var request entity.BloodRequest
	err := db.Preload("Hospital").Preload("Requester").Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *bloodRequestRepository) FindByRequester(db *gorm.DB, requesterID uuid.UUID) ([]entity.BloodRequest, error) {
	var requests []entity.BloodRequest
	err := db.Preload("Hospital").
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *bloodRequestRepository) FindByHospital(db *gorm.DB, hospitalID uuid.UUID) ([]entity.BloodRequest, error) {
	var requests []entity.BloodRequest
	err := db.Preload("Requester").
		Where("hospital_id = ?", hospitalID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *bloodRequestRepository) Update(db *gorm.DB, request *entity.BloodRequest) error {
	return db.Save(request).Error
}
