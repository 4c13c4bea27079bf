package repository

import (
	"lifelink-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BloodRequestRepository interface {
	Create(db *gorm.DB, request *entity.BloodRequest) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.BloodRequest, error)
	// FindByIDWithRelations loads the request with its hospital and
	// requester rows joined, for notification message templating.
	FindByIDWithRelations(db *gorm.DB, id uuid.UUID) (*entity.BloodRequest, error)
	FindByRequester(db *gorm.DB, requesterID uuid.UUID) ([]entity.BloodRequest, error)
	FindByHospital(db *gorm.DB, hospitalID uuid.UUID) ([]entity.BloodRequest, error)
	Update(db *gorm.DB, request *entity.BloodRequest) error
}
