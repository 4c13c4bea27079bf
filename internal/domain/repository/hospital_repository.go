package repository

import (
	"lifelink-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HospitalRepository interface {
	Create(db *gorm.DB, hospital *entity.Hospital) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Hospital, error)
	FindAll(db *gorm.DB) ([]entity.Hospital, error)
	FindByStatus(db *gorm.DB, status entity.HospitalStatus) ([]entity.Hospital, error)
	Update(db *gorm.DB, hospital *entity.Hospital) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
