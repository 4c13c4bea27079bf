package usecase

import (
	"context"
	"errors"
	"time"

	"lifelink-backend/internal/converter"
	"lifelink-backend/internal/delivery/dto"
	"lifelink-backend/internal/domain/entity"
	"lifelink-backend/internal/domain/repository"
	"lifelink-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrHospitalNotFound = errors.New("hospital not found")
	ErrLicenseExists    = errors.New("hospital with this license number already exists")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrAlreadyProcessed = errors.New("hospital application already processed")
)

type HospitalUsecase interface {
	// Apply registers a hospital application. Public, unauthenticated.
	Apply(ctx context.Context, req *dto.ApplyHospitalRequest) (*dto.HospitalResponse, error)
	// ListApproved returns approved hospitals, visible to everyone.
	ListApproved(ctx context.Context) (*dto.HospitalListResponse, error)
	// ListAll returns every hospital regardless of status. Platform admin only.
	ListAll(ctx context.Context, callerID uuid.UUID) (*dto.HospitalListResponse, error)
	Approve(ctx context.Context, callerID, hospitalID uuid.UUID) (*dto.HospitalResponse, error)
	Suspend(ctx context.Context, callerID, hospitalID uuid.UUID) (*dto.HospitalResponse, error)
	Delete(ctx context.Context, callerID, hospitalID uuid.UUID) error
}

type hospitalUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	hospitalRepo repository.HospitalRepository
	auditService service.AuditService
}

func NewHospitalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	auditService service.AuditService,
) HospitalUsecase {
	return &hospitalUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		hospitalRepo: hospitalRepo,
		auditService: auditService,
	}
}

func (u *hospitalUsecase) Apply(ctx context.Context, req *dto.ApplyHospitalRequest) (*dto.HospitalResponse, error) {
	hospital := &entity.Hospital{
		Name:          req.Name,
		Address:       req.Address,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		ContactPerson: req.ContactPerson,
		ContactPhone:  req.ContactPhone,
		ContactEmail:  req.ContactEmail,
		LicenseNumber: req.LicenseNumber,
		AppliedAt:     time.Now().UTC(),
		Status:        entity.HospitalStatusPendingReview,
	}

	if err := u.hospitalRepo.Create(u.db, hospital); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseExists
		}
		u.log.Warnf("Failed to create hospital application: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) ListApproved(ctx context.Context) (*dto.HospitalListResponse, error) {
	hospitals, err := u.hospitalRepo.FindByStatus(u.db, entity.HospitalStatusApproved)
	if err != nil {
		u.log.Warnf("Failed to list approved hospitals: %+v", err)
		return nil, err
	}

	responses := converter.HospitalsToResponses(hospitals)
	return &dto.HospitalListResponse{
		Hospitals: responses,
		Total:     len(responses),
	}, nil
}

func (u *hospitalUsecase) ListAll(ctx context.Context, callerID uuid.UUID) (*dto.HospitalListResponse, error) {
	if err := u.requirePlatformAdmin(callerID); err != nil {
		return nil, err
	}

	hospitals, err := u.hospitalRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to list hospitals: %+v", err)
		return nil, err
	}

	responses := converter.HospitalsToResponses(hospitals)
	return &dto.HospitalListResponse{
		Hospitals: responses,
		Total:     len(responses),
	}, nil
}

func (u *hospitalUsecase) Approve(ctx context.Context, callerID, hospitalID uuid.UUID) (*dto.HospitalResponse, error) {
	if err := u.requirePlatformAdmin(callerID); err != nil {
		return nil, err
	}

	hospital, err := u.hospitalRepo.FindByID(u.db, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}
	if hospital.Status != entity.HospitalStatusPendingReview {
		return nil, ErrAlreadyProcessed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	oldValue := converter.HospitalToResponse(hospital)
	hospital.Approve()

	if err := u.hospitalRepo.Update(tx, hospital); err != nil {
		u.log.Warnf("Failed to approve hospital: %+v", err)
		return nil, err
	}

	newValue := converter.HospitalToResponse(hospital)
	if err := u.auditService.LogUpdate(ctx, tx, &callerID, entity.AuditActionHospitalApprove, "hospital", hospitalID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *hospitalUsecase) Suspend(ctx context.Context, callerID, hospitalID uuid.UUID) (*dto.HospitalResponse, error) {
	if err := u.requirePlatformAdmin(callerID); err != nil {
		return nil, err
	}

	hospital, err := u.hospitalRepo.FindByID(u.db, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	oldValue := converter.HospitalToResponse(hospital)
	hospital.Suspend()

	if err := u.hospitalRepo.Update(tx, hospital); err != nil {
		u.log.Warnf("Failed to suspend hospital: %+v", err)
		return nil, err
	}

	newValue := converter.HospitalToResponse(hospital)
	if err := u.auditService.LogUpdate(ctx, tx, &callerID, entity.AuditActionHospitalSuspend, "hospital", hospitalID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *hospitalUsecase) Delete(ctx context.Context, callerID, hospitalID uuid.UUID) error {
	if err := u.requirePlatformAdmin(callerID); err != nil {
		return err
	}

	hospital, err := u.hospitalRepo.FindByID(u.db, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return err
	}
	if hospital == nil {
		return ErrHospitalNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	oldValue := converter.HospitalToResponse(hospital)

	affectedRows, err := u.hospitalRepo.Delete(tx, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to delete hospital: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrHospitalNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &callerID, entity.AuditActionHospitalDelete, "hospital", hospitalID.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *hospitalUsecase) requirePlatformAdmin(callerID uuid.UUID) error {
	caller, err := u.userRepo.FindByID(u.db, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller: %+v", err)
		return err
	}
	if !entity.IsRole(caller, entity.RolePlatformAdmin) {
		return ErrNotAuthorized
	}
	return nil
}
