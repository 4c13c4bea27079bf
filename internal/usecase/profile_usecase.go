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
	ErrProfileNotFound  = errors.New("profile not found")
	ErrHospitalRequired = errors.New("hospital admin role requires a hospital affiliation")
)

type ProfileUsecase interface {
	// GetOwnProfile returns the caller's profile, creating an empty one if
	// the account predates eager profile creation.
	GetOwnProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	UpdateOwnProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	// AssignRole sets a user's role and hospital affiliation. Platform admin only.
	AssignRole(ctx context.Context, callerID, targetID uuid.UUID, req *dto.AssignRoleRequest) (*dto.ProfileResponse, error)
}

type profileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	hospitalRepo repository.HospitalRepository
	auditService service.AuditService
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	hospitalRepo repository.HospitalRepository,
	auditService service.AuditService,
) ProfileUsecase {
	return &profileUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		hospitalRepo: hospitalRepo,
		auditService: auditService,
	}
}

func (u *profileUsecase) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	profile, err := u.ensureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return converter.ProfileToResponse(profile), nil
}

func (u *profileUsecase) UpdateOwnProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if _, err := u.ensureProfile(ctx, userID); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.profileRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	oldValue := converter.ProfileToResponse(profile)

	if req.FullName != "" {
		profile.User.FullName = req.FullName
		if err := u.userRepo.Update(tx, &profile.User); err != nil {
			u.log.Warnf("Failed to update user: %+v", err)
			return nil, err
		}
	}
	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		profile.DateOfBirth = &dob
	}
	if req.BloodType != "" {
		profile.BloodType = entity.BloodType(req.BloodType)
	}
	if req.Latitude != nil {
		profile.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		profile.Longitude = req.Longitude
	}
	if req.Availability != "" {
		profile.Availability = entity.AvailabilityStatus(req.Availability)
	}
	profile.RecomputeCompleteness()

	if err := u.profileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update profile: %+v", err)
		return nil, err
	}

	newValue := converter.ProfileToResponse(profile)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionProfileUpdate, "profile", userID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *profileUsecase) AssignRole(ctx context.Context, callerID, targetID uuid.UUID, req *dto.AssignRoleRequest) (*dto.ProfileResponse, error) {
	caller, err := u.userRepo.FindByID(u.db, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller: %+v", err)
		return nil, err
	}
	if !entity.IsRole(caller, entity.RolePlatformAdmin) {
		return nil, ErrNotAuthorized
	}

	role := entity.Role(req.Role)
	if role == entity.RoleHospitalAdmin && req.HospitalID == nil {
		return nil, ErrHospitalRequired
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	target, err := u.userRepo.FindByID(tx, targetID)
	if err != nil {
		u.log.Warnf("Failed to find target user: %+v", err)
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	profile, err := u.profileRepo.FindByUserID(tx, targetID)
	if err != nil {
		u.log.Warnf("Failed to find target profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if req.HospitalID != nil {
		hospital, err := u.hospitalRepo.FindByID(tx, *req.HospitalID)
		if err != nil {
			u.log.Warnf("Failed to find hospital: %+v", err)
			return nil, err
		}
		if hospital == nil {
			return nil, ErrHospitalNotFound
		}
	}

	oldValue := converter.ProfileToResponse(profile)

	target.Role = role
	if err := u.userRepo.Update(tx, target); err != nil {
		u.log.Warnf("Failed to update user role: %+v", err)
		return nil, err
	}

	profile.HospitalID = req.HospitalID
	if err := u.profileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update profile affiliation: %+v", err)
		return nil, err
	}
	profile.User = *target

	newValue := converter.ProfileToResponse(profile)
	if err := u.auditService.LogUpdate(ctx, tx, &callerID, entity.AuditActionProfileUpdate, "profile", targetID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// ensureProfile returns the user's profile, lazily creating an empty one for
// accounts that were registered before profiles were created eagerly.
func (u *profileUsecase) ensureProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := u.profileRepo.FindByUserID(u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find profile: %+v", err)
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	user, err := u.userRepo.FindByID(u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile = &entity.Profile{
		UserID:       userID,
		BloodType:    entity.BloodTypeUnknown,
		Availability: entity.AvailabilityAvailable,
	}
	if err := u.profileRepo.Create(u.db.WithContext(ctx), profile); err != nil {
		u.log.Warnf("Failed to lazily create profile: %+v", err)
		return nil, err
	}
	profile.User = *user
	return profile, nil
}
