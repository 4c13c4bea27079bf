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

var ErrDonorNotFound = errors.New("donor not found")

type DonationUsecase interface {
	// Record appends a completed donation. Only an admin of the hospital
	// (or a platform admin) may record one; the donor's availability flips
	// to recently_donated.
	Record(ctx context.Context, callerID uuid.UUID, req *dto.RecordDonationRequest) (*dto.DonationResponse, error)
	ListOwn(ctx context.Context, donorID uuid.UUID) (*dto.DonationListResponse, error)
	ListForHospital(ctx context.Context, callerID, hospitalID uuid.UUID) (*dto.DonationListResponse, error)
}

type donationUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	donationRepo repository.DonationRepository
	requestRepo  repository.BloodRequestRepository
	auditService service.AuditService
}

func NewDonationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	donationRepo repository.DonationRepository,
	requestRepo repository.BloodRequestRepository,
	auditService service.AuditService,
) DonationUsecase {
	return &donationUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		donationRepo: donationRepo,
		requestRepo:  requestRepo,
		auditService: auditService,
	}
}

func (u *donationUsecase) Record(ctx context.Context, callerID uuid.UUID, req *dto.RecordDonationRequest) (*dto.DonationResponse, error) {
	caller, err := u.userRepo.FindByID(u.db, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller: %+v", err)
		return nil, err
	}
	if caller == nil {
		return nil, ErrUserNotFound
	}
	profile, err := u.profileRepo.FindByUserID(u.db, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller profile: %+v", err)
		return nil, err
	}
	if !entity.CanAccessHospital(caller, profile, req.HospitalID) {
		return nil, ErrNotAuthorized
	}

	donationDate, err := time.Parse("2006-01-02", req.DonationDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	if req.RequestID != nil {
		request, err := u.requestRepo.FindByID(u.db, *req.RequestID)
		if err != nil {
			u.log.Warnf("Failed to find linked request: %+v", err)
			return nil, err
		}
		if request == nil {
			return nil, ErrRequestNotFound
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	donation := &entity.Donation{
		DonorID:      req.DonorID,
		HospitalID:   req.HospitalID,
		DonationDate: donationDate,
		RequestID:    req.RequestID,
	}

	if err := u.donationRepo.Create(tx, donation); err != nil {
		if isForeignKeyError(err, "donor") {
			return nil, ErrDonorNotFound
		}
		if isForeignKeyError(err, "hospital") {
			return nil, ErrHospitalNotFound
		}
		u.log.Warnf("Failed to record donation: %+v", err)
		return nil, err
	}

	// Donating flips the donor out of the matching pool until they mark
	// themselves available again
	donorProfile, err := u.profileRepo.FindByUserID(tx, req.DonorID)
	if err != nil {
		u.log.Warnf("Failed to find donor profile: %+v", err)
		return nil, err
	}
	if donorProfile != nil {
		donorProfile.Availability = entity.AvailabilityRecentlyDonated
		if err := u.profileRepo.Update(tx, donorProfile); err != nil {
			u.log.Warnf("Failed to update donor availability: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogCreate(ctx, tx, &callerID, entity.AuditActionDonationRecord, "donation", donation.ID.String(), converter.DonationToResponse(donation)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DonationToResponse(donation), nil
}

func (u *donationUsecase) ListOwn(ctx context.Context, donorID uuid.UUID) (*dto.DonationListResponse, error) {
	donations, err := u.donationRepo.FindByDonor(u.db, donorID)
	if err != nil {
		u.log.Warnf("Failed to list own donations: %+v", err)
		return nil, err
	}

	responses := converter.DonationsToResponses(donations)
	return &dto.DonationListResponse{
		Donations: responses,
		Total:     len(responses),
	}, nil
}

func (u *donationUsecase) ListForHospital(ctx context.Context, callerID, hospitalID uuid.UUID) (*dto.DonationListResponse, error) {
	caller, err := u.userRepo.FindByID(u.db, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller: %+v", err)
		return nil, err
	}
	profile, err := u.profileRepo.FindByUserID(u.db, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller profile: %+v", err)
		return nil, err
	}
	if !entity.CanAccessHospital(caller, profile, hospitalID) {
		return nil, ErrNotAuthorized
	}

	donations, err := u.donationRepo.FindByHospital(u.db, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to list hospital donations: %+v", err)
		return nil, err
	}

	responses := converter.DonationsToResponses(donations)
	return &dto.DonationListResponse{
		Donations: responses,
		Total:     len(responses),
	}, nil
}
