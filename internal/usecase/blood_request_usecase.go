package usecase

import (
	"context"
	"errors"

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
	ErrRequestNotFound     = errors.New("blood request not found")
	ErrRequestNotPending   = errors.New("blood request is not pending verification")
	ErrRequestClosed       = errors.New("blood request is already closed")
	ErrHospitalNotApproved = errors.New("hospital is not approved")
)

type BloodRequestUsecase interface {
	Create(ctx context.Context, requesterID uuid.UUID, req *dto.CreateBloodRequestRequest) (*dto.BloodRequestResponse, error)
	ListOwn(ctx context.Context, requesterID uuid.UUID) (*dto.BloodRequestListResponse, error)
	// ListForHospital is gated on hospital access (platform admin or
	// affiliated hospital admin).
	ListForHospital(ctx context.Context, callerID, hospitalID uuid.UUID) (*dto.BloodRequestListResponse, error)
	// Verify transitions pending_verification -> active. Only an admin of the
	// request's hospital or a platform admin may call it.
	Verify(ctx context.Context, callerID, requestID uuid.UUID) (*dto.BloodRequestResponse, error)
	// UpdateStatus fulfils or cancels a request. Hospital authority applies;
	// the requester may cancel their own pending request.
	UpdateStatus(ctx context.Context, callerID, requestID uuid.UUID, req *dto.UpdateRequestStatusRequest) (*dto.BloodRequestResponse, error)
}

type bloodRequestUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	hospitalRepo repository.HospitalRepository
	requestRepo  repository.BloodRequestRepository
	auditService service.AuditService
}

func NewBloodRequestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	hospitalRepo repository.HospitalRepository,
	requestRepo repository.BloodRequestRepository,
	auditService service.AuditService,
) BloodRequestUsecase {
	return &bloodRequestUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		hospitalRepo: hospitalRepo,
		requestRepo:  requestRepo,
		auditService: auditService,
	}
}

func (u *bloodRequestUsecase) Create(ctx context.Context, requesterID uuid.UUID, req *dto.CreateBloodRequestRequest) (*dto.BloodRequestResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(u.db, req.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}
	if !hospital.IsApproved() {
		return nil, ErrHospitalNotApproved
	}

	request := &entity.BloodRequest{
		RequesterID: requesterID,
		PatientName: req.PatientName,
		PatientAge:  *req.PatientAge,
		BloodType:   entity.BloodType(req.BloodType),
		Urgency:     entity.RequestUrgency(req.Urgency),
		HospitalID:  req.HospitalID,
		Status:      entity.RequestStatusPendingVerification,
	}

	if err := u.requestRepo.Create(u.db.WithContext(ctx), request); err != nil {
		if isForeignKeyError(err, "hospital") {
			return nil, ErrHospitalNotFound
		}
		u.log.Warnf("Failed to create blood request: %+v", err)
		return nil, err
	}

	request.Hospital = *hospital
	return converter.BloodRequestToResponse(request), nil
}

func (u *bloodRequestUsecase) ListOwn(ctx context.Context, requesterID uuid.UUID) (*dto.BloodRequestListResponse, error) {
	requests, err := u.requestRepo.FindByRequester(u.db, requesterID)
	if err != nil {
		u.log.Warnf("Failed to list own requests: %+v", err)
		return nil, err
	}

	responses := converter.BloodRequestsToResponses(requests)
	return &dto.BloodRequestListResponse{
		Requests: responses,
		Total:    len(responses),
	}, nil
}

func (u *bloodRequestUsecase) ListForHospital(ctx context.Context, callerID, hospitalID uuid.UUID) (*dto.BloodRequestListResponse, error) {
	caller, profile, err := u.loadCaller(callerID)
	if err != nil {
		return nil, err
	}
	if !entity.CanAccessHospital(caller, profile, hospitalID) {
		return nil, ErrNotAuthorized
	}

	requests, err := u.requestRepo.FindByHospital(u.db, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to list hospital requests: %+v", err)
		return nil, err
	}

	responses := converter.BloodRequestsToResponses(requests)
	return &dto.BloodRequestListResponse{
		Requests: responses,
		Total:    len(responses),
	}, nil
}

func (u *bloodRequestUsecase) Verify(ctx context.Context, callerID, requestID uuid.UUID) (*dto.BloodRequestResponse, error) {
	request, err := u.requestRepo.FindByID(u.db, requestID)
	if err != nil {
		u.log.Warnf("Failed to find blood request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	caller, profile, err := u.loadCaller(callerID)
	if err != nil {
		return nil, err
	}
	if !entity.CanManageRequest(caller, profile, &request.HospitalID) {
		return nil, ErrNotAuthorized
	}

	if !request.IsPendingVerification() {
		return nil, ErrRequestNotPending
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	oldValue := converter.BloodRequestToResponse(request)
	request.Verify()

	if err := u.requestRepo.Update(tx, request); err != nil {
		u.log.Warnf("Failed to verify blood request: %+v", err)
		return nil, err
	}

	newValue := converter.BloodRequestToResponse(request)
	if err := u.auditService.LogUpdate(ctx, tx, &callerID, entity.AuditActionRequestVerify, "blood_request", requestID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *bloodRequestUsecase) UpdateStatus(ctx context.Context, callerID, requestID uuid.UUID, req *dto.UpdateRequestStatusRequest) (*dto.BloodRequestResponse, error) {
	request, err := u.requestRepo.FindByID(u.db, requestID)
	if err != nil {
		u.log.Warnf("Failed to find blood request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	status := entity.RequestStatus(req.Status)

	caller, profile, err := u.loadCaller(callerID)
	if err != nil {
		return nil, err
	}

	allowed := entity.CanManageRequest(caller, profile, &request.HospitalID)
	// A requester may cancel their own request while it is still pending
	if !allowed && status == entity.RequestStatusCancelled &&
		request.RequesterID == callerID && request.IsPendingVerification() {
		allowed = true
	}
	if !allowed {
		return nil, ErrNotAuthorized
	}

	if request.Status == entity.RequestStatusFulfilled || request.Status == entity.RequestStatusCancelled {
		return nil, ErrRequestClosed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	oldValue := converter.BloodRequestToResponse(request)

	action := entity.AuditActionRequestCancel
	if status == entity.RequestStatusFulfilled {
		request.Fulfil()
		action = entity.AuditActionRequestFulfil
	} else {
		request.Cancel()
	}

	if err := u.requestRepo.Update(tx, request); err != nil {
		u.log.Warnf("Failed to update blood request status: %+v", err)
		return nil, err
	}

	newValue := converter.BloodRequestToResponse(request)
	if err := u.auditService.LogUpdate(ctx, tx, &callerID, action, "blood_request", requestID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *bloodRequestUsecase) loadCaller(callerID uuid.UUID) (*entity.User, *entity.Profile, error) {
	caller, err := u.userRepo.FindByID(u.db, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller: %+v", err)
		return nil, nil, err
	}
	if caller == nil {
		return nil, nil, ErrUserNotFound
	}

	profile, err := u.profileRepo.FindByUserID(u.db, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller profile: %+v", err)
		return nil, nil, err
	}

	return caller, profile, nil
}
