package usecase

import (
	"context"
	"testing"

	"lifelink-backend/internal/delivery/dto"
	"lifelink-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestVerifyUnknownRequest(t *testing.T) {
	uc := NewBloodRequestUsecase(nil, testLogger(),
		newFakeUserRepo(), newFakeProfileRepo(), newFakeHospitalRepo(),
		newFakeBloodRequestRepo(), fakeAuditService{})

	_, err := uc.Verify(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestVerifyRejectsForeignHospitalAdmin(t *testing.T) {
	hospitalID := uuid.New()
	otherHospitalID := uuid.New()

	admin := &entity.User{ID: uuid.New(), Role: entity.RoleHospitalAdmin}
	adminProfile := &entity.Profile{UserID: admin.ID, HospitalID: &otherHospitalID}

	request := &entity.BloodRequest{
		ID:         uuid.New(),
		HospitalID: hospitalID,
		Status:     entity.RequestStatusPendingVerification,
	}

	uc := NewBloodRequestUsecase(nil, testLogger(),
		newFakeUserRepo(admin), newFakeProfileRepo(adminProfile), newFakeHospitalRepo(),
		newFakeBloodRequestRepo(request), fakeAuditService{})

	_, err := uc.Verify(context.Background(), admin.ID, request.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestVerifyRejectsIndividual(t *testing.T) {
	individual := &entity.User{ID: uuid.New(), Role: entity.RoleIndividual}
	request := &entity.BloodRequest{
		ID:          uuid.New(),
		RequesterID: individual.ID,
		HospitalID:  uuid.New(),
		Status:      entity.RequestStatusPendingVerification,
	}

	uc := NewBloodRequestUsecase(nil, testLogger(),
		newFakeUserRepo(individual), newFakeProfileRepo(), newFakeHospitalRepo(),
		newFakeBloodRequestRepo(request), fakeAuditService{})

	// Even the requester cannot verify their own request
	_, err := uc.Verify(context.Background(), individual.ID, request.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestVerifyRejectsNonPendingRequest(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), Role: entity.RolePlatformAdmin}
	request := &entity.BloodRequest{
		ID:         uuid.New(),
		HospitalID: uuid.New(),
		Status:     entity.RequestStatusActive,
	}

	uc := NewBloodRequestUsecase(nil, testLogger(),
		newFakeUserRepo(admin), newFakeProfileRepo(), newFakeHospitalRepo(),
		newFakeBloodRequestRepo(request), fakeAuditService{})

	_, err := uc.Verify(context.Background(), admin.ID, request.ID)
	assert.ErrorIs(t, err, ErrRequestNotPending)
}

func TestUpdateStatusClosedRequest(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), Role: entity.RolePlatformAdmin}
	request := &entity.BloodRequest{
		ID:         uuid.New(),
		HospitalID: uuid.New(),
		Status:     entity.RequestStatusFulfilled,
	}

	uc := NewBloodRequestUsecase(nil, testLogger(),
		newFakeUserRepo(admin), newFakeProfileRepo(), newFakeHospitalRepo(),
		newFakeBloodRequestRepo(request), fakeAuditService{})

	_, err := uc.UpdateStatus(context.Background(), admin.ID, request.ID,
		&dto.UpdateRequestStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrRequestClosed)
}

func TestUpdateStatusRequesterCannotCancelActiveRequest(t *testing.T) {
	requester := &entity.User{ID: uuid.New(), Role: entity.RoleIndividual}
	request := &entity.BloodRequest{
		ID:          uuid.New(),
		RequesterID: requester.ID,
		HospitalID:  uuid.New(),
		Status:      entity.RequestStatusActive,
	}

	uc := NewBloodRequestUsecase(nil, testLogger(),
		newFakeUserRepo(requester), newFakeProfileRepo(), newFakeHospitalRepo(),
		newFakeBloodRequestRepo(request), fakeAuditService{})

	// Once verified, only hospital authority may change the status
	_, err := uc.UpdateStatus(context.Background(), requester.ID, request.ID,
		&dto.UpdateRequestStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestCreateRequiresApprovedHospital(t *testing.T) {
	requester := &entity.User{ID: uuid.New(), Role: entity.RoleIndividual}
	pending := &entity.Hospital{ID: uuid.New(), Status: entity.HospitalStatusPendingReview}

	uc := NewBloodRequestUsecase(nil, testLogger(),
		newFakeUserRepo(requester), newFakeProfileRepo(), newFakeHospitalRepo(pending),
		newFakeBloodRequestRepo(), fakeAuditService{})

	age := 42
	_, err := uc.Create(context.Background(), requester.ID, &dto.CreateBloodRequestRequest{
		PatientName: "Jane Doe",
		PatientAge:  &age,
		BloodType:   "O+",
		Urgency:     "high",
		HospitalID:  pending.ID,
	})
	assert.ErrorIs(t, err, ErrHospitalNotApproved)

	_, err = uc.Create(context.Background(), requester.ID, &dto.CreateBloodRequestRequest{
		PatientName: "Jane Doe",
		PatientAge:  &age,
		BloodType:   "O+",
		Urgency:     "high",
		HospitalID:  uuid.New(),
	})
	assert.ErrorIs(t, err, ErrHospitalNotFound)
}
