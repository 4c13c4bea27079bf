package usecase

import (
	"context"
	"testing"

	"lifelink-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPlatformStatsRequiresPlatformAdmin(t *testing.T) {
	hospitalAdmin := &entity.User{ID: uuid.New(), Role: entity.RoleHospitalAdmin}

	uc := NewAnalyticsUsecase(nil, testLogger(),
		newFakeUserRepo(hospitalAdmin), newFakeProfileRepo(), newFakeHospitalRepo())

	_, err := uc.PlatformStats(context.Background(), hospitalAdmin.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestHospitalStatsRejectsForeignAdmin(t *testing.T) {
	hospitalID := uuid.New()
	otherHospitalID := uuid.New()

	admin := &entity.User{ID: uuid.New(), Role: entity.RoleHospitalAdmin}
	adminProfile := &entity.Profile{UserID: admin.ID, HospitalID: &otherHospitalID}

	uc := NewAnalyticsUsecase(nil, testLogger(),
		newFakeUserRepo(admin), newFakeProfileRepo(adminProfile),
		newFakeHospitalRepo(&entity.Hospital{ID: hospitalID, Status: entity.HospitalStatusApproved}))

	_, err := uc.HospitalStats(context.Background(), admin.ID, hospitalID)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestHospitalStatsUnknownHospital(t *testing.T) {
	platformAdmin := &entity.User{ID: uuid.New(), Role: entity.RolePlatformAdmin}

	uc := NewAnalyticsUsecase(nil, testLogger(),
		newFakeUserRepo(platformAdmin), newFakeProfileRepo(), newFakeHospitalRepo())

	_, err := uc.HospitalStats(context.Background(), platformAdmin.ID, uuid.New())
	assert.ErrorIs(t, err, ErrHospitalNotFound)
}
