package usecase

import (
	"context"
	"testing"

	"lifelink-backend/internal/delivery/dto"
	"lifelink-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAssignRoleRequiresPlatformAdmin(t *testing.T) {
	hospitalAdmin := &entity.User{ID: uuid.New(), Role: entity.RoleHospitalAdmin}

	uc := NewProfileUsecase(nil, testLogger(),
		newFakeUserRepo(hospitalAdmin), newFakeProfileRepo(), newFakeHospitalRepo(), fakeAuditService{})

	_, err := uc.AssignRole(context.Background(), hospitalAdmin.ID, uuid.New(),
		&dto.AssignRoleRequest{Role: "platform_admin"})
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestAssignRoleHospitalAdminNeedsAffiliation(t *testing.T) {
	platformAdmin := &entity.User{ID: uuid.New(), Role: entity.RolePlatformAdmin}

	uc := NewProfileUsecase(nil, testLogger(),
		newFakeUserRepo(platformAdmin), newFakeProfileRepo(), newFakeHospitalRepo(), fakeAuditService{})

	_, err := uc.AssignRole(context.Background(), platformAdmin.ID, uuid.New(),
		&dto.AssignRoleRequest{Role: "hospital_admin"})
	assert.ErrorIs(t, err, ErrHospitalRequired)
}
