package usecase

import (
	"context"
	"errors"
	"testing"

	"lifelink-backend/internal/delivery/dto"
	"lifelink-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDonorsFiltersByCompatibility(t *testing.T) {
	aPos := entity.Profile{UserID: uuid.New(), BloodType: entity.BloodTypeAPositive, User: entity.User{FullName: "A Pos Donor"}}
	aNeg := entity.Profile{UserID: uuid.New(), BloodType: entity.BloodTypeANegative, User: entity.User{FullName: "A Neg Donor"}}
	oNeg := entity.Profile{UserID: uuid.New(), BloodType: entity.BloodTypeONegative, User: entity.User{FullName: "O Neg Donor"}}

	profileRepo := newFakeProfileRepo()
	profileRepo.donors = []entity.Profile{aPos, aNeg, oNeg}

	uc := NewDonorUsecase(nil, testLogger(), profileRepo, newFakeBloodRequestRepo(), newFakeNotificationStore())

	result, err := uc.FindDonors(context.Background(), &dto.FindDonorsRequest{
		BloodGroupNeeded: "A-",
	})
	require.NoError(t, err)

	assert.Equal(t, "A-", result.BloodGroupNeeded)
	assert.ElementsMatch(t, []string{"A-", "O-"}, result.CompatibleTypes)
	assert.ElementsMatch(t,
		[]entity.BloodType{entity.BloodTypeANegative, entity.BloodTypeONegative},
		profileRepo.lastDonorQuery)

	// A+ is Rh-incompatible with an A- recipient and must be excluded
	require.Len(t, result.Donors, 2)
	for _, donor := range result.Donors {
		assert.NotEqual(t, string(entity.BloodTypeAPositive), donor.BloodType)
	}
}

func TestFindDonorsUniversalRecipient(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	uc := NewDonorUsecase(nil, testLogger(), profileRepo, newFakeBloodRequestRepo(), newFakeNotificationStore())

	result, err := uc.FindDonors(context.Background(), &dto.FindDonorsRequest{
		BloodGroupNeeded: "AB+",
	})
	require.NoError(t, err)
	assert.Len(t, result.CompatibleTypes, 8)
	assert.NotNil(t, result.Donors)
	assert.Empty(t, result.Donors)
}

func TestNotifyDonorsFanOut(t *testing.T) {
	hospital := entity.Hospital{ID: uuid.New(), Name: "City General"}
	request := &entity.BloodRequest{
		ID:          uuid.New(),
		PatientName: "Jane Doe",
		BloodType:   entity.BloodTypeOPositive,
		Urgency:     entity.UrgencyCritical,
		HospitalID:  hospital.ID,
		Hospital:    hospital,
		Status:      entity.RequestStatusActive,
	}

	store := newFakeNotificationStore()
	uc := NewDonorUsecase(nil, testLogger(), newFakeProfileRepo(), newFakeBloodRequestRepo(request), store)

	donorIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	result, err := uc.NotifyDonors(context.Background(), uuid.New(), &dto.NotifyDonorsRequest{
		RequestID: request.ID,
		DonorIDs:  donorIDs,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.NotificationsCount)
	assert.Equal(t, "Notified 3 donors", result.Message)
	assert.Len(t, store.notifications, 3)

	for _, n := range store.notifications {
		assert.Equal(t, request.ID, n.RequestID)
		assert.Equal(t, entity.UrgencyCritical, n.Urgency)
		assert.False(t, n.Read)
		assert.Contains(t, n.Message, "O+ blood needed for Jane Doe at City General")
	}
}

func TestNotifyDonorsBestEffortOnPartialFailure(t *testing.T) {
	request := &entity.BloodRequest{
		ID:       uuid.New(),
		Hospital: entity.Hospital{Name: "City General"},
		Urgency:  entity.UrgencyHigh,
	}

	healthy := uuid.New()
	broken := uuid.New()

	store := newFakeNotificationStore()
	store.failFor[broken] = errors.New("connection reset")

	uc := NewDonorUsecase(nil, testLogger(), newFakeProfileRepo(), newFakeBloodRequestRepo(request), store)

	result, err := uc.NotifyDonors(context.Background(), uuid.New(), &dto.NotifyDonorsRequest{
		RequestID: request.ID,
		DonorIDs:  []uuid.UUID{healthy, broken},
	})
	require.NoError(t, err)

	// The failed donor is skipped, not retried, and does not fail the call
	assert.Equal(t, 1, result.NotificationsCount)
	assert.Len(t, store.notifications, 1)
}

func TestNotifyDonorsUnknownRequest(t *testing.T) {
	uc := NewDonorUsecase(nil, testLogger(), newFakeProfileRepo(), newFakeBloodRequestRepo(), newFakeNotificationStore())

	_, err := uc.NotifyDonors(context.Background(), uuid.New(), &dto.NotifyDonorsRequest{
		RequestID: uuid.New(),
		DonorIDs:  []uuid.UUID{uuid.New()},
	})
	assert.ErrorIs(t, err, ErrRequestNotFound)
}
