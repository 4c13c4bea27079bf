package usecase

import (
	"context"
	"testing"
	"time"

	"lifelink-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListForDonorRejectsForeignCaller(t *testing.T) {
	uc := NewNotificationUsecase(testLogger(), newFakeNotificationStore())

	_, err := uc.ListForDonor(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrNotOwnNotifications)
}

func TestListForDonorNewestFirst(t *testing.T) {
	donorID := uuid.New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	store := newFakeNotificationStore()
	oldest := &entity.Notification{ID: uuid.New(), DonorID: donorID, Message: "oldest", CreatedAt: base}
	middle := &entity.Notification{ID: uuid.New(), DonorID: donorID, Message: "middle", CreatedAt: base.Add(time.Hour)}
	newest := &entity.Notification{ID: uuid.New(), DonorID: donorID, Message: "newest", CreatedAt: base.Add(2 * time.Hour)}
	for _, n := range []*entity.Notification{middle, oldest, newest} {
		require.NoError(t, store.Save(context.Background(), n))
	}

	uc := NewNotificationUsecase(testLogger(), store)

	result, err := uc.ListForDonor(context.Background(), donorID, donorID)
	require.NoError(t, err)

	require.Equal(t, 3, result.Total)
	assert.Equal(t, "newest", result.Notifications[0].Message)
	assert.Equal(t, "middle", result.Notifications[1].Message)
	assert.Equal(t, "oldest", result.Notifications[2].Message)
}

func TestListForDonorExcludesOtherDonors(t *testing.T) {
	donorID := uuid.New()

	store := newFakeNotificationStore()
	mine := &entity.Notification{ID: uuid.New(), DonorID: donorID, Message: "mine"}
	foreign := &entity.Notification{ID: uuid.New(), DonorID: uuid.New(), Message: "not mine"}
	require.NoError(t, store.Save(context.Background(), mine))
	require.NoError(t, store.Save(context.Background(), foreign))

	uc := NewNotificationUsecase(testLogger(), store)

	result, err := uc.ListForDonor(context.Background(), donorID, donorID)
	require.NoError(t, err)

	require.Equal(t, 1, result.Total)
	assert.Equal(t, "mine", result.Notifications[0].Message)
}

func TestMarkRead(t *testing.T) {
	store := newFakeNotificationStore()
	n := &entity.Notification{ID: uuid.New(), DonorID: uuid.New(), Message: "urgent"}
	require.NoError(t, store.Save(context.Background(), n))

	uc := NewNotificationUsecase(testLogger(), store)

	result, err := uc.MarkRead(context.Background(), n.ID)
	require.NoError(t, err)
	assert.True(t, result.Read)
	assert.Equal(t, n.ID, result.ID)
}

func TestMarkReadUnknownNotification(t *testing.T) {
	uc := NewNotificationUsecase(testLogger(), newFakeNotificationStore())

	_, err := uc.MarkRead(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
