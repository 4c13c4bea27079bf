package usecase

import (
	"context"
	"errors"
	"sort"

	"lifelink-backend/internal/converter"
	"lifelink-backend/internal/delivery/dto"
	"lifelink-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotOwnNotifications  = errors.New("cannot read another donor's notifications")
	ErrNotificationNotFound = errors.New("notification not found")
)

type NotificationUsecase interface {
	// ListForDonor returns the donor's notifications newest-first. The caller
	// must be the donor; this is an authorization check, not a data filter.
	ListForDonor(ctx context.Context, callerID, donorID uuid.UUID) (*dto.NotificationListResponse, error)
	MarkRead(ctx context.Context, notificationID uuid.UUID) (*dto.NotificationResponse, error)
}

type notificationUsecase struct {
	log   *logrus.Logger
	store service.NotificationStore
}

func NewNotificationUsecase(log *logrus.Logger, store service.NotificationStore) NotificationUsecase {
	return &notificationUsecase{
		log:   log,
		store: store,
	}
}

func (u *notificationUsecase) ListForDonor(ctx context.Context, callerID, donorID uuid.UUID) (*dto.NotificationListResponse, error) {
	if callerID != donorID {
		return nil, ErrNotOwnNotifications
	}

	notifications, err := u.store.ListByDonor(ctx, donorID)
	if err != nil {
		u.log.Warnf("Failed to list notifications for donor %s: %+v", donorID, err)
		return nil, err
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	responses := converter.NotificationsToResponses(notifications)
	return &dto.NotificationListResponse{
		Notifications: responses,
		Total:         len(responses),
	}, nil
}

func (u *notificationUsecase) MarkRead(ctx context.Context, notificationID uuid.UUID) (*dto.NotificationResponse, error) {
	if err := u.store.MarkRead(ctx, notificationID); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			return nil, ErrNotificationNotFound
		}
		u.log.Warnf("Failed to mark notification %s read: %+v", notificationID, err)
		return nil, err
	}

	n, err := u.store.Get(ctx, notificationID)
	if err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}

	return converter.NotificationToResponse(n), nil
}
