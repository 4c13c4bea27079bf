package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lifelink-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrNotificationNotFound is returned when a primary notification record is absent
var ErrNotificationNotFound = errors.New("notification not found")

const (
	// Primary record: notification:<notificationID> -> JSON
	notificationKeyPrefix = "notification:"
	// Per-donor index: donor_notifications:<donorID>:<notificationID> -> notificationID
	donorIndexKeyPrefix = "donor_notifications:"

	// SCAN page size for donor index listing
	listScanCount = 100
)

// NotificationStore persists donor notifications. Each notification is written
// twice: a primary record keyed by its own ID and a donor-scoped index key
// that makes per-donor listing a prefix scan. The two writes are independent;
// callers must tolerate partial failure.
type NotificationStore interface {
	Save(ctx context.Context, n *entity.Notification) error
	// ListByDonor resolves every index key under the donor's prefix.
	// Index entries whose primary record is missing are silently dropped.
	// The result is unsorted and unbounded.
	ListByDonor(ctx context.Context, donorID uuid.UUID) ([]entity.Notification, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// redisCommands is the subset of the go-redis client the store depends on.
type redisCommands interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

type redisNotificationStore struct {
	redisClient redisCommands
	log         *logrus.Logger
}

func NewNotificationStore(redisClient *redis.Client, log *logrus.Logger) NotificationStore {
	return &redisNotificationStore{
		redisClient: redisClient,
		log:         log,
	}
}

func notificationKey(id uuid.UUID) string {
	return notificationKeyPrefix + id.String()
}

func donorIndexKey(donorID, notificationID uuid.UUID) string {
	return fmt.Sprintf("%s%s:%s", donorIndexKeyPrefix, donorID.String(), notificationID.String())
}

func (s *redisNotificationStore) Save(ctx context.Context, n *entity.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification %s: %w", n.ID, err)
	}

	if err := s.redisClient.Set(ctx, notificationKey(n.ID), payload, 0).Err(); err != nil {
		s.log.Warnf("Failed to write notification %s: %+v", n.ID, err)
		return fmt.Errorf("write notification %s: %w", n.ID, err)
	}

	if err := s.redisClient.Set(ctx, donorIndexKey(n.DonorID, n.ID), n.ID.String(), 0).Err(); err != nil {
		s.log.Warnf("Failed to write donor index for notification %s: %+v", n.ID, err)
		return fmt.Errorf("write donor index for notification %s: %w", n.ID, err)
	}

	return nil
}

func (s *redisNotificationStore) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]entity.Notification, error) {
	pattern := fmt.Sprintf("%s%s:*", donorIndexKeyPrefix, donorID.String())

	notifications := []entity.Notification{}
	var cursor uint64
	for {
		keys, next, err := s.redisClient.Scan(ctx, cursor, pattern, listScanCount).Result()
		if err != nil {
			s.log.Warnf("Failed to scan donor index for %s: %+v", donorID, err)
			return nil, fmt.Errorf("scan donor index for %s: %w", donorID, err)
		}

		for _, key := range keys {
			id, err := s.redisClient.Get(ctx, key).Result()
			if err != nil {
				// Index entry vanished between scan and resolve; skip
				continue
			}

			payload, err := s.redisClient.Get(ctx, notificationKeyPrefix+id).Result()
			if err != nil {
				// Dangling index with no primary record; skip
				continue
			}

			var n entity.Notification
			if err := json.Unmarshal([]byte(payload), &n); err != nil {
				s.log.Warnf("Failed to decode notification %s: %+v", id, err)
				continue
			}
			notifications = append(notifications, n)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return notifications, nil
}

func (s *redisNotificationStore) Get(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	payload, err := s.redisClient.Get(ctx, notificationKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotificationNotFound
		}
		s.log.Warnf("Failed to read notification %s: %+v", id, err)
		return nil, fmt.Errorf("read notification %s: %w", id, err)
	}

	var n entity.Notification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		return nil, fmt.Errorf("decode notification %s: %w", id, err)
	}
	return &n, nil
}

func (s *redisNotificationStore) MarkRead(ctx context.Context, id uuid.UUID) error {
	n, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	n.Read = true
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification %s: %w", id, err)
	}

	if err := s.redisClient.Set(ctx, notificationKey(id), payload, 0).Err(); err != nil {
		s.log.Warnf("Failed to update notification %s: %+v", id, err)
		return fmt.Errorf("update notification %s: %w", id, err)
	}

	return nil
}
