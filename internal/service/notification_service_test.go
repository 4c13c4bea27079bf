package service

import (
	"context"
	"encoding/json"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"lifelink-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedisCommands backs the store with a plain map. Scan serves one key per
// page so the cursor loop is exercised.
type fakeRedisCommands struct {
	data map[string]string
}

func newFakeRedisCommands() *fakeRedisCommands {
	return &fakeRedisCommands{data: map[string]string{}}
}

func (f *fakeRedisCommands) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case string:
		f.data[key] = v
	case []byte:
		f.data[key] = string(v)
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedisCommands) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedisCommands) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd {
	prefix := strings.TrimSuffix(match, "*")

	keys := []string{}
	for k := range f.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	if int(cursor) >= len(keys) {
		return redis.NewScanCmdResult(nil, 0, nil)
	}

	next := cursor + 1
	if int(next) >= len(keys) {
		next = 0
	}
	return redis.NewScanCmdResult(keys[cursor:cursor+1], next, nil)
}

func newTestStore(commands redisCommands) *redisNotificationStore {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &redisNotificationStore{redisClient: commands, log: log}
}

func sampleNotification(donorID uuid.UUID) *entity.Notification {
	return &entity.Notification{
		ID:        uuid.New(),
		DonorID:   donorID,
		RequestID: uuid.New(),
		Message:   "O+ blood needed",
		Urgency:   entity.UrgencyHigh,
		CreatedAt: time.Now().UTC(),
	}
}

func TestSaveWritesPrimaryAndDonorIndex(t *testing.T) {
	commands := newFakeRedisCommands()
	store := newTestStore(commands)

	n := sampleNotification(uuid.New())
	require.NoError(t, store.Save(context.Background(), n))

	payload, ok := commands.data[notificationKey(n.ID)]
	require.True(t, ok)

	var stored entity.Notification
	require.NoError(t, json.Unmarshal([]byte(payload), &stored))
	assert.Equal(t, n.ID, stored.ID)
	assert.Equal(t, n.Message, stored.Message)

	assert.Equal(t, n.ID.String(), commands.data[donorIndexKey(n.DonorID, n.ID)])
}

func TestListByDonorSkipsDanglingIndexEntries(t *testing.T) {
	commands := newFakeRedisCommands()
	store := newTestStore(commands)
	donorID := uuid.New()

	intact := sampleNotification(donorID)
	require.NoError(t, store.Save(context.Background(), intact))

	// Index whose primary record is gone
	dangling := uuid.New()
	commands.data[donorIndexKey(donorID, dangling)] = dangling.String()

	// Primary record that no longer decodes
	corrupt := sampleNotification(donorID)
	require.NoError(t, store.Save(context.Background(), corrupt))
	commands.data[notificationKey(corrupt.ID)] = "{not json"

	notifications, err := store.ListByDonor(context.Background(), donorID)
	require.NoError(t, err)

	require.Len(t, notifications, 1)
	assert.Equal(t, intact.ID, notifications[0].ID)
}

func TestListByDonorExcludesOtherDonors(t *testing.T) {
	commands := newFakeRedisCommands()
	store := newTestStore(commands)
	donorID := uuid.New()

	require.NoError(t, store.Save(context.Background(), sampleNotification(donorID)))
	require.NoError(t, store.Save(context.Background(), sampleNotification(donorID)))
	require.NoError(t, store.Save(context.Background(), sampleNotification(uuid.New())))

	notifications, err := store.ListByDonor(context.Background(), donorID)
	require.NoError(t, err)

	require.Len(t, notifications, 2)
	for _, n := range notifications {
		assert.Equal(t, donorID, n.DonorID)
	}
}

func TestGetMissingNotification(t *testing.T) {
	store := newTestStore(newFakeRedisCommands())

	_, err := store.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMarkReadRewritesPrimaryRecord(t *testing.T) {
	commands := newFakeRedisCommands()
	store := newTestStore(commands)

	n := sampleNotification(uuid.New())
	require.NoError(t, store.Save(context.Background(), n))

	require.NoError(t, store.MarkRead(context.Background(), n.ID))

	stored, err := store.Get(context.Background(), n.ID)
	require.NoError(t, err)
	assert.True(t, stored.Read)
}

func TestMarkReadMissingNotification(t *testing.T) {
	store := newTestStore(newFakeRedisCommands())

	err := store.MarkRead(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
