package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/avolkoff/calendar-api/internal/logger"
	"github.com/avolkoff/calendar-api/internal/models"
)

// EventListCacheRepository caches per-user event lists in Redis.
// Entries expire after the configured TTL and are purged on event
// mutations, so staleness is bounded by the TTL.
type EventListCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewEventListCacheRepository(client *redis.Client, expiration time.Duration) *EventListCacheRepository {
	return &EventListCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func listKey(userID uuid.UUID) string {
	return fmt.Sprintf("events:list:%s", userID)
}

// Get returns the cached event list for a user, or nil on a cache miss.
func (r *EventListCacheRepository) Get(ctx context.Context, userID uuid.UUID) ([]models.EventView, error) {
	key := listKey(userID)

	val, err := r.client.Get(ctx, key).Bytes()

	logger.Log.Infow(
		"key", key,
		"hit", err == nil,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var events []models.EventView
	if err := json.Unmarshal(val, &events); err != nil {
		return nil, err
	}

	return events, nil
}

// Set caches the event list for a user with the repository TTL.
func (r *EventListCacheRepository) Set(ctx context.Context, userID uuid.UUID, events []models.EventView) error {
	key := listKey(userID)

	data, err := json.Marshal(events)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"entries", len(events),
		"error", err,
	)

	return err
}

// Purge drops the cached lists of the given users.
func (r *EventListCacheRepository) Purge(ctx context.Context, userIDs ...uuid.UUID) error {
	if len(userIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, listKey(id))
	}

	err := r.client.Del(ctx, keys...).Err()

	logger.Log.Infow(
		"keys", keys,
		"error", err,
	)

	return err
}
