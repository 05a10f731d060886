package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-event-listing/internal/logger"
	"github.com/sbilibin2017/gw-event-listing/internal/models"
)

// EventCacheRepository caches event details in Redis
type EventCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached events
}

// NewEventCacheRepository creates a new cache repository with the given TTL
func NewEventCacheRepository(client *redis.Client, expiration time.Duration) *EventCacheRepository {
	return &EventCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func eventCacheKey(id int64) string {
	return fmt.Sprintf("event:%d", id)
}

// Get returns the cached event, or nil on a cache miss.
func (r *EventCacheRepository) Get(ctx context.Context, id int64) (*models.Event, error) {
	key := eventCacheKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.FromContext(ctx).Infow("cache",
			"op", "get",
			"key", key,
			"result", "miss",
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var event models.Event
	if err := json.Unmarshal(val, &event); err != nil {
		logger.FromContext(ctx).Infow("cache",
			"op", "get",
			"key", key,
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	logger.FromContext(ctx).Infow("cache",
		"op", "get",
		"key", key,
		"result", "hit",
		"error", nil,
	)

	return &event, nil
}

// Set stores the event with the configured expiration
func (r *EventCacheRepository) Set(ctx context.Context, event *models.Event) error {
	key := eventCacheKey(event.ID)

	val, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, val, r.exp).Err()

	logger.FromContext(ctx).Infow("cache",
		"op", "set",
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Delete evicts the cached event, if any
func (r *EventCacheRepository) Delete(ctx context.Context, id int64) error {
	key := eventCacheKey(id)
	err := r.client.Del(ctx, key).Err()

	logger.FromContext(ctx).Infow("cache",
		"op", "delete",
		"key", key,
		"result", "evicted",
		"error", err,
	)

	return err
}
