package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SeatsKey is the key holding the JSON-encoded free seats of a vehicle
// within one ledger namespace.
func SeatsKey(namespace, vehicleID string) string {
	return fmt.Sprintf("seats:%s:%s", namespace, vehicleID)
}

// RedisAvailabilityCache keys every entry by a namespace, so ledgers sharing
// a Redis server, or earlier runs, never see each other's seats.
type RedisAvailabilityCache struct {
	client    redis.Cmdable
	namespace string
}

// NewRedisAvailabilityCache uses a fresh random namespace when namespace is empty.
func NewRedisAvailabilityCache(client redis.Cmdable, namespace string) *RedisAvailabilityCache {
	if namespace == "" {
		namespace = uuid.NewString()
	}

	return &RedisAvailabilityCache{client: client, namespace: namespace}
}

func (c *RedisAvailabilityCache) Namespace() string {
	return c.namespace
}

func (c *RedisAvailabilityCache) key(vehicleID string) string {
	return SeatsKey(c.namespace, vehicleID)
}

func (c *RedisAvailabilityCache) GetSeats(ctx context.Context, vehicleID string) ([]int, bool, error) {
	raw, err := c.client.Get(ctx, c.key(vehicleID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	var seats []int
	if err := json.Unmarshal([]byte(raw), &seats); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached seats for %s: %w", vehicleID, err)
	}

	return seats, true, nil
}

func (c *RedisAvailabilityCache) SetSeats(ctx context.Context, vehicleID string, seats []int, ttl time.Duration) error {
	body, err := json.Marshal(seats)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, c.key(vehicleID), string(body), ttl).Err()
}

func (c *RedisAvailabilityCache) Invalidate(ctx context.Context, vehicleID string) error {
	return c.client.Del(ctx, c.key(vehicleID)).Err()
}
