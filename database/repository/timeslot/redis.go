package timeslotRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"slotbook/models"

	"github.com/go-redis/redis/v8"
)

// RedisSlotCache implements SlotCache on top of a Redis client.
type RedisSlotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSlotCache creates a SlotCache backed by the given Redis client.
func NewRedisSlotCache(client *redis.Client, ttl time.Duration) *RedisSlotCache {
	return &RedisSlotCache{client: client, ttl: ttl}
}

func cacheKey(companyID, date string) string {
	return "slots:" + companyID + ":" + date
}

func (c *RedisSlotCache) Get(ctx context.Context, companyID, date string) ([]models.TimeSlot, bool, error) {
	data, err := c.client.Get(ctx, cacheKey(companyID, date)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read slot cache: %w", err)
	}
	var slots []models.TimeSlot
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		// A corrupt entry is treated as a miss; the resolver recomputes.
		return nil, false, nil
	}
	return slots, true, nil
}

func (c *RedisSlotCache) Set(ctx context.Context, companyID, date string, slots []models.TimeSlot) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("failed to marshal slots: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(companyID, date), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write slot cache: %w", err)
	}
	return nil
}

func (c *RedisSlotCache) Invalidate(ctx context.Context, companyID, date string) error {
	if err := c.client.Del(ctx, cacheKey(companyID, date)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate slot cache: %w", err)
	}
	return nil
}
