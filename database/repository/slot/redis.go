package slotRepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

type redisSlotRepo struct {
	client *redis.Client
}

// NewRedisSlotRepo returns a SlotRepository storing each slot as a plain Redis string without TTL.
func NewRedisSlotRepo(client *redis.Client) SlotRepository {
	return &redisSlotRepo{client: client}
}

func (r *redisSlotRepo) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *redisSlotRepo) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *redisSlotRepo) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (r *redisSlotRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
