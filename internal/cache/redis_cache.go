package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/retail-pos/internal/config"
	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client *redis.Client
	cfg    *config.CacheConfig
}

func NewRedisCache(client *redis.Client, cfg *config.CacheConfig) Cache {
	return &redisCache{client: client, cfg: cfg}
}

func (r *redisCache) Get(ctx context.Context, key string, value any) (bool, error) {
	return decode(key, r.client.Get(ctx, key), value)
}

// GetEx reads key and resets its expiry to ttl in the same command (GETEX,
// Redis 6.2+). A till cart stays alive for as long as it is being worked on.
func (r *redisCache) GetEx(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	return decode(key, r.client.GetEx(ctx, key, r.expiry(ttl)), value)
}

func (r *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, data, r.expiry(ttl)).Err(); err != nil {
		return fmt.Errorf("failed to write %s to redis: %w", key, err)
	}

	return nil
}

func (r *redisCache) Delete(ctx context.Context, key string) error {

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s from redis: %w", key, err)
	}

	return nil
}

func (r *redisCache) expiry(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return r.cfg.DefaultTTL
	}

	return ttl
}

// decode turns a miss into (false, nil).
func decode(key string, cmd *redis.StringCmd, value any) (bool, error) {

	data, err := cmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to read %s from redis: %w", key, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to decode cached %s: %w", key, err)
	}

	return true, nil
}
