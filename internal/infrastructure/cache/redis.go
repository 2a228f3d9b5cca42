package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/voicenotes/pkg/config"
)

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Println("✅ Redis connected successfully")
	return client, nil
}

// RedisStore adapts a Redis client to the key-value interface used by the result store
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Set stores a value. expiration <= 0 keeps the value until deleted.
func (rs *RedisStore) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if expiration < 0 {
		expiration = 0
	}
	return rs.client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key; redis.Nil is reported as a miss
func (rs *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := rs.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Delete removes a key
func (rs *RedisStore) Delete(ctx context.Context, key string) error {
	return rs.client.Del(ctx, key).Err()
}

// Close closes the underlying client
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
