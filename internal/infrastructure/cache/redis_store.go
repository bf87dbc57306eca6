package cache

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"draftingco/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates a Redis client using environment variables.
//
// Supported env vars:
//   - REDIS_ADDR (default: localhost:6379)
//   - REDIS_PASSWORD (optional)
//   - REDIS_DB (unset means 0)
func ConnectRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// The store degrades per-operation; startup does not hard-fail on a
		// cache outage.
		log.Printf("[cache][redis] ping failed addr=%s err=%v", client.Options().Addr, err)
	}
	return client
}

// RedisStore adapts a Redis client to the key-value store port used by the
// throttle window and the geolocation caches.

type RedisStore struct {
	client *redis.Client
}

var _ interfaces.IKeyValueStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", interfaces.ErrKeyNotFound
		}
		return "", err
	}
	return v, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
