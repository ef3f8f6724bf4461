package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// UsageStore keeps the usage log as a single Redis string value under its
// well-known key. No TTL: entries expire at read time, not in the store.
type UsageStore struct {
	client *redis.Client
}

func NewUsageStore(client *redis.Client) *UsageStore {
	return &UsageStore{client: client}
}

func (s *UsageStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *UsageStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}
