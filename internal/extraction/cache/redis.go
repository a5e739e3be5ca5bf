// Package cache stores extracted records in Redis for a short time.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"checkin/internal/document"
	"checkin/pkg/platform/sentinel"
)

const keyPrefix = "checkin:extraction:"

// RedisStore keeps records under their image hash with a TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedis creates a RedisStore.
func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func key(imageHash string) string {
	return keyPrefix + imageHash
}

// Get returns the record cached for imageHash, or sentinel.ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, imageHash string) (document.Record, error) {
	data, err := s.client.Get(ctx, key(imageHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return document.Record{}, sentinel.ErrNotFound
		}
		return document.Record{}, fmt.Errorf("get cached extraction: %w", err)
	}
	var record document.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return document.Record{}, fmt.Errorf("decode cached extraction: %w", err)
	}
	return record, nil
}

// Set caches record for ttl.
func (s *RedisStore) Set(ctx context.Context, imageHash string, record document.Record, ttl time.Duration) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode extraction: %w", err)
	}
	if err := s.client.Set(ctx, key(imageHash), data, ttl).Err(); err != nil {
		return fmt.Errorf("cache extraction: %w", err)
	}
	return nil
}
