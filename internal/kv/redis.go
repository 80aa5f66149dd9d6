package kv

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// RedisStore persists values in Redis without expiry; collections are small
// and owned for the lifetime of the deployment.
type RedisStore struct {
	client *redis.Client
	tracer trace.Tracer
}

// NewRedisStore wraps a Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	if client == nil {
		panic("kv: redis client cannot be nil")
	}
	return &RedisStore{
		client: client,
		tracer: otel.Tracer("careportal.internal.kv"),
	}
}

// Get returns the value at key, or ErrKeyNotFound.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "kv.get")
	defer span.End()

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrKeyNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("kv: get %s: %w", key, err)
	}
	return data, nil
}

// Set stores value at key.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	ctx, span := s.tracer.Start(ctx, "kv.set")
	defer span.End()

	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("kv: set %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	ctx, span := s.tracer.Start(ctx, "kv.delete")
	defer span.End()

	if err := s.client.Del(ctx, key).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("kv: delete %s: %w", key, err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
