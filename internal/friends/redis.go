package friends

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKV is the production KV backed by a Redis server. All keys are
// namespaced so multiple profiles can coexist on one server.
type RedisKV struct {
	rdb       *redis.Client
	namespace string
}

// NewRedisKV creates a Redis-backed KV. Namespace must not be empty; it
// becomes part of every key.
func NewRedisKV(opts *redis.Options, namespace string) (*RedisKV, error) {
	if namespace == "" {
		return nil, fmt.Errorf("namespace cannot be empty")
	}
	return &RedisKV{rdb: redis.NewClient(opts), namespace: namespace}, nil
}

// Key returns the fully namespaced Redis key for a logical key name.
func (r *RedisKV) Key(name string) string {
	return fmt.Sprintf("lcfriends:%s:%s", r.namespace, name)
}

// Get reads a value. A missing key reports found=false with no error.
func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.rdb.Get(ctx, r.Key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q from Redis: %w", key, err)
	}
	return value, true, nil
}

// Set writes a value with no expiry.
func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, r.Key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %q to Redis: %w", key, err)
	}
	return nil
}

// Ping verifies Redis connectivity. Useful before the first user action so
// a dead server fails fast instead of on the first mutation.
func (r *RedisKV) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

// Close closes the Redis connection. Implements io.Closer.
func (r *RedisKV) Close() error {
	return r.rdb.Close()
}
