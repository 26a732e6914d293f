package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "fashion-directory:"

// Repository is the Redis backend of the storage port.
type Repository struct {
	client goredis.Cmdable
}

// NewRepository returns a Redis storage backend using client.
func NewRepository(client goredis.Cmdable) *Repository {
	return &Repository{client: client}
}

// Load retrieves a value by key, nil when the key does not exist
func (r *Repository) Load(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

// Save stores a key/value pair without expiration
func (r *Repository) Save(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Remove deletes a key
func (r *Repository) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
