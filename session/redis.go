package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisAdapter persists the snapshot under a single Redis key. Intended for
// deployments where several operator tools share one authenticated session
// (for example a kiosk host running both the dashboard shell and pharmactl).
type RedisAdapter struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

// NewRedisAdapter creates a Redis-backed adapter. key must be non-empty; a
// zero ttl persists the snapshot without expiry.
func NewRedisAdapter(client redis.UniversalClient, key string, ttl time.Duration) (*RedisAdapter, error) {
	if client == nil {
		return nil, errors.New("nil redis client")
	}
	if key == "" {
		return nil, errors.New("empty redis key")
	}
	return &RedisAdapter{client: client, key: key, ttl: ttl}, nil
}

func (a *RedisAdapter) Load(ctx context.Context) ([]byte, error) {
	data, err := a.client.Get(ctx, a.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("redis load session snapshot: %w", err)
	}
	return data, nil
}

func (a *RedisAdapter) Save(ctx context.Context, data []byte) error {
	if err := a.client.Set(ctx, a.key, data, a.ttl).Err(); err != nil {
		return fmt.Errorf("redis save session snapshot: %w", err)
	}
	return nil
}

func (a *RedisAdapter) Clear(ctx context.Context) error {
	if err := a.client.Del(ctx, a.key).Err(); err != nil {
		return fmt.Errorf("redis clear session snapshot: %w", err)
	}
	return nil
}
