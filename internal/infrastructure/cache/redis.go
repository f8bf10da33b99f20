package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"pipecrm/internal/usecase/interfaces"
)

// RedisSnapshotCache backs the analytics snapshot cache with Redis. A miss is
// (nil, false, nil); only transport failures surface as errors.
type RedisSnapshotCache struct {
	client *redis.Client
}

var _ interfaces.ISnapshotCache = (*RedisSnapshotCache)(nil)

func NewRedisSnapshotCache(opt *redis.Options) *RedisSnapshotCache {
	return &RedisSnapshotCache{client: redis.NewClient(opt)}
}

func (c *RedisSnapshotCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (c *RedisSnapshotCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisSnapshotCache) Close() error {
	return c.client.Close()
}
