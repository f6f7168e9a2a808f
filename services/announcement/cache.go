package announcement

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// RedisCache implements Cache on a Redis client. Announcements carry no TTL;
// each publish overwrites the previous value.
type RedisCache struct {
	Client *redis.Client
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	return c.Client.Set(ctx, key, value, 0).Err()
}
