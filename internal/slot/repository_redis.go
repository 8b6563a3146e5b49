package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "slot:"

// RedisRepository implements Repository on a Redis instance. Slots map to
// plain string keys under the `slot:` prefix with no expiry.
type RedisRepository struct {
	rdb *goredis.Client
}

func NewRedisRepository(addr string) (*RedisRepository, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisRepository{rdb: rdb}, nil
}

func (r *RedisRepository) Read(ctx context.Context, name string) (string, error) {
	value, err := r.rdb.Get(ctx, redisKeyPrefix+name).Result()
	if errors.Is(err, goredis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *RedisRepository) Write(ctx context.Context, name, value string) error {
	return r.rdb.Set(ctx, redisKeyPrefix+name, value, 0).Err()
}

func (r *RedisRepository) Delete(ctx context.Context, name string) error {
	return r.rdb.Del(ctx, redisKeyPrefix+name).Err()
}

func (r *RedisRepository) Close() error {
	return r.rdb.Close()
}
