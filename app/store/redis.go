package store

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "studyplanner:"

// RedisBackend persists entries as prefixed string keys.
type RedisBackend struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisBackend connects to the given address/database and pings it.
func NewRedisBackend(addr string, db int) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisBackend{client: client, ctx: ctx}, nil
}

func (b *RedisBackend) Load(key string) ([]byte, bool, error) {
	value, err := b.client.Get(b.ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (b *RedisBackend) Save(key string, value []byte) error {
	return b.client.Set(b.ctx, redisKeyPrefix+key, value, 0).Err()
}

func (b *RedisBackend) Close() error {
	return b.client.Close()
}
