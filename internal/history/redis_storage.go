package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const DefaultRedisKey = "workout-history"

// RedisStorage keeps the history slot under a single redis key.
// A SET replaces the whole value, so every write is atomic.
type RedisStorage struct {
	rdb *redis.Client
	key string
}

func NewRedisStorage(rdb *redis.Client, key string) (*RedisStorage, error) {
	if rdb == nil {
		return nil, errors.New("redis client is nil")
	}
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStorage{
		rdb: rdb,
		key: key,
	}, nil
}

func (s *RedisStorage) Read(ctx context.Context) ([]byte, error) {
	payload, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("redis get [%s]: %w", s.key, err)
	}
	return payload, nil
}

func (s *RedisStorage) Write(ctx context.Context, payload []byte) error {
	if err := s.rdb.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set [%s]: %w", s.key, err)
	}
	return nil
}

func (s *RedisStorage) Close() error {
	return s.rdb.Close()
}
