package repository

import (
	"context"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "clatprep:doc:"

// RedisDocumentStore keeps documents as plain string values under a shared
// key prefix.
type RedisDocumentStore struct {
	Client *redis.Client
}

func NewRedisDocumentStore(client *redis.Client) *RedisDocumentStore {
	return &RedisDocumentStore{Client: client}
}

func (s *RedisDocumentStore) Get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := s.Client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (s *RedisDocumentStore) Set(ctx context.Context, key string, value []byte) error {
	// No TTL: progress documents live for the lifetime of the profile.
	return s.Client.Set(ctx, redisKeyPrefix+key, value, 0).Err()
}

func (s *RedisDocumentStore) Remove(ctx context.Context, key string) error {
	return s.Client.Del(ctx, redisKeyPrefix+key).Err()
}

func (s *RedisDocumentStore) Clear(ctx context.Context) error {
	keys, err := s.Client.Keys(ctx, redisKeyPrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.Client.Del(ctx, keys...).Err()
}
