package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisStore keeps the same JSON slots under "<prefix>:<key>". Useful when
// the dashboard state should survive the host, not just the process.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(url, prefix string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, prefix: prefix}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string, out interface{}) bool {
	data, err := s.client.Get(ctx, s.slot(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to read store slot")
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding corrupt store slot")
		return false
	}
	return true
}

func (s *RedisStore) Set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to encode store slot")
		return
	}
	if err := s.client.Set(ctx, s.slot(key), data, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to write store slot")
	}
}

func (s *RedisStore) slot(key string) string {
	return s.prefix + ":" + key
}
