package redis

import (
	"cataractcare-service/internal/app/contracts"
	"cataractcare-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

// Values are stored JSON encoded, so a string "abc" is kept as "\"abc\"".
func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

// Get returns an empty string and no error for a missing key.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGetNoData(err, key)
	}
	return data, nil
}

func (r *redisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	acquired, err := r.client.SetNX(ctx, key, jsonValue, exp).Result()
	if err != nil {
		return false, exceptions.ErrRedisSetNX(err)
	}
	return acquired, nil
}

func (r *redisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	err := r.client.Expire(ctx, key, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}
