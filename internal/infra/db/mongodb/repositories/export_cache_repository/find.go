package export_cache_repository

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/trackify/trackify-backend/internal/infra/db/mongodb/helpers"
)

// Find returns the staged export blob for the key, or nil on a cache miss.
func Find(redisURL string, key string) ([]byte, error) {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	value, err := redisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading key %s from Redis: %w", key, err)
	}

	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("error decoding staged export: %w", err)
	}

	return decoded, nil
}
