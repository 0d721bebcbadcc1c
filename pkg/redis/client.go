package redis

import (
	"github.com/redis/go-redis/v9"

	"focalflow/pkg/config"
)

// NewRedisClient builds the cache client.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
