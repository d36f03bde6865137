package database

import (
	"context"
	"time"

	"movie-reviews/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InitRedis connects to Redis. It returns nil when no address is configured
// or the server does not answer; callers then run without the features
// Redis backs.
func InitRedis(ctx context.Context, config utils.RedisConfig, log *zap.Logger) *redis.Client {
	if config.Addr == "" {
		log.Info("Redis disabled, REDIS_ADDR is empty")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis unreachable, continuing without it",
			zap.String("addr", config.Addr),
			zap.Error(err))
		client.Close()
		return nil
	}

	log.Info("Redis connected", zap.String("addr", config.Addr))
	return client
}
