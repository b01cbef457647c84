package cache

import (
	"context"
	"time"

	"sns-app/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const animationKeyPrefix = "like_animation:"

// RedisAnimator keeps animation flags as expiring Redis keys so every
// instance behind a load balancer sees the same flag.
type RedisAnimator struct {
	client *redis.Client
	window time.Duration
	logger *logger.Logger
}

func NewRedisAnimator(client *redis.Client, window time.Duration, logger *logger.Logger) *RedisAnimator {
	return &RedisAnimator{
		client: client,
		window: window,
		logger: logger,
	}
}

func (a *RedisAnimator) Trigger(ctx context.Context, key string) {
	if err := a.client.Set(ctx, animationKeyPrefix+key, 1, a.window).Err(); err != nil {
		a.logger.Warn("Failed to set animation flag %s: %v", key, err)
	}
}

func (a *RedisAnimator) Active(ctx context.Context, key string) bool {
	n, err := a.client.Exists(ctx, animationKeyPrefix+key).Result()
	if err != nil {
		a.logger.Warn("Failed to read animation flag %s: %v", key, err)
		return false
	}
	return n > 0
}
