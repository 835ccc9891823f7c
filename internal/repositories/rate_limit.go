package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/personal-horoscope/internal/logger"
)

// RequestCounterRepository counts requests per key in fixed windows using Redis.
type RequestCounterRepository struct {
	client *redis.Client
}

// NewRequestCounterRepository creates a new repository instance
func NewRequestCounterRepository(client *redis.Client) *RequestCounterRepository {
	return &RequestCounterRepository{client: client}
}

// Increment bumps the counter for key and returns the count within the current window
// together with the time left until the window resets.
// The window starts with the first request and is never extended by later ones.
func (r *RequestCounterRepository) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	key = fmt.Sprintf("rate_limit:%s", key)

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		ttl = pipe.PTTL(ctx, key)
		return nil
	})

	logger.Log.Infow("redis",
		"key", key,
		"window", window,
		"result", incr.Val(),
		"error", err,
	)

	if err != nil {
		return 0, 0, err
	}

	remaining := ttl.Val()
	if remaining < 0 {
		remaining = window
	}
	return incr.Val(), remaining, nil
}
