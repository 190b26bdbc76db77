// Package ratelimiter enforces a per-user cooldown between write actions using Redis.
package ratelimiter

import (
	"context"
	"fmt"
	"math"
	"time"

	"anoa.com/forumapi/pkg/apperror"
	"github.com/redis/go-redis/v9"
)

type RateLimitError struct {
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	return e.Message
}

func (e *RateLimitError) Unwrap() error {
	return apperror.ErrRateLimitExceeded
}

// Cooldown lets a user perform an action at most once per window.
// A nil Cooldown or one without a client allows everything.
type Cooldown struct {
	rdb *redis.Client
}

func NewCooldown(rdb *redis.Client) *Cooldown {
	return &Cooldown{rdb: rdb}
}

func Key(userID, action string) string {
	return fmt.Sprintf("rate_limit:user:%s:%s", userID, action)
}

// Acquire claims the action for userID. It returns a *RateLimitError while a
// previous claim is still live.
func (c *Cooldown) Acquire(ctx context.Context, userID, action string, window time.Duration) error {
	if c == nil || c.rdb == nil || window <= 0 {
		return nil
	}

	key := Key(userID, action)
	wasSet, err := c.rdb.SetNX(ctx, key, "locked", window).Result()
	if err != nil {
		return fmt.Errorf("failed to check rate limit in redis: %w", err)
	}
	if wasSet {
		return nil
	}

	ttl, err := c.rdb.TTL(ctx, key).Result()
	if err != nil || ttl <= 0 {
		ttl = window
	}

	return &RateLimitError{
		RetryAfter: ttl,
		Message:    fmt.Sprintf("anda terlalu sering mengirim, coba lagi dalam %d detik", int(math.Ceil(ttl.Seconds()))),
	}
}

// Release drops the claim, e.g. when the guarded action failed.
func (c *Cooldown) Release(ctx context.Context, userID, action string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, Key(userID, action)).Err()
}

func (c *Cooldown) Ping(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}
