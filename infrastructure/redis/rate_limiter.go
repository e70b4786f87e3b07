package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"task-tracker/domain/models"
	"task-tracker/domain/ports"
)

const rateLimitKeyPrefix = "ratelimit:api:"

// slidingWindowScript keeps one sorted-set member per accepted request, scored
// by its timestamp in milliseconds. Returns {allowed, remaining, retry_after_ms}.
var slidingWindowScript = redis.NewScript(`
	local key = KEYS[1]
	local counter_key = KEYS[2]
	local now = tonumber(ARGV[1])
	local window_start = tonumber(ARGV[2])
	local limit = tonumber(ARGV[3])
	local window_ms = tonumber(ARGV[4])

	redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)
	local count = redis.call('ZCARD', key)

	if count < limit then
		local seq = redis.call('INCR', counter_key)
		redis.call('ZADD', key, now, now .. ':' .. seq)
		redis.call('PEXPIRE', key, window_ms)
		redis.call('PEXPIRE', counter_key, window_ms)
		return {1, limit - count - 1, 0}
	end

	local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
	local retry_after = 0
	if #oldest >= 2 then
		retry_after = oldest[2] + window_ms - now
	end
	return {0, 0, retry_after}
`)

type RateLimiterConfig struct {
	Requests int
	Window   time.Duration
}

// SlidingWindowLimiter limits requests per key over a rolling window.
type SlidingWindowLimiter struct {
	client *Client
	config RateLimiterConfig
	now    func() time.Time
}

func NewSlidingWindowLimiter(client *Client, config RateLimiterConfig) *SlidingWindowLimiter {
	if config.Requests <= 0 {
		config.Requests = 100
	}
	if config.Window <= 0 {
		config.Window = time.Minute
	}
	return &SlidingWindowLimiter{
		client: client,
		config: config,
		now:    time.Now,
	}
}

func (l *SlidingWindowLimiter) Allow(ctx context.Context, key string) (*models.RateLimitResult, error) {
	now := l.now()
	redisKey := rateLimitKeyPrefix + key

	raw, err := slidingWindowScript.Run(ctx, l.client.Redis(),
		[]string{redisKey, redisKey + ":seq"},
		now.UnixMilli(),
		now.Add(-l.config.Window).UnixMilli(),
		l.config.Requests,
		l.config.Window.Milliseconds(),
	).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to run rate limit script: %w", err)
	}

	return l.toResult(now, raw)
}

func (l *SlidingWindowLimiter) toResult(now time.Time, raw []int64) (*models.RateLimitResult, error) {
	if len(raw) < 3 {
		return nil, fmt.Errorf("unexpected rate limit script result length: %d", len(raw))
	}

	result := &models.RateLimitResult{
		Allowed:   raw[0] == 1,
		Limit:     l.config.Requests,
		Remaining: int(raw[1]),
		ResetAt:   now.Add(l.config.Window),
	}
	if !result.Allowed && raw[2] > 0 {
		result.RetryAfter = time.Duration(raw[2]) * time.Millisecond
		result.ResetAt = now.Add(result.RetryAfter)
	}
	return result, nil
}

var _ ports.RateLimiterPort = (*SlidingWindowLimiter)(nil)
