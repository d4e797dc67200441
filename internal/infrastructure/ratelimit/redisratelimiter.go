package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tracklet-io/tracklet/internal/shared/biztime"
	"github.com/tracklet-io/tracklet/internal/shared/config"
)

// RedisRateLimiter is a sliding-window limiter over a sorted set per key, so
// every instance sharing the Redis database sees the same counts.
type RedisRateLimiter struct {
	client *redis.Client
	prefix string
}

func NewRedisRateLimiter(client *redis.Client, prefix string) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		prefix: prefix,
	}
}

// Allow records the attempt and reports whether it fits the rule. Rejected
// attempts are recorded too, so hammering keeps the window full.
func (l *RedisRateLimiter) Allow(ctx context.Context, key string, rule config.RateLimitRule) (Decision, error) {
	decision := Decision{Allowed: true, Limit: rule.Limit}
	if rule.Limit <= 0 || rule.WindowSeconds <= 0 {
		return decision, nil
	}

	window := rule.Window()
	redisKey := l.getKey(key)
	now := biztime.NowUTC()
	windowStart := now.Add(-window).UnixNano()

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: uuid.NewString()})
	oldest := pipe.ZRangeWithScores(ctx, redisKey, 0, 0)
	pipe.Expire(ctx, redisKey, window+time.Second)

	if _, err := pipe.Exec(ctx); err != nil {
		return decision, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	count := int(zcard.Val())
	if count >= rule.Limit {
		decision.Allowed = false
		decision.RetryAfter = window
		if first := oldest.Val(); len(first) > 0 {
			resetAt := time.Unix(0, int64(first[0].Score)).Add(window)
			if wait := resetAt.Sub(now); wait > 0 {
				decision.RetryAfter = wait
			}
		}
		return decision, nil
	}

	decision.Remaining = rule.Limit - count - 1
	return decision, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.getKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit %s: %w", key, err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(identifier string) string {
	return fmt.Sprintf("ratelimit:%s:%s", l.prefix, identifier)
}

// NewRedisClient connects and pings Redis.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.GetAddr(), err)
	}

	return client, nil
}
