package ratelimit

import (
	"context"
	"time"

	"github.com/tracklet-io/tracklet/internal/shared/config"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type Limiter interface {
	Allow(ctx context.Context, key string, rule config.RateLimitRule) (Decision, error)
	Reset(ctx context.Context, key string) error
}
