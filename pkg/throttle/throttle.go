package throttle

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	defaultMaxKeys = 256
	defaultTTL     = 5 * time.Minute
)

// Limiter hands out per-key token buckets, evicting idle keys after a TTL.
type Limiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates a Limiter allowing perSecond requests per key with the given burst.
// A nil *Limiter (returned when perSecond <= 0) never blocks.
func New(perSecond float64, burst int) *Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](defaultMaxKeys, nil, defaultTTL),
		rate:     rate.Limit(perSecond),
		burst:    burst,
	}
}

func (l *Limiter) get(key string) *rate.Limiter {
	limiter, ok := l.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters.Add(key, limiter)
	}
	return limiter
}

// Wait blocks until a request for key may proceed or ctx is done.
func (l *Limiter) Wait(ctx context.Context, key string) error {
	if l == nil {
		return nil
	}
	if err := l.get(key).Wait(ctx); err != nil {
		return fmt.Errorf("throttle %s: %w", key, err)
	}
	return nil
}

// Allow reports whether a request for key may proceed right now.
func (l *Limiter) Allow(key string) bool {
	if l == nil {
		return true
	}
	return l.get(key).Allow()
}
