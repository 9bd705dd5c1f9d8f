// Package ratelimit implements a fixed-window request limiter with
// pluggable backing stores.
package ratelimit

import (
	"context"
	"time"
)

// Limiter decides whether a request identified by key may proceed.
// When it may not, retryAfter tells the caller how long until the
// current window resets.
type Limiter interface {
	Allow(ctx context.Context, key string) (ok bool, retryAfter time.Duration, err error)
}
