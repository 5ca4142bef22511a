package ratelimit

import (
	"context"
	"time"
)

// Limiter answers whether the caller identified by key may make one more
// request in the current fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}
