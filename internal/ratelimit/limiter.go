// Package ratelimit provides a fixed-window request limiter keyed by
// client identity, with a pluggable counter store so deployments can
// share windows through Redis and tests can drive a fake clock.
package ratelimit

import (
	"context"
	"time"
)

// Store counts hits per key within a window. Incr returns the number of
// hits recorded for the window the instant falls into, including this one.
type Store interface {
	Incr(ctx context.Context, key string, window time.Duration) (int, error)
}

type Limiter struct {
	store  Store
	limit  int
	window time.Duration
}

// New returns a limiter allowing limit hits per key per window.
func New(store Store, limit int, window time.Duration) *Limiter {
	return &Limiter{
		store:  store,
		limit:  limit,
		window: window,
	}
}

// Allow reports whether the key is under its limit. Store errors are
// returned to the caller, who decides the failure policy.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.store.Incr(ctx, key, l.window)
	if err != nil {
		return false, err
	}
	return count <= l.limit, nil
}
