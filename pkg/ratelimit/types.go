package ratelimit

import (
	"context"
	"math"
	"time"
)

// Result contains the result of a rate limit check.
type Result struct {
	// Allowed indicates whether the request is allowed.
	Allowed bool

	// Limit is the maximum number of requests allowed in the window.
	Limit int

	// Remaining is the number of requests remaining in the current window.
	Remaining int

	// ResetAt is the time when the rate limit window resets.
	ResetAt time.Time
}

// RetryAfter returns how long to wait before the next request is allowed.
// Returns 0 if the current request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}

// RetryAfterSeconds rounds RetryAfter up to whole seconds, never below 1
// for a denied request. Suitable for the Retry-After header.
func (r *Result) RetryAfterSeconds() int {
	if r.Allowed {
		return 0
	}
	return max(1, int(math.Ceil(r.RetryAfter().Seconds())))
}

// Limiter defines the interface for rate limiting implementations.
type Limiter interface {
	// Allow checks if a single request is allowed for the given key.
	Allow(ctx context.Context, key string) (*Result, error)

	// AllowN checks if n requests are allowed for the given key.
	AllowN(ctx context.Context, key string, n int) (*Result, error)

	// Status returns the current state for key without consuming anything.
	Status(ctx context.Context, key string) (*Result, error)

	// Reset clears the state for key.
	Reset(ctx context.Context, key string) error
}

// Store defines the counter operations used by FixedWindow.
type Store interface {
	// IncrementAndGet atomically adds incr to the counter for key, starting a
	// new window of the given length if none is active, and returns the new
	// value along with the time left in the window.
	IncrementAndGet(ctx context.Context, key string, incr int, window time.Duration) (current int64, ttl time.Duration, err error)

	// Get returns the current counter value and the time left in the window.
	Get(ctx context.Context, key string) (current int64, ttl time.Duration, err error)

	// Delete removes the given key from the store.
	Delete(ctx context.Context, key string) error
}

// SlidingWindowStore extends Store with the timestamp operations used by SlidingWindow.
type SlidingWindowStore interface {
	Store

	// RecordIfAllowed atomically drops timestamps older than window, and
	// records n copies of now if that keeps the count at or below limit.
	// It returns whether they were recorded, the resulting count, and the
	// oldest timestamp still inside the window.
	RecordIfAllowed(ctx context.Context, key string, now time.Time, window time.Duration, limit, n int) (allowed bool, count int64, oldest time.Time, err error)

	// CountInWindow returns the number of timestamps within the window and the oldest of them.
	CountInWindow(ctx context.Context, key string, window time.Duration) (count int64, oldest time.Time, err error)
}
