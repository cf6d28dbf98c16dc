package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements an in-memory store for rate limiting.
// It supports both fixed and sliding window algorithms.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]*counter
	windows  map[string]*slidingWindow

	cleanupInterval time.Duration
	initialCapacity int
	stopCleanup     chan struct{}
	cleanupOnce     sync.Once
}

type counter struct {
	count     int64
	expiresAt time.Time
}

type slidingWindow struct {
	timestamps []time.Time
	window     time.Duration
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets the cleanup interval for expired entries.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		if interval > 0 {
			s.cleanupInterval = interval
		}
	}
}

// WithInitialCapacity sets the initial capacity for sliding window timestamps.
func WithInitialCapacity(capacity int) MemoryStoreOption {
	return func(s *MemoryStore) {
		if capacity > 0 {
			s.initialCapacity = capacity
		}
	}
}

// NewMemoryStore creates a new in-memory store with automatic cleanup.
// Call Close to stop the cleanup goroutine.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		counters:        make(map[string]*counter),
		windows:         make(map[string]*slidingWindow),
		cleanupInterval: time.Minute,
		initialCapacity: 32,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	go s.cleanupLoop()

	return s
}

// IncrementAndGet atomically increments the fixed window counter.
func (s *MemoryStore) IncrementAndGet(_ context.Context, key string, incr int, window time.Duration) (int64, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	c, exists := s.counters[key]

	// Start a new window if none is active
	if !exists || !now.Before(c.expiresAt) {
		c = &counter{
			count:     int64(incr),
			expiresAt: now.Add(window),
		}
		s.counters[key] = c
		return c.count, window, nil
	}

	c.count += int64(incr)
	return c.count, c.expiresAt.Sub(now), nil
}

// Get returns the current counter value and the time left in its window.
func (s *MemoryStore) Get(_ context.Context, key string) (int64, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.counters[key]
	if !exists {
		return 0, 0, nil
	}

	now := time.Now()
	if !now.Before(c.expiresAt) {
		return 0, 0, nil
	}

	return c.count, c.expiresAt.Sub(now), nil
}

// Delete removes the given key from both counters and windows.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.counters, key)
	delete(s.windows, key)
	return nil
}

// RecordIfAllowed records n timestamps for key if the window has room for them.
func (s *MemoryStore) RecordIfAllowed(_ context.Context, key string, now time.Time, window time.Duration, limit, n int) (bool, int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sw, exists := s.windows[key]
	if !exists {
		sw = &slidingWindow{timestamps: make([]time.Time, 0, max(s.initialCapacity, n))}
	}
	sw.window = window
	sw.timestamps = prune(sw.timestamps, now.Add(-window))

	allowed := len(sw.timestamps)+n <= limit
	if allowed {
		for range n {
			sw.timestamps = append(sw.timestamps, now)
		}
	}

	if len(sw.timestamps) == 0 {
		delete(s.windows, key)
		return allowed, 0, time.Time{}, nil
	}

	s.windows[key] = sw
	return allowed, int64(len(sw.timestamps)), sw.timestamps[0], nil
}

// CountInWindow returns the number of timestamps within the sliding window.
func (s *MemoryStore) CountInWindow(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sw, exists := s.windows[key]
	if !exists {
		return 0, time.Time{}, nil
	}

	sw.timestamps = prune(sw.timestamps, time.Now().Add(-window))
	if len(sw.timestamps) == 0 {
		delete(s.windows, key)
		return 0, time.Time{}, nil
	}

	return int64(len(sw.timestamps)), sw.timestamps[0], nil
}

// Close stops the cleanup goroutine.
func (s *MemoryStore) Close() error {
	s.cleanupOnce.Do(func() {
		close(s.stopCleanup)
	})
	return nil
}

// prune drops timestamps at or before cutoff. Timestamps are kept in insertion order.
func prune(ts []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(ts) && !ts[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return ts
	}
	return append(ts[:0], ts[i:]...)
}

// cleanupLoop runs periodically to remove expired entries.
func (s *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCleanup:
			return
		}
	}
}

// cleanup removes expired counters and windows with no recent timestamps.
func (s *MemoryStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	for key, c := range s.counters {
		if !now.Before(c.expiresAt) {
			delete(s.counters, key)
		}
	}

	for key, sw := range s.windows {
		sw.timestamps = prune(sw.timestamps, now.Add(-sw.window))
		if len(sw.timestamps) == 0 {
			delete(s.windows, key)
		}
	}
}
