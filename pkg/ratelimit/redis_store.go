package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultRedisKeyPrefix = "ratelimit:"

// incrementScript bumps a fixed window counter and starts its expiry on first use.
var incrementScript = redis.NewScript(`
local current = redis.call('INCRBY', KEYS[1], ARGV[1])
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[2])
	ttl = tonumber(ARGV[2])
end
return {current, ttl}
`)

// recordScript keeps one sorted set member per accepted request, scored by its time in ms.
var recordScript = redis.NewScript(`
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local n = tonumber(ARGV[4])
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', now - window)
local count = redis.call('ZCARD', KEYS[1])
local allowed = 0
if count + n <= limit then
	for i = 1, n do
		redis.call('ZADD', KEYS[1], now, ARGV[5] .. ':' .. i)
	end
	count = count + n
	allowed = 1
end
local oldest = 0
if count > 0 then
	redis.call('PEXPIRE', KEYS[1], window)
	local first = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
	oldest = tonumber(first[2])
end
return {allowed, count, oldest}
`)

var countScript = redis.NewScript(`
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', now - window)
local count = redis.call('ZCARD', KEYS[1])
local oldest = 0
if count > 0 then
	local first = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
	oldest = tonumber(first[2])
end
return {count, oldest}
`)

// RedisStore keeps rate limit state in Redis so that every instance sees
// the same counters. Each operation is a single Lua script call.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix sets the prefix for every key written by the store.
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore creates a store backed by the given client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) (*RedisStore, error) {
	if client == nil {
		return nil, ErrStoreRequired
	}

	s := &RedisStore{
		client: client,
		prefix: defaultRedisKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// IncrementAndGet atomically increments the fixed window counter.
func (s *RedisStore) IncrementAndGet(ctx context.Context, key string, incr int, window time.Duration) (int64, time.Duration, error) {
	res, err := incrementScript.Run(ctx, s.client, []string{s.prefix + key}, incr, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, 0, fmt.Errorf("ratelimit: redis increment: %w", err)
	}
	if len(res) != 2 {
		return 0, 0, fmt.Errorf("ratelimit: redis increment: unexpected reply %v", res)
	}

	return res[0], time.Duration(res[1]) * time.Millisecond, nil
}

// Get returns the current counter value and the time left in its window.
func (s *RedisStore) Get(ctx context.Context, key string) (int64, time.Duration, error) {
	var (
		getCmd *redis.StringCmd
		ttlCmd *redis.DurationCmd
	)
	_, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		getCmd = pipe.Get(ctx, s.prefix+key)
		ttlCmd = pipe.PTTL(ctx, s.prefix+key)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, 0, fmt.Errorf("ratelimit: redis get: %w", err)
	}

	current, err := getCmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, fmt.Errorf("ratelimit: redis get: %w", err)
	}

	return current, max(0, ttlCmd.Val()), nil
}

// Delete removes the given key.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("ratelimit: redis delete: %w", err)
	}
	return nil
}

// RecordIfAllowed records n timestamps for key if the window has room for them.
func (s *RedisStore) RecordIfAllowed(ctx context.Context, key string, now time.Time, window time.Duration, limit, n int) (bool, int64, time.Time, error) {
	res, err := recordScript.Run(ctx, s.client, []string{s.prefix + key},
		now.UnixMilli(), window.Milliseconds(), limit, n, uuid.NewString(),
	).Int64Slice()
	if err != nil {
		return false, 0, time.Time{}, fmt.Errorf("ratelimit: redis record: %w", err)
	}
	if len(res) != 3 {
		return false, 0, time.Time{}, fmt.Errorf("ratelimit: redis record: unexpected reply %v", res)
	}

	return res[0] == 1, res[1], unixMilli(res[2]), nil
}

// CountInWindow returns the number of timestamps within the sliding window.
func (s *RedisStore) CountInWindow(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	res, err := countScript.Run(ctx, s.client, []string{s.prefix + key},
		time.Now().UnixMilli(), window.Milliseconds(),
	).Int64Slice()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("ratelimit: redis count: %w", err)
	}
	if len(res) != 2 {
		return 0, time.Time{}, fmt.Errorf("ratelimit: redis count: unexpected reply %v", res)
	}

	return res[0], unixMilli(res[1]), nil
}

func unixMilli(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
