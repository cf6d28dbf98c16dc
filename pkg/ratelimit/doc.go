// Package ratelimit limits how often a client may hit an endpoint.
//
// Two algorithms share the Limiter interface:
//
//   - FixedWindow counts requests in consecutive windows. The counter starts
//     with the first request and expires when the window ends. It needs one
//     integer per key and maps directly to Redis INCR + PEXPIRE.
//   - SlidingWindow records the timestamp of every accepted request and
//     admits a new one only while fewer than limit timestamps fall inside
//     the trailing window. More accurate, more memory.
//
// Both run on top of a Store. MemoryStore keeps state per process and
// cleans up expired entries in the background; RedisStore shares state
// between instances.
//
// # Usage
//
//	store := ratelimit.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimit.NewFixedWindow(store, 20, time.Minute)
//	if err != nil {
//		return err
//	}
//
//	res, err := limiter.Allow(ctx, ratelimit.Key("send-email", clientKey))
//	if err == nil && !res.Allowed {
//		w.Header().Set("Retry-After", strconv.Itoa(res.RetryAfterSeconds()))
//	}
//
// Middleware wraps a Limiter for use in a chi or net/http chain. It fails
// open: when the store errors the request goes through and the error is
// reported to the optional WithOnError hook.
package ratelimit
