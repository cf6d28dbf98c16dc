// Package async provides small generic helpers for running work concurrently
// and joining on the results.
//
// Async starts a function in its own goroutine and returns a *Future that the
// caller waits on with Await. Several futures are joined with SettleAll:
// every outcome is collected and no error short-circuits.
//
// If the context is already cancelled when Async is called, the function is
// not run and the future completes with the context error. A panic in the
// function is recovered and reported as an error wrapping ErrPanic.
//
// # Usage
//
//	admin := async.Async(ctx, adminMsg, send)
//	user := async.Async(ctx, userMsg, send)
//
//	for i, res := range async.SettleAll(admin, user) {
//		if !res.OK() {
//			log.WarnContext(ctx, "send failed", "index", i, "error", res.Err)
//		}
//	}
package async
