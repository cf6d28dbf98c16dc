package async

import (
	"context"
	"fmt"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// Async executes fn in its own goroutine and returns a Future for its result.
// A panic inside fn completes the future with an error wrapping ErrPanic.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				var zero U
				f.result = zero
				f.err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()

		// Pre-cancelled contexts never start the task
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// Settled is the outcome of one future after SettleAll.
type Settled[U any] struct {
	Value U
	Err   error
}

// OK reports whether the future completed without error.
func (s Settled[U]) OK() bool { return s.Err == nil }

// SettleAll waits for every future and returns their outcomes in order.
// It never short-circuits: one failure does not hide the others.
func SettleAll[U any](futures ...*Future[U]) []Settled[U] {
	out := make([]Settled[U], len(futures))
	for i, future := range futures {
		out[i].Value, out[i].Err = future.Await()
	}
	return out
}
