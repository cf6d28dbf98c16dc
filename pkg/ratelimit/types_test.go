package ratelimit_test

import (
	"testing"
	"time"

	"github.com/hostcities/notify/pkg/ratelimit"

	"github.com/stretchr/testify/assert"
)

func TestResult_RetryAfter(t *testing.T) {
	t.Parallel()

	t.Run("allowed request", func(t *testing.T) {
		t.Parallel()
		r := &ratelimit.Result{Allowed: true, ResetAt: time.Now().Add(time.Minute)}
		assert.Zero(t, r.RetryAfter())
		assert.Zero(t, r.RetryAfterSeconds())
	})

	t.Run("denied request rounds up", func(t *testing.T) {
		t.Parallel()
		r := &ratelimit.Result{Allowed: false, ResetAt: time.Now().Add(2500 * time.Millisecond)}
		assert.Equal(t, 3, r.RetryAfterSeconds())
	})

	t.Run("denied request never below one second", func(t *testing.T) {
		t.Parallel()
		r := &ratelimit.Result{Allowed: false, ResetAt: time.Now().Add(-time.Second)}
		assert.Zero(t, r.RetryAfter())
		assert.Equal(t, 1, r.RetryAfterSeconds())
	})
}
