package ratelimit

import (
	"fmt"
	"time"
)

// Algorithm selects the limiter implementation.
type Algorithm string

const (
	AlgorithmFixed   Algorithm = "fixed"
	AlgorithmSliding Algorithm = "sliding"
)

// New builds a limiter for the given algorithm on top of store.
// The sliding algorithm requires a SlidingWindowStore.
func New(alg Algorithm, store Store, limit int, window time.Duration) (Limiter, error) {
	switch alg {
	case AlgorithmFixed, "":
		fw, err := NewFixedWindow(store, limit, window)
		if err != nil {
			return nil, err
		}
		return fw, nil
	case AlgorithmSliding:
		sws, ok := store.(SlidingWindowStore)
		if !ok {
			return nil, fmt.Errorf("%w: store %T does not support sliding windows", ErrStoreRequired, store)
		}
		sw, err := NewSlidingWindow(sws, limit, window)
		if err != nil {
			return nil, err
		}
		return sw, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}
