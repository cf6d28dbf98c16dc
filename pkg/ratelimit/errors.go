package ratelimit

import "errors"

var (
	ErrInvalidLimit     = errors.New("invalid limit")
	ErrInvalidInterval  = errors.New("invalid interval")
	ErrKeyRequired      = errors.New("key is required")
	ErrStoreRequired    = errors.New("store is required")
	ErrUnknownAlgorithm = errors.New("unknown rate limit algorithm")
)
