package binder

import "errors"

var (
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")
	ErrBodyTooLarge      = errors.New("request body too large")
)
