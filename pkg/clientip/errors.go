package clientip

import "errors"

var ErrInvalidTrustedProxy = errors.New("invalid trusted proxy")
