package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
)

// maxKeyLength is the maximum allowed length for the client part of a key
// to prevent excessively long storage keys in backends like Redis.
const maxKeyLength = 64

// KeyFunc extracts a rate limit key from an HTTP request.
// An empty key skips rate limiting for that request.
type KeyFunc func(*http.Request) string

// Key builds a storage key of the form "<scope>:<id>".
// Ids longer than 64 characters are replaced by 32 hex chars of their SHA-256.
func Key(scope, id string) string {
	if len(id) > maxKeyLength {
		sum := sha256.Sum256([]byte(id))
		id = hex.EncodeToString(sum[:16])
	}
	if scope == "" {
		return id
	}
	return scope + ":" + id
}
