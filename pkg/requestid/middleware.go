package requestid

import (
	"net/http"

	"github.com/google/uuid"
)

// Header is the canonical request id header.
const Header = "X-Request-ID"

// New returns a fresh request id.
func New() string {
	return uuid.NewString()
}

// Middleware attaches a request id to every request. An inbound X-Request-ID
// is reused only when it is a UUID, so ids echoed back in error bodies always
// have one shape. The id is stored in the context and set on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := normalize(r.Header.Get(Header))
		if requestID == "" {
			requestID = New()
		}

		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}

func normalize(id string) string {
	if id == "" || len(id) > 64 {
		return ""
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return ""
	}
	return parsed.String()
}
