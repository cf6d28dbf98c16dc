package clientip

import "net/http"

// Middleware resolves the peer address once and stores it in the request
// context. Use Resolver.Middleware to honor a proxy header.
func Middleware(next http.Handler) http.Handler {
	return defaultResolver.Middleware(next)
}

// Middleware resolves the client IP once and stores it in the request context.
func (rs *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := rs.Resolve(r); ip != "" {
			r = r.WithContext(SetIPToContext(r.Context(), ip))
		}
		next.ServeHTTP(w, r)
	})
}
