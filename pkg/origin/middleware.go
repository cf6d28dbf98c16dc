package origin

import (
	"context"
	"net/http"
)

type decisionContextKey struct{}

// WithContext stores the decision in ctx.
func WithContext(ctx context.Context, d Decision) context.Context {
	return context.WithValue(ctx, decisionContextKey{}, d)
}

// FromContext returns the decision stored by Middleware.
func FromContext(ctx context.Context) (Decision, bool) {
	d, ok := ctx.Value(decisionContextKey{}).(Decision)
	return d, ok
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	onForbidden func(w http.ResponseWriter, r *http.Request, d Decision)
}

// WithForbiddenHandler replaces the default plain-text 403 response.
func WithForbiddenHandler(fn func(w http.ResponseWriter, r *http.Request, d Decision)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onForbidden = fn
		}
	}
}

// Policy decides whether a request may proceed. *Checker implements it.
type Policy interface {
	Check(r *http.Request) Decision
}

// Middleware rejects requests the policy does not allow and stores the
// decision for the handlers behind it.
func Middleware(p Policy, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if p == nil {
		panic("origin.Middleware: policy is required")
	}

	cfg := &middlewareConfig{
		onForbidden: func(w http.ResponseWriter, _ *http.Request, _ Decision) {
			http.Error(w, "Forbidden", http.StatusForbidden)
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := p.Check(r)
			r = r.WithContext(WithContext(r.Context(), d))
			if !d.Allowed {
				cfg.onForbidden(w, r, d)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Middleware is shorthand for Middleware(c, opts...).
func (c *Checker) Middleware(opts ...MiddlewareOption) func(http.Handler) http.Handler {
	return Middleware(c, opts...)
}

// ClientKey returns the client key recorded for r, or "" when the origin
// middleware has not run. It fits ratelimit.KeyFunc.
func ClientKey(r *http.Request) string {
	d, ok := FromContext(r.Context())
	if !ok {
		return ""
	}
	return d.ClientKey
}
