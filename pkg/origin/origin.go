package origin

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/hostcities/notify/pkg/clientip"
)

// UnknownClient is the client key used when no address can be resolved.
const UnknownClient = "unknown"

// Decision is the outcome of an origin check.
type Decision struct {
	Allowed   bool
	ClientKey string
	// Origin is the normalized origin the decision was made on; empty when
	// the request carried neither Origin nor Referer.
	Origin string
}

// Checker holds the allow-list. It is safe for concurrent use.
type Checker struct {
	allowed      map[string]struct{}
	allowMissing bool
}

// Option configures a Checker.
type Option func(*Checker)

// WithAllowMissing accepts requests that carry neither Origin nor Referer,
// such as server-to-server calls.
func WithAllowMissing(allow bool) Option {
	return func(c *Checker) {
		c.allowMissing = allow
	}
}

// New builds a checker for the given origins. Empty entries are ignored.
func New(origins []string, opts ...Option) *Checker {
	c := &Checker{allowed: make(map[string]struct{}, len(origins))}
	for _, o := range origins {
		if n := Normalize(o); n != "" {
			c.allowed[n] = struct{}{}
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check evaluates the request against the allow-list.
func (c *Checker) Check(r *http.Request) Decision {
	d := Decision{
		ClientKey: clientip.FromRequest(r),
		Origin:    requestOrigin(r),
	}
	if d.ClientKey == "" {
		d.ClientKey = UnknownClient
	}

	if d.Origin == "" {
		d.Allowed = c.allowMissing
		return d
	}

	_, d.Allowed = c.allowed[d.Origin]
	return d
}

// Origins returns the normalized allow-list.
func (c *Checker) Origins() []string {
	out := make([]string, 0, len(c.allowed))
	for o := range c.allowed {
		out = append(out, o)
	}
	return out
}

// Normalize lowercases an origin and strips surrounding space and trailing slashes.
func Normalize(origin string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(origin)), "/")
}

// requestOrigin returns the Origin header, or scheme://host of the Referer.
func requestOrigin(r *http.Request) string {
	if o := Normalize(r.Header.Get("Origin")); o != "" {
		return o
	}

	ref := strings.TrimSpace(r.Header.Get("Referer"))
	if ref == "" {
		return ""
	}

	u, err := url.Parse(ref)
	if err != nil || u.Scheme == "" || u.Host == "" {
		// Present but unusable: never matches the allow-list
		return Normalize(ref)
	}

	return Normalize(u.Scheme + "://" + u.Host)
}
