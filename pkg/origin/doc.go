// Package origin decides whether a browser request comes from an allowed site
// and derives the key the request is rate limited under.
//
// The request origin is read from the Origin header. When that is missing,
// the scheme and host of the Referer header are used instead. Comparison is
// case-insensitive and ignores a trailing slash. A request that carries
// neither header is rejected unless the checker was built WithAllowMissing.
//
//	checker := origin.New([]string{"https://example.com", "http://localhost:3000"})
//
//	r.With(checker.Middleware(origin.WithForbiddenHandler(writeForbidden))).
//		Post("/api/send-email", handle)
//
// The Decision is stored in the request context; FromContext reads it back,
// which lets a rate limiter key requests by Decision.ClientKey.
package origin
