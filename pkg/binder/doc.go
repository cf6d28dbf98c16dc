// Package binder decodes HTTP request bodies into Go values.
//
// JSON returns a binder compatible with handler.WithBinders. It caps the
// body size, ignores the declared media type and rejects trailing data
// after the first JSON value. Every failure wraps one of the package
// sentinels so callers can match with errors.Is.
//
//	h := handler.Wrap(sendEmail,
//		handler.WithBinders[Request](binder.JSON()),
//	)
package binder
