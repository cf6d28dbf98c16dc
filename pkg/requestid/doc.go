// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses an inbound X-Request-ID header when it is a valid UUID
// and generates a new UUIDv4 otherwise. The id is stored in the request
// context, echoed in the response header, and picked up by the logger
// through LoggerExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
//
// Error responses can quote the id so a user report can be matched to the
// log line:
//
//	id := requestid.FromContext(r.Context())
package requestid
