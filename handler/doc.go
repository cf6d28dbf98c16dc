// Package handler provides typed HTTP handlers with a single error boundary.
//
// A HandlerFunc receives a request value that binders have already filled
// in and returns a Response. Wrap turns it into an http.HandlerFunc and
// routes every failure (binder error, Render error, nil Response, panic)
// to one ErrorHandler.
//
//	type Request struct {
//		Type string          `json:"type"`
//		Data json.RawMessage `json:"data"`
//	}
//
//	func send(ctx handler.Context, req Request) handler.Response {
//		if req.Type != "contact-form" {
//			return handler.JSONError(handler.NewHTTPError(http.StatusBadRequest, "Invalid request type"))
//		}
//		return handler.Success()
//	}
//
//	r.Post("/api/send-email", handler.Wrap(send,
//		handler.WithBinders[Request](binder.JSON()),
//		handler.WithErrorHandler[Request](handler.NewErrorHandler(log)),
//	))
//
// # Envelopes
//
// Every response body is JSON. Successful calls answer {"success":true}.
// Client errors answer {"error":<message>}. Server errors answer
// {"error":"Failed to process request","requestId":<id>} and the full error
// is logged under the same id.
package handler
