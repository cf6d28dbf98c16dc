package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hostcities/notify/pkg/logger"
	"github.com/hostcities/notify/pkg/requestid"
)

// NewErrorHandler returns the default error boundary.
//
// An HTTPError is rendered as {"error":<message>} with its status code.
// Anything else is logged with the request id and rendered as a 500
// {"error":"Failed to process request","requestId":<id>}. No internal
// detail reaches the client. When the request carries no id, a fresh one is
// generated so the client and the log line still share it.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()

		var httpErr HTTPError
		if errors.As(err, &httpErr) {
			log.DebugContext(ctx, "request rejected",
				slog.Int("status_code", httpErr.Code),
				slog.String("reason", httpErr.Message),
				slog.String("path", r.URL.Path),
				logger.Component("error_handler"),
			)
			_ = WriteError(ctx.ResponseWriter(), httpErr)
			return
		}

		requestID := requestid.FromContext(ctx)
		if requestID == "" {
			requestID = requestid.New()
		}

		log.ErrorContext(ctx, "request failed",
			logger.RequestID(requestID),
			logger.Error(err),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		_ = WriteJSON(ctx.ResponseWriter(), http.StatusInternalServerError, ErrorBody{
			Error:     InternalErrorMessage,
			RequestID: requestID,
		})
	}
}
