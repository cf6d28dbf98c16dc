package notification

import (
	"errors"
	"net/http"

	"github.com/hostcities/notify/handler"
)

var (
	ErrInvalidRequestType = handler.NewHTTPError(http.StatusBadRequest, "Invalid request type")

	ErrStoreWrite   = errors.New("failed to upsert prediction")
	ErrRenderEmail  = errors.New("failed to render email")
	ErrContactEmail = errors.New("failed to send contact email")
)

// invalidField is the 400 answered for the first field that fails validation.
func invalidField(field string) handler.HTTPError {
	return handler.NewHTTPError(http.StatusBadRequest, "Invalid "+field)
}
