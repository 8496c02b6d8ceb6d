package handling

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleError logs an internal failure and answers with the 500 envelope
// carrying the given message key. For errors the client cannot act on.
func HandleError(err error, messageKey string, logger *gecho.Logger, w http.ResponseWriter) error {
	logger.Error("Request failed",
		gecho.Field("error", err),
		gecho.Field("message", messageKey),
		gecho.WithCallerSkip(3),
	)

	gecho.InternalServerError(w,
		gecho.WithMessage(messageKey),
		gecho.Send(),
	)
	return nil
}
