package router

import (
	"errors"
	"net/http"

	"github.com/DharaniDJ/zero2prod/internal/errs"
	"github.com/DharaniDJ/zero2prod/internal/middleware"
	"github.com/DharaniDJ/zero2prod/internal/routing"
	"github.com/DharaniDJ/zero2prod/internal/sqlerr"
)

// errorFunnel is the final error handler for the route table. Every
// handler error ends up here and is translated into a clean JSON
// response; the original error stays in the logs only.
func errorFunnel() routing.ErrorHandler {
	return func(r *http.Request, err error) routing.Response {
		originalErr := err

		var httpErr *errs.HTTPError
		if !errors.As(err, &httpErr) {
			// Likely a driver/storage/unknown error; classify it
			// rather than leaking it.
			httpErr = sqlerr.Handle(err)
		}

		logger := middleware.GetLogger(r.Context())
		event := logger.Warn()
		if httpErr.Status >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.
			Err(originalErr).
			Int("status", httpErr.Status).
			Str("error_code", httpErr.Code).
			Str("uri", r.RequestURI).
			Msg(httpErr.Message)

		return routing.JSON{Status: httpErr.Status, Value: httpErr}.IntoResponse()
	}
}
