// Package handler is the HTTP layer: the first entry point for business
// logic after the route table.
//
// Handlers decode and validate input, call the service layer, and return
// response-convertible values. Errors are returned, not written; the
// router's error funnel turns them into responses.
package handler

import (
	"net/http"
	"time"

	"github.com/DharaniDJ/zero2prod/internal/middleware"
	"github.com/DharaniDJ/zero2prod/internal/routing"
	"github.com/DharaniDJ/zero2prod/internal/server"
	"github.com/DharaniDJ/zero2prod/internal/validation"
)

// Handler is the base handler type holding shared application
// dependencies. Concrete handlers embed it to reach the server container.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint function that receives a decoded,
// validated request payload.
type HandlerFunc[Req validation.Validatable] func(r *http.Request, req Req) (routing.Responder, error)

// Handle wraps a typed endpoint function into the shared pipeline:
// decode + validate, timing logs, error pass-through to the funnel.
//
// newReq allocates a fresh payload per request; payloads are pointers the
// decoder mutates and must never be shared between concurrent requests.
func Handle[Req validation.Validatable](newReq func() Req, fn HandlerFunc[Req]) routing.HandlerFunc {
	return func(r *http.Request) (routing.Responder, error) {
		start := time.Now()
		logger := middleware.GetLogger(r.Context()).With().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()

		req := newReq()
		if err := validation.DecodeAndValidate(r, req); err != nil {
			logger.Warn().
				Err(err).
				Dur("duration", time.Since(start)).
				Msg("request validation failed")
			return nil, err
		}

		responder, err := fn(r, req)
		if err != nil {
			logger.Error().
				Err(err).
				Dur("duration", time.Since(start)).
				Msg("handler execution failed")
			return nil, err
		}

		logger.Debug().
			Dur("duration", time.Since(start)).
			Msg("request completed")
		return responder, nil
	}
}
