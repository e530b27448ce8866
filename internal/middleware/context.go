package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

type loggerKey struct{}

// ContextLogger stores a request-scoped logger in the context, enriched
// with the request id when RequestID ran before it. Handlers and inner
// middleware read it back with GetLogger so every log line of a request
// carries the same correlation fields.
func ContextLogger(base *zerolog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			builder := base.With()
			if requestID := GetRequestID(r.Context()); requestID != "" {
				builder = builder.Str("request_id", requestID)
			}
			logger := builder.Logger()

			ctx := context.WithValue(r.Context(), loggerKey{}, &logger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLogger returns the request-scoped logger, falling back to a
// disabled logger when no middleware stored one (e.g. in tests).
func GetLogger(ctx context.Context) *zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*zerolog.Logger); ok {
		return logger
	}
	nop := zerolog.Nop()
	return &nop
}
