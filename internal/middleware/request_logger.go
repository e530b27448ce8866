package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// statusRecorder captures the status code and body size written by the
// inner handler so the request log can report them.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *statusRecorder) Write(p []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	n, err := rec.ResponseWriter.Write(p)
	rec.bytes += n
	return n, err
}

// RequestLogger emits one log line per request. Severity follows the
// status class: 5xx is a server fault (error), 4xx a client fault
// (warn), everything else info.
func RequestLogger() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}

			logger := GetLogger(r.Context())
			var e *zerolog.Event
			switch {
			case status >= 500:
				e = logger.Error()
			case status >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", time.Since(start)).
				Int("status", status).
				Int("bytes", rec.bytes).
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Str("host", r.Host).
				Str("ip", r.RemoteAddr).
				Str("user_agent", r.UserAgent()).
				Msg("API")
		})
	}
}
