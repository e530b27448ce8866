package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/DharaniDJ/zero2prod/internal/errs"
)

// Recover converts handler panics into 500 responses so a single request
// cannot take down the connection-handling goroutine, let alone the
// process.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					// net/http uses this sentinel to abort the
					// connection; let it through.
					panic(rec)
				}

				GetLogger(r.Context()).Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("uri", r.RequestURI).
					Msg("handler panicked")

				body, _ := json.Marshal(errs.NewInternalServerError())
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write(body)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
