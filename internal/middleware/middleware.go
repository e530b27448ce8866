// Package middleware contains the HTTP middleware applied around the
// route table: request id assignment, request-scoped logging, the
// per-request log line, and panic recovery.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares around h. The first middleware in the list
// is the outermost, so it sees the request first.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
