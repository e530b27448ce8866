// Package routing implements the route table and request dispatcher.
//
// A Router holds an ordered list of (pattern, guards, handler) entries.
// Dispatch walks the table in registration order and invokes the handler
// of the first entry whose pattern matches the request path and whose
// every guard accepts the request. There is no specificity ranking:
// first full match wins. If nothing matches, the request yields a fixed
// 404 with an empty body.
//
// The table is assembled once at startup and read-only afterwards, so
// dispatch needs no locking and is safe for concurrent requests.
package routing

import (
	"net/http"

	"github.com/rs/zerolog"
)

// HandlerFunc is the unit of application logic behind a route entry.
//
// It returns a Responder on success. A non-nil error is caught at the
// dispatch boundary and converted into a well-formed error response; it
// never propagates to the connection-handling goroutine.
type HandlerFunc func(r *http.Request) (Responder, error)

// ErrorHandler converts a handler error into the response to send.
// The router's default maps every error to a bare 500.
type ErrorHandler func(r *http.Request, err error) Response

type route struct {
	pattern  string
	segments []segment
	guards   []Guard
	handler  HandlerFunc
}

// Router is the ordered route table plus the dispatcher over it.
//
// Register all routes before serving; the table must not be mutated once
// requests are flowing.
type Router struct {
	routes   []route
	errorFn  ErrorHandler
	notFound Response
	logger   *zerolog.Logger
}

// New creates an empty Router.
func New(logger *zerolog.Logger) *Router {
	return &Router{
		errorFn: func(*http.Request, error) Response {
			return Response{Status: http.StatusInternalServerError}
		},
		notFound: Response{Status: http.StatusNotFound},
		logger:   logger,
	}
}

// Register appends a route entry to the table.
//
// pattern is parsed once here and never re-parsed; a malformed pattern
// (empty segment, unterminated brace) panics, since route registration
// runs at startup where a bad table must stop the process.
func (rt *Router) Register(pattern string, handler HandlerFunc, guards ...Guard) {
	rt.routes = append(rt.routes, route{
		pattern:  pattern,
		segments: parsePattern(pattern),
		guards:   guards,
		handler:  handler,
	})
}

// OnError installs the error funnel used for non-nil handler errors.
func (rt *Router) OnError(fn ErrorHandler) {
	if fn != nil {
		rt.errorFn = fn
	}
}

// Dispatch matches the request against the table and runs the winning
// handler. It completes synchronously: matching and guard evaluation
// never block, and any suspension happens inside the handler itself.
func (rt *Router) Dispatch(r *http.Request) Response {
	for _, entry := range rt.routes {
		params, ok := matchPath(entry.segments, r.URL.Path)
		if !ok {
			continue
		}
		if !guardsAccept(entry.guards, r) {
			// Guard rejection is not an error: the request falls
			// through untouched to the next candidate entry.
			continue
		}

		req := r
		if len(params) > 0 {
			req = r.WithContext(withParams(r.Context(), params))
		}

		responder, err := entry.handler(req)
		if err != nil {
			return rt.errorFn(req, err)
		}
		if responder == nil {
			rt.logger.Error().
				Str("pattern", entry.pattern).
				Str("path", r.URL.Path).
				Msg("handler returned neither response nor error")
			return Response{Status: http.StatusInternalServerError}
		}
		return responder.IntoResponse()
	}

	return rt.notFound
}

// ServeHTTP implements http.Handler by dispatching and writing the result.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.Dispatch(r).Write(w)
}

func guardsAccept(guards []Guard, r *http.Request) bool {
	for _, g := range guards {
		if !g(r) {
			return false
		}
	}
	return true
}
