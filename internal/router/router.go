// Package router assembles the application's route table.
//
// It registers every route against the routing dispatcher, installs the
// error funnel, and wraps the table in the global middleware stack. New
// is the single construction path for the table: production and the
// black-box test harness both go through it.
package router

import (
	"net/http"

	"github.com/DharaniDJ/zero2prod/internal/handler"
	"github.com/DharaniDJ/zero2prod/internal/middleware"
	"github.com/DharaniDJ/zero2prod/internal/routing"
	"github.com/DharaniDJ/zero2prod/internal/server"
)

// New builds the routed application handler. The returned table is
// complete and read-only: nothing registers routes after this returns.
func New(s *server.Server, h *handler.Handlers) http.Handler {
	rt := routing.New(s.Logger)
	rt.OnError(errorFunnel())

	registerSystemRoutes(rt, h)
	registerAPIRoutes(rt, h)

	return middleware.Chain(rt,
		middleware.RequestID(),
		middleware.ContextLogger(s.Logger),
		middleware.RequestLogger(),
		middleware.Recover(),
	)
}
