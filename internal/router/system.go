package router

import (
	"net/http"

	"github.com/DharaniDJ/zero2prod/internal/handler"
	"github.com/DharaniDJ/zero2prod/internal/routing"
)

// registerSystemRoutes registers endpoints that are not business logic.
func registerSystemRoutes(rt *routing.Router, h *handler.Handlers) {
	// Liveness probe used by orchestrators and uptime monitors.
	rt.Register("/health_check", h.Health.Check, routing.MethodIs(http.MethodGet))
}
