package handler

import (
	"net/http"

	"github.com/DharaniDJ/zero2prod/internal/routing"
	"github.com/DharaniDJ/zero2prod/internal/server"
)

// HealthHandler exposes the liveness probe.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(s)}
}

// Check answers GET /health_check with 200 and an empty body.
//
// It is a liveness signal only: it touches no downstream resource, so an
// automated restart policy reacting to it never conflates "process is up"
// with "dependencies are healthy".
func (h *HealthHandler) Check(*http.Request) (routing.Responder, error) {
	return routing.NoContent{Status: http.StatusOK}, nil
}
