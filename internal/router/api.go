package router

import (
	"net/http"

	"github.com/DharaniDJ/zero2prod/internal/handler"
	"github.com/DharaniDJ/zero2prod/internal/routing"
)

// registerAPIRoutes registers the business endpoints.
func registerAPIRoutes(rt *routing.Router, h *handler.Handlers) {
	rt.Register("/subscriptions",
		handler.Handle(func() *handler.SubscribeRequest { return &handler.SubscribeRequest{} }, h.Subscriptions.Subscribe),
		routing.MethodIs(http.MethodPost),
	)
}
