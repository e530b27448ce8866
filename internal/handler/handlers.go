package handler

import (
	"github.com/DharaniDJ/zero2prod/internal/server"
	"github.com/DharaniDJ/zero2prod/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Health        *HealthHandler
	Subscriptions *SubscriptionHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:        NewHealthHandler(s),
		Subscriptions: NewSubscriptionHandler(s, services),
	}
}
