// Package service contains the business logic.
//
// It sits between the handler and repository layers: handlers hand it
// validated data, it performs the business operation and talks to the
// store and the email/job machinery.
package service

import (
	"github.com/DharaniDJ/zero2prod/internal/server"
)

// Services is a container that groups all business services, so wiring
// passes one object around instead of many.
type Services struct {
	Subscriptions *SubscriptionService
}

// NewServices constructs the service container from the application
// container's shared dependencies.
func NewServices(s *server.Server) *Services {
	return &Services{
		Subscriptions: NewSubscriptionService(s),
	}
}
