package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/DharaniDJ/zero2prod/internal/errs"
	"github.com/DharaniDJ/zero2prod/internal/repository"
	"github.com/DharaniDJ/zero2prod/internal/routing"
	"github.com/DharaniDJ/zero2prod/internal/server"
	"github.com/DharaniDJ/zero2prod/internal/service"
	"github.com/DharaniDJ/zero2prod/internal/validation"
)

// SubscriptionHandler exposes the newsletter subscription endpoint.
type SubscriptionHandler struct {
	Handler
	subscriptions *service.SubscriptionService
}

// NewSubscriptionHandler constructs a SubscriptionHandler.
func NewSubscriptionHandler(s *server.Server, services *service.Services) *SubscriptionHandler {
	return &SubscriptionHandler{
		Handler:       NewHandler(s),
		subscriptions: services.Subscriptions,
	}
}

// forbiddenNameCharacters are rejected in subscriber names to keep
// stored names safe for later templating into emails and pages.
const forbiddenNameCharacters = `/(){}"<>\`

// SubscribeRequest is the payload of POST /subscriptions.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=320"`
	Name  string `json:"name" validate:"required,max=256"`
}

func (req *SubscribeRequest) Validate() error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	var custom validation.CustomValidationErrors
	if strings.TrimSpace(req.Name) == "" {
		custom = append(custom, validation.CustomValidationError{
			Field:   "name",
			Message: "must not be empty or whitespace",
		})
	}
	if strings.ContainsAny(req.Name, forbiddenNameCharacters) {
		custom = append(custom, validation.CustomValidationError{
			Field:   "name",
			Message: "contains forbidden characters",
		})
	}
	if len(custom) > 0 {
		return custom
	}
	return nil
}

// Subscribe stores a new subscriber and returns it with 201 Created.
// A duplicate email yields 409; storage failures flow to the error
// funnel as 500.
func (h *SubscriptionHandler) Subscribe(r *http.Request, req *SubscribeRequest) (routing.Responder, error) {
	stored, err := h.subscriptions.Subscribe(r.Context(), repository.NewSubscriber{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, errs.NewConflictError("A subscriber with this email already exists")
		}
		return nil, err
	}

	return routing.JSON{Status: http.StatusCreated, Value: stored}, nil
}
