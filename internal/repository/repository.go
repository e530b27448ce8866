// Package repository handles persistence of newsletter subscribers.
//
// It exposes the Subscribers store interface consumed by the service
// layer, with a PostgreSQL implementation for production and an
// in-memory implementation backing local runs and the black-box tests.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateEmail is returned when inserting a subscriber whose
	// email address is already stored.
	ErrDuplicateEmail = errors.New("subscriber email already exists")

	// ErrNotFound is returned when no subscriber matches the lookup.
	ErrNotFound = errors.New("subscriber not found")
)

// Subscriber is a stored newsletter subscriber.
type Subscriber struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// NewSubscriber carries the validated details of a subscription request.
type NewSubscriber struct {
	Email string
	Name  string
}

// Subscribers is the persistence port for newsletter subscribers.
//
// Implementations must provide their own synchronization; callers invoke
// them concurrently from request handlers.
type Subscribers interface {
	// Insert stores a new subscriber, assigning id and timestamp.
	// Returns ErrDuplicateEmail when the email is already present.
	Insert(ctx context.Context, sub NewSubscriber) (Subscriber, error)

	// GetByEmail returns the subscriber with the given email address,
	// or ErrNotFound.
	GetByEmail(ctx context.Context, email string) (Subscriber, error)
}
