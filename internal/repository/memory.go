package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemorySubscribers is an in-memory Subscribers implementation.
//
// It backs local runs without a database and the black-box test harness.
// A mutex guards the map; the store itself is the only mutable state
// shared between concurrent requests.
type MemorySubscribers struct {
	mu      sync.RWMutex
	byEmail map[string]Subscriber
}

// NewMemorySubscribers creates an empty in-memory store.
func NewMemorySubscribers() *MemorySubscribers {
	return &MemorySubscribers{byEmail: make(map[string]Subscriber)}
}

func (m *MemorySubscribers) Insert(_ context.Context, sub NewSubscriber) (Subscriber, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[sub.Email]; exists {
		return Subscriber{}, ErrDuplicateEmail
	}

	stored := Subscriber{
		ID:           uuid.New(),
		Email:        sub.Email,
		Name:         sub.Name,
		SubscribedAt: time.Now().UTC(),
	}
	m.byEmail[sub.Email] = stored
	return stored, nil
}

func (m *MemorySubscribers) GetByEmail(_ context.Context, email string) (Subscriber, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.byEmail[email]
	if !ok {
		return Subscriber{}, ErrNotFound
	}
	return stored, nil
}

// Len reports the number of stored subscribers. Used by tests.
func (m *MemorySubscribers) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byEmail)
}
