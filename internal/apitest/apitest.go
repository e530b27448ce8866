// Package apitest spawns full application instances for black-box tests.
//
// Spawn builds the app through the production wiring path, binds it to an
// ephemeral port, and returns the base URL. Tests drive the instance
// exclusively with a real HTTP client and assert on wire-level responses;
// no handler or router code is ever called directly, so the tests stay
// valid across any reimplementation of the internals.
package apitest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/DharaniDJ/zero2prod/internal/config"
	"github.com/DharaniDJ/zero2prod/internal/handler"
	"github.com/DharaniDJ/zero2prod/internal/repository"
	"github.com/DharaniDJ/zero2prod/internal/router"
	"github.com/DharaniDJ/zero2prod/internal/server"
	"github.com/DharaniDJ/zero2prod/internal/service"
)

// App is a running application instance under test.
type App struct {
	// BaseURL is the resolved address, e.g. "http://127.0.0.1:49152".
	BaseURL string

	// Store is the in-memory subscriber store backing the instance.
	Store *repository.MemorySubscribers

	// Email records the emails the instance tried to send.
	Email *SenderSpy
}

// Spawn starts a fresh application on an ephemeral port and registers
// its shutdown with t.Cleanup. Each call binds its own port, so tests
// and parallel instances never collide.
func Spawn(t *testing.T) *App {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test", LogLevel: "error"},
		Server: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         "0",
			ReadTimeout:  5,
			WriteTimeout: 5,
			IdleTimeout:  30,
		},
	}
	logger := zerolog.Nop()

	store := repository.NewMemorySubscribers()
	spy := &SenderSpy{}

	srv, err := server.New(cfg, &logger, store, spy)
	if err != nil {
		t.Fatalf("initializing server: %v", err)
	}

	// Same route-table construction path as cmd/api.
	services := service.NewServices(srv)
	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.New(srv, handlers))

	if err := srv.Bind(); err != nil {
		t.Fatalf("binding ephemeral port: %v", err)
	}

	go func() {
		_ = srv.Start()
	}()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})

	return &App{
		BaseURL: "http://" + srv.Addr(),
		Store:   store,
		Email:   spy,
	}
}

// SenderSpy is an email.Sender that records sends instead of delivering.
type SenderSpy struct {
	mu    sync.Mutex
	sends []RecordedSend

	// Err, when set, is returned from every send.
	Err error
}

// RecordedSend is one captured welcome email.
type RecordedSend struct {
	To   string
	Name string
}

func (s *SenderSpy) SendWelcome(_ context.Context, to, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.sends = append(s.sends, RecordedSend{To: to, Name: name})
	return nil
}

// Sends returns a copy of the recorded sends.
func (s *SenderSpy) Sends() []RecordedSend {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedSend(nil), s.sends...)
}
