package server_test

import (
	"context"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/DharaniDJ/zero2prod/internal/config"
	"github.com/DharaniDJ/zero2prod/internal/lib/email"
	"github.com/DharaniDJ/zero2prod/internal/repository"
	"github.com/DharaniDJ/zero2prod/internal/server"
)

func testConfig(host, port string) *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: "test", LogLevel: "error"},
		Server: config.ServerConfig{
			Host:         host,
			Port:         port,
			ReadTimeout:  5,
			WriteTimeout: 5,
			IdleTimeout:  30,
		},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *server.Server {
	t.Helper()
	logger := zerolog.Nop()
	srv, err := server.New(cfg, &logger, repository.NewMemorySubscribers(), email.LogSender{Logger: &logger})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return srv
}

func TestBindResolvesEphemeralPort(t *testing.T) {
	srv := newTestServer(t, testConfig("127.0.0.1", "0"))

	if srv.Addr() != "" {
		t.Errorf("Addr() before Bind = %q, want empty", srv.Addr())
	}
	if err := srv.Bind(); err != nil {
		t.Fatalf("Bind error: %v", err)
	}
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	host, port, err := net.SplitHostPort(srv.Addr())
	if err != nil {
		t.Fatalf("Addr() = %q, not host:port: %v", srv.Addr(), err)
	}
	if host != "127.0.0.1" || port == "0" || port == "" {
		t.Errorf("Addr() = %q, want 127.0.0.1 with a resolved port", srv.Addr())
	}
}

func TestBindFailureIsReportedSynchronously(t *testing.T) {
	first := newTestServer(t, testConfig("127.0.0.1", "0"))
	if err := first.Bind(); err != nil {
		t.Fatalf("first Bind error: %v", err)
	}
	t.Cleanup(func() { _ = first.Shutdown(context.Background()) })

	_, port, err := net.SplitHostPort(first.Addr())
	if err != nil {
		t.Fatalf("splitting %q: %v", first.Addr(), err)
	}

	second := newTestServer(t, testConfig("127.0.0.1", port))
	if err := second.Bind(); err == nil {
		t.Fatal("second Bind on an occupied port succeeded, want error before any request is accepted")
	} else if !strings.Contains(err.Error(), port) {
		t.Errorf("Bind error %q does not name the contested address", err)
	}
}

func TestStartRequiresSetupAndBind(t *testing.T) {
	srv := newTestServer(t, testConfig("127.0.0.1", "0"))
	if err := srv.Start(); err == nil {
		t.Fatal("Start without SetupHTTPServer succeeded, want error")
	}

	srv.SetupHTTPServer(http.NotFoundHandler())
	if err := srv.Start(); err == nil {
		t.Fatal("Start without Bind succeeded, want error")
	}
}

func TestStartReturnsNilAfterGracefulShutdown(t *testing.T) {
	srv := newTestServer(t, testConfig("127.0.0.1", "0"))
	srv.SetupHTTPServer(http.NotFoundHandler())
	if err := srv.Bind(); err != nil {
		t.Fatalf("Bind error: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	// Give the accept loop a moment, then stop it.
	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown error: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start returned %v after graceful shutdown, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}
