// Package server defines the Server struct that composes the app's main
// dependencies and owns the HTTP listener lifecycle.
//
// It holds:
//   - configuration and the main logger
//   - the subscriber store and email sender
//   - optional redis client + background job service
//   - the net listener and http.Server
//
// Bind reserves the address (fatal on failure, before any request is
// accepted); Start drives the accept loop to completion; Shutdown stops
// everything gracefully.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/DharaniDJ/zero2prod/internal/config"
	"github.com/DharaniDJ/zero2prod/internal/lib/email"
	"github.com/DharaniDJ/zero2prod/internal/lib/job"
	"github.com/DharaniDJ/zero2prod/internal/repository"
)

// redisPingTimeout bounds the startup redis connectivity check.
const redisPingTimeout = 5 * time.Second

// Server is the application container that holds shared resources. It is
// not the HTTP server itself; that lives in the httpServer field and is
// configured by SetupHTTPServer.
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// Store persists newsletter subscribers.
	Store repository.Subscribers

	// Email delivers transactional emails.
	Email email.Sender

	// Redis is the optional client backing the job queue; nil when no
	// redis is configured.
	Redis *redis.Client

	// Job runs background workers; nil when no redis is configured.
	Job *job.JobService

	httpServer *http.Server
	listener   net.Listener
}

// New constructs a Server and initializes the optional dependencies. It
// does not bind or start the HTTP server; that is done in SetupHTTPServer,
// Bind and Start.
func New(cfg *config.Config, logger *zerolog.Logger, store repository.Subscribers, sender email.Sender) (*Server, error) {
	s := &Server{
		Config: cfg,
		Logger: logger,
		Store:  store,
		Email:  sender,
	}

	if cfg.Redis != nil {
		s.Redis = redis.NewClient(&redis.Options{Addr: cfg.Redis.Address})

		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if err := s.Redis.Ping(ctx).Err(); err != nil {
			// Redis is optional: the job queue degrades to inline
			// email sends, so startup continues.
			logger.Error().Err(err).Msg("failed to connect to redis, continuing without background jobs")
			_ = s.Redis.Close()
			s.Redis = nil
		} else {
			s.Job = job.NewJobService(cfg.Redis, sender, logger)
			if err := s.Job.Start(); err != nil {
				return nil, fmt.Errorf("starting job service: %w", err)
			}
		}
	}

	return s, nil
}

// SetupHTTPServer configures the internal net/http server around the
// given handler (the routed application).
func (s *Server) SetupHTTPServer(handler http.Handler) {
	errLogger := s.Logger.Level(zerolog.WarnLevel).With().Str("component", "http").Logger()

	s.httpServer = &http.Server{
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,

		// Per-connection failures (accept errors, TLS/read errors,
		// aborted handlers) are logged here and stay isolated to the
		// connection that caused them.
		ErrorLog: log.New(errLogger, "", 0),
	}
}

// Bind reserves the configured address. Failure (e.g. address in use) is
// reported synchronously, before any request is accepted. With port "0"
// the kernel assigns an ephemeral port, resolvable via Addr.
func (s *Server) Bind() error {
	ln, err := net.Listen("tcp", s.Config.Server.Addr())
	if err != nil {
		return fmt.Errorf("binding to %s: %w", s.Config.Server.Addr(), err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, including the resolved port. Empty
// until Bind succeeds.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Start serves requests on the bound listener. It blocks until Shutdown
// or a fatal listener error; a clean shutdown returns nil. SetupHTTPServer
// and Bind must have been called first.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}
	if s.listener == nil {
		return errors.New("server not bound, call Bind first")
	}

	s.Logger.Info().
		Str("addr", s.Addr()).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	if err := s.httpServer.Serve(s.listener); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server (finishing in-flight requests
// until ctx expires) and the owned background resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutting down HTTP server: %w", err)
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}
	if s.Redis != nil {
		_ = s.Redis.Close()
	}

	return nil
}
