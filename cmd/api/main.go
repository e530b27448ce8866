// Command api runs the newsletter API server.
//
// main is synchronous: it assembles the application, binds the listener,
// hands the serve loop to a goroutine, and blocks until a shutdown
// signal or a fatal serve error before draining gracefully.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DharaniDJ/zero2prod/internal/config"
	"github.com/DharaniDJ/zero2prod/internal/database"
	"github.com/DharaniDJ/zero2prod/internal/handler"
	"github.com/DharaniDJ/zero2prod/internal/lib/email"
	"github.com/DharaniDJ/zero2prod/internal/logger"
	"github.com/DharaniDJ/zero2prod/internal/repository"
	"github.com/DharaniDJ/zero2prod/internal/router"
	"github.com/DharaniDJ/zero2prod/internal/server"
	"github.com/DharaniDJ/zero2prod/internal/service"
)

// shutdownTimeout bounds how long in-flight requests may drain.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger exists yet; write plainly and exit.
		os.Stderr.WriteString("invalid configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Subscriber storage: PostgreSQL when configured, in-memory otherwise
	// (local runs without a database).
	var store repository.Subscribers
	var db *database.Database
	if cfg.Database != nil {
		if err := database.Migrate(ctx, log, cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to run database migrations")
		}
		db, err = database.New(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize database")
		}
		defer db.Close()
		store = repository.NewPostgresSubscribers(db.Pool)
	} else {
		log.Warn().Msg("no database configured, using in-memory subscriber store")
		store = repository.NewMemorySubscribers()
	}

	// Email delivery: Resend when configured, log-only otherwise.
	var sender email.Sender
	if cfg.Email != nil {
		sender, err = email.NewClient(cfg.Email, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize email client")
		}
	} else {
		sender = email.LogSender{Logger: log}
	}

	srv, err := server.New(cfg, log, store, sender)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	services := service.NewServices(srv)
	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.New(srv, handlers))

	// Bind before serving so an unusable address is fatal up front,
	// never a silently dead listener.
	if err := srv.Bind(); err != nil {
		log.Fatal().Err(err).Msg("failed to bind listener")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
