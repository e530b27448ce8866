// Package database establishes the PostgreSQL connection pool and runs
// schema migrations.
//
// It builds a DSN from config, creates a pgx connection pool, and in the
// local environment wires pgx query tracing into the application logger.
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"github.com/DharaniDJ/zero2prod/internal/config"
	loggerPkg "github.com/DharaniDJ/zero2prod/internal/logger"
)

// pingTimeout bounds the startup connectivity check.
const pingTimeout = 10 * time.Second

// Database wraps the pgx connection pool.
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// dsn builds a postgres:// connection string from config. The password is
// URL-escaped so special characters cannot break the DSN.
func dsn(cfg *config.DatabaseConfig) string {
	hostPort := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.User,
		url.QueryEscape(cfg.Password),
		hostPort,
		cfg.Name,
		cfg.SSLMode,
	)
}

// New creates the connection pool and pings it so startup fails fast when
// the database is unreachable.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn(cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("parsing pgx pool config: %w", err)
	}

	// SQL query logging is noisy, so it only runs in the local env.
	if cfg.Primary.Env == "local" {
		pgxLogger := loggerPkg.NewPgxLogger(logger)
		poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: loggerPkg.PgxTraceLogLevel(logger.GetLevel()),
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("creating pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	logger.Info().Msg("connected to the database")

	return &Database{Pool: pool, log: logger}, nil
}

// Close releases the connection pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}
