// Package logger configures the application's structured logging.
//
// Logging is built on zerolog: human-friendly console output in local
// and test environments, JSON everywhere else. It also provides the
// adapters that feed pgx query tracing into the same logger.
package logger

import (
	"os"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"github.com/DharaniDJ/zero2prod/internal/config"
)

// New builds the application's main logger from config.
func New(cfg *config.Config) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Primary.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	switch cfg.Primary.Env {
	case "local", "test":
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	default:
		logger = zerolog.New(os.Stderr)
	}

	logger = logger.Level(level).With().
		Timestamp().
		Str("service", "zero2prod").
		Str("env", cfg.Primary.Env).
		Logger()

	return &logger
}

// NewPgxLogger derives the logger used for SQL query tracing. It shares
// the parent's sink but tags entries so query noise is easy to filter.
func NewPgxLogger(parent *zerolog.Logger) zerolog.Logger {
	return parent.With().Str("component", "pgx").Logger()
}

// PgxTraceLogLevel maps the application log level onto pgx's tracelog
// levels so SQL tracing verbosity follows the main logger.
func PgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch {
	case level <= zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case level == zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case level == zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	default:
		return tracelog.LogLevelError
	}
}
