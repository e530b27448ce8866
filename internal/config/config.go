// Package config loads and validates the application configuration.
//
// Configuration comes from environment variables with the ZERO2PROD_
// prefix (a .env file, if present, is loaded first via godotenv). Keys
// nest with a double underscore: ZERO2PROD_SERVER__PORT maps to
// Config.Server.Port. Required values are enforced with validator tags
// so the process fails fast on a broken environment.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix scopes which environment variables are read.
const envPrefix = "ZERO2PROD_"

// Config is the root configuration object.
//
// Database, Redis and Email are pointers because they are optional: a nil
// Database selects the in-memory subscriber store, a nil Redis disables
// the background job queue, and a nil Email selects the logging sender.
type Config struct {
	Primary  Primary         `koanf:"primary" validate:"required"`
	Server   ServerConfig    `koanf:"server" validate:"required"`
	Database *DatabaseConfig `koanf:"database"`
	Redis    *RedisConfig    `koanf:"redis"`
	Email    *EmailConfig    `koanf:"email"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env      string `koanf:"env" validate:"required,oneof=local test staging production"`
	LogLevel string `koanf:"log_level"`
}

// ServerConfig groups settings for the HTTP listener. Timeouts are in
// seconds. Port "0" requests an ephemeral port from the kernel, which the
// test harness relies on.
type ServerConfig struct {
	Host         string `koanf:"host" validate:"required"`
	Port         string `koanf:"port" validate:"required"`
	ReadTimeout  int    `koanf:"read_timeout" validate:"required"`
	WriteTimeout int    `koanf:"write_timeout" validate:"required"`
	IdleTimeout  int    `koanf:"idle_timeout" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"required"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password" validate:"required"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode" validate:"required"`
}

// RedisConfig contains the Redis address backing the job queue.
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// EmailConfig configures the transactional email provider.
type EmailConfig struct {
	ResendAPIKey string `koanf:"resend_api_key" validate:"required"`
	SenderName   string `koanf:"sender_name" validate:"required"`
	SenderEmail  string `koanf:"sender_email" validate:"required,email"`
}

// Addr returns the host:port the server binds to.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// Load reads, unmarshals and validates the configuration.
func Load() (*Config, error) {
	k := koanf.New(".")

	// ZERO2PROD_SERVER__READ_TIMEOUT -> server.read_timeout
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	if cfg.Primary.LogLevel == "" {
		cfg.Primary.LogLevel = "info"
	}

	return cfg, nil
}
