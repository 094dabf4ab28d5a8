// Package config loads the process configuration from the environment.
package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"

	"pima_backend/internal/platform/externalapi/pima"
)

// Config is read once at startup and passed by value into constructors.
type Config struct {
	Port               string     `env:"PORT" envDefault:"5000"`
	LogLevel           slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	CORSAllowedOrigins []string   `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	PIMA               pima.Config
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
