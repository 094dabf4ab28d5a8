// Package pima provides a client for the PIMA price monitoring API.
package pima

import "time"

// Config holds configuration for the PIMA API client.
type Config struct {
	URL     string        `env:"API_PIMA_URL" envDefault:"https://apiparagit.onrender.com/precios"` // Full URL of the price list endpoint
	Timeout time.Duration `env:"API_PIMA_TIMEOUT" envDefault:"10s"`                                 // HTTP request timeout
}
