// Package di provides dependency injection factories for creating application components.
package di

import (
	"pima_backend/internal/platform/externalapi/pima"
	infrahttp "pima_backend/internal/platform/http"
)

// NewPIMAClient creates a PIMA client with an HTTP client bounded by the configured timeout.
func NewPIMAClient(cfg pima.Config) *pima.Client {
	return pima.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}
