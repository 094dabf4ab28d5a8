// Package domain defines domain-level errors for the forecast feature.
package domain

import "errors"

// Forecast failures. Handlers map each of them to an HTTP status with errors.Is.
var (
	// ErrMissingProductParameter indicates that no product name was given.
	ErrMissingProductParameter = errors.New("product parameter is required")

	// ErrUpstreamUnavailable indicates that the PIMA feed could not be fetched or decoded.
	ErrUpstreamUnavailable = errors.New("price provider unavailable")

	// ErrNoDataForProduct indicates that no valid price point matches the product.
	ErrNoDataForProduct = errors.New("no data for product")

	// ErrInsufficientHistory indicates that fewer than the minimum number of points remain after cleaning.
	ErrInsufficientHistory = errors.New("not enough historical data to forecast")

	// ErrDegenerateSeries indicates that every point shares the same date, so no slope can be fitted.
	ErrDegenerateSeries = errors.New("degenerate series: all observations share the same date")
)
