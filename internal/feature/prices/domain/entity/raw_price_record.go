// Package entity defines the domain models for the prices feature.
package entity

// RawPriceRecord is one untyped object from the PIMA price feed.
// It carries at least "producto", "fecha" and "moda"; any other keys are kept
// as-is so they can be echoed back in the forecast history.
type RawPriceRecord map[string]any

// Upstream field names.
const (
	FieldProduct   = "producto"
	FieldDate      = "fecha"
	FieldModePrice = "moda"
)
