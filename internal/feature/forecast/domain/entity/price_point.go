// Package entity defines the domain models for the forecast feature.
package entity

import "time"

// PricePoint is a validated price observation for a product on a calendar date.
type PricePoint struct {
	Product string         // Product name exactly as sent by the feed (e.g. "papa")
	Date    time.Time      // Calendar date, midnight UTC
	Price   float64        // Mode price observed on Date
	Fields  map[string]any // Original record, echoed back in the history output
}

// TimeSeries is the chronologically sorted history of a single product.
// Offsets[i] is the number of whole days between Points[i].Date and Points[0].Date.
type TimeSeries struct {
	Product string
	Points  []PricePoint
	Offsets []int
}

// Len returns the number of points in the series.
func (s TimeSeries) Len() int {
	return len(s.Points)
}

// Last returns the most recent point. The series must not be empty.
func (s TimeSeries) Last() PricePoint {
	return s.Points[len(s.Points)-1]
}

// Prices returns the price of each point in series order.
func (s TimeSeries) Prices() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Price
	}
	return out
}
