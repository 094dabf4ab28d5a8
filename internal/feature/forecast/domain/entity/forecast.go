package entity

import "time"

// Trend is a fitted line price = Intercept + Slope*offset.
type Trend struct {
	Intercept float64
	Slope     float64
}

// At evaluates the trend at the given day offset.
func (t Trend) At(offset int) float64 {
	return t.Intercept + t.Slope*float64(offset)
}

// ForecastPoint is a projected price for a future calendar date.
type ForecastPoint struct {
	Date  time.Time // Calendar date after the last observation
	Price float64   // Rounded to 2 decimal places
}

// ForecastResult combines the cleaned history of a product with its projection.
type ForecastResult struct {
	Product    string
	Historical TimeSeries
	Forecast   []ForecastPoint
}
