package analytics

import "math"

// RoundingPrecision is the multiplier used to round monetary values and percentages to two decimals.
const RoundingPrecision = 100.0

// round rounds a float64 value to two decimal places using RoundingPrecision.
//
// Example:
//
//	round(123.456789)  // returns 123.46
//	round(1.994)       // returns 1.99
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

// roundTo rounds a float to the specified number of decimal places.
func roundTo(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
