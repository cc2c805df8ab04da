package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultMAWindow is the moving-average window used when none is requested.
	DefaultMAWindow = 10
	// MinMAWindow is the smallest meaningful moving-average window.
	MinMAWindow = 2
	// DefaultRiskLookback is roughly one year of trading days.
	DefaultRiskLookback = 260
)

// MovingAverage returns, for each index, the mean of the finite values among
// the trailing window values ending at that index. Leading windows are
// partial. An index whose window holds no finite value is NaN.
// Windows below MinMAWindow are raised to it.
func MovingAverage(values []float64, window int) []float64 {
	if window < MinMAWindow {
		window = MinMAWindow
	}

	out := make([]float64, len(values))
	for i := range values {
		start := max(0, i-window+1)
		var sum float64
		var n int
		for _, v := range values[start : i+1] {
			if !isFinite(v) {
				continue
			}
			sum += v
			n++
		}
		if n == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = sum / float64(n)
	}
	return out
}

// RiskReturn summarises day-over-day simple returns, scaled to percent.
type RiskReturn struct {
	MeanReturnPct float64
	VolatilityPct float64
	Observations  int
}

// VolatilityAndMeanReturn computes the mean and population standard deviation
// of point-to-point returns over the last lookback points of the series.
// Returns against a non-positive prior NAV and non-finite returns are excluded.
func VolatilityAndMeanReturn(series *NavSeries, lookback int) (RiskReturn, error) {
	if lookback <= 0 {
		lookback = DefaultRiskLookback
	}
	if series.Len() == 0 {
		return RiskReturn{}, dataAbsent(ReasonNoHistory)
	}

	points := series.Tail(lookback)
	returns := make([]float64, 0, len(points))
	for i := 1; i < len(points); i++ {
		prev := points[i-1].NAV
		if !(prev > 0) {
			continue
		}
		r := (points[i].NAV - prev) / prev
		if !isFinite(r) {
			continue
		}
		returns = append(returns, r)
	}
	if len(returns) == 0 {
		return RiskReturn{}, dataAbsent(ReasonInsufficientData)
	}

	mean, std := stat.PopMeanStdDev(returns, nil)

	return RiskReturn{
		MeanReturnPct: mean * 100,
		VolatilityPct: std * 100,
		Observations:  len(returns),
	}, nil
}
