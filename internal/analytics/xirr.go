package analytics

import (
	"math"
	"time"
)

// Cashflow is a dated money movement. Negative amounts are outflows
// (investments); positive amounts are inflows (withdrawals, terminal value).
type Cashflow struct {
	Date   time.Time
	Amount float64
}

const (
	xirrGuess         = 0.10
	xirrMaxIter       = 50
	xirrTolerance     = 1e-7
	xirrMinDerivative = 1e-12
)

// SolveXIRR finds the annual rate r at which the net present value of the
// cashflows is zero, using Newton-Raphson. Year fractions are elapsed days from
// the first cashflow's date divided by 365.
//
// The iteration starts at 10%, runs at most 50 steps and stops when a step
// moves the rate by no more than 1e-7. It also stops when the derivative falls
// below 1e-12 or a step would leave the finite range. In every non-converged
// case the last computed rate is returned as a best-effort estimate; the
// solver never fails. An empty input returns 0.
//
// The rate is a decimal (0.12 for 12%).
func SolveXIRR(flows []Cashflow) float64 {
	if len(flows) == 0 {
		return 0
	}

	anchor := flows[0].Date
	years := make([]float64, len(flows))
	for i, cf := range flows {
		years[i] = float64(DaysBetween(anchor, cf.Date)) / daysPerYear
	}

	rate := xirrGuess
	for iter := 0; iter < xirrMaxIter; iter++ {
		f, df := npvAndDerivative(flows, years, rate)
		if !isFinite(f) || !isFinite(df) || math.Abs(df) < xirrMinDerivative {
			break
		}

		next := rate - f/df
		if !isFinite(next) {
			break
		}
		if math.Abs(next-rate) <= xirrTolerance {
			return rate
		}
		rate = next
	}

	return rate
}

// npvAndDerivative returns NPV(r) and dNPV/dr.
//
//	NPV(r)  = Σ CF_i / (1+r)^t_i
//	dNPV/dr = Σ −t_i · CF_i / (1+r)^(t_i+1)
func npvAndDerivative(flows []Cashflow, years []float64, rate float64) (float64, float64) {
	var npv, deriv float64
	for i, cf := range flows {
		t := years[i]
		npv += cf.Amount / math.Pow(1+rate, t)
		deriv += -t * cf.Amount / math.Pow(1+rate, t+1)
	}
	return npv, deriv
}
