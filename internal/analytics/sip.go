package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/apperrors"
)

// ValuePoint is one point of a simulated value curve.
type ValuePoint struct {
	Date  time.Time
	Value float64
}

// cagrYearFloor stands in for the elapsed years of plans shorter than a whole year.
const cagrYearFloor = 0.0001

// SIPParams describes a systematic investment plan.
// A zero To means the series' latest date.
type SIPParams struct {
	Amount    float64
	Frequency Frequency
	From      time.Time
	To        time.Time
}

// SIPResult is the outcome of a SIP simulation.
//
// Two annualised figures are reported and they are different metrics:
// XIRRPct is the money-weighted rate from the installment cashflows, while
// CAGRPct compounds the final value over the total invested across the whole
// calendar years of the plan window. Plans shorter than a year use
// cagrYearFloor years, so CAGRPct is large for them and nil once it overflows.
type SIPResult struct {
	TotalInvested     float64
	CurrentValue      float64
	TotalUnits        float64
	Installments      int
	AbsoluteReturnPct float64
	XIRRPct           float64
	CAGRPct           *float64
	ValuationDate     time.Time
	ValuationNAV      float64
	Series            []ValuePoint
	Cashflows         []Cashflow
}

// SimulateSIP simulates investing Amount on every plan date between From and To.
//
// Each installment buys at the first usable NAV on or after its date; an
// installment with no such NAV (beyond the data horizon) is skipped silently.
// Accumulated units are valued at the latest usable NAV of the series, which is
// also the date of the terminal cashflow handed to SolveXIRR.
//
// Series tracks cumulative value at each executed installment's NAV date.
// Monetary values are rounded to two decimals and units to four.
//
// Returns ErrInvalidFrequency for an unknown frequency and *NeedsReview when
// the amount is not positive, the date range is inverted, the series has no
// usable NAV or no installment executed.
func SimulateSIP(series *NavSeries, p SIPParams) (SIPResult, error) {
	if !p.Frequency.Valid() {
		return SIPResult{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidFrequency, p.Frequency)
	}
	if !(p.Amount > 0) || !isFinite(p.Amount) {
		return SIPResult{}, numericDegeneracy(ReasonInvalidAmount)
	}

	latest, ok := series.LatestUsable()
	if !ok {
		return SIPResult{}, dataAbsent(ReasonNoHistory)
	}

	from := Day(p.From)
	to := latest.Date
	if !p.To.IsZero() {
		to = Day(p.To)
	}
	if from.After(to) {
		return SIPResult{}, rangeUnresolvable(ReasonInvalidDateRange)
	}

	var (
		totalUnits    float64
		totalInvested float64
		installments  int
		values        []ValuePoint
		flows         []Cashflow
	)

	for _, d := range GenerateDates(from, to, p.Frequency) {
		entry, ok := series.LookupUsableOnOrAfter(d)
		if !ok {
			continue
		}
		units := p.Amount / entry.NAV
		if !isFinite(units) {
			continue
		}
		totalUnits += units
		totalInvested += p.Amount
		installments++

		flows = append(flows, Cashflow{Date: entry.Date, Amount: -p.Amount})
		values = append(values, ValuePoint{Date: entry.Date, Value: round(totalUnits * entry.NAV)})
	}

	if installments == 0 || totalInvested <= 0 {
		return SIPResult{}, dataAbsent(ReasonInsufficientData)
	}

	currentValue := totalUnits * latest.NAV
	flows = append(flows, Cashflow{Date: latest.Date, Amount: currentValue})

	absoluteReturn := (currentValue - totalInvested) / totalInvested * 100
	xirr := SolveXIRR(flows) * 100

	return SIPResult{
		TotalInvested:     round(totalInvested),
		CurrentValue:      round(currentValue),
		TotalUnits:        roundTo(totalUnits, 4),
		Installments:      installments,
		AbsoluteReturnPct: round(absoluteReturn),
		XIRRPct:           round(xirr),
		CAGRPct:           calendarCAGR(currentValue, totalInvested, from, to),
		ValuationDate:     latest.Date,
		ValuationNAV:      latest.NAV,
		Series:            values,
		Cashflows:         flows,
	}, nil
}

// calendarCAGR annualises finalValue/invested over the whole calendar years
// between from and to, floored at cagrYearFloor. Returns nil when not finite.
func calendarCAGR(finalValue, invested float64, from, to time.Time) *float64 {
	years := math.Max(float64(YearsBetween(from, to)), cagrYearFloor)
	cagr := (math.Pow(finalValue/invested, 1/years) - 1) * 100
	if !isFinite(cagr) {
		return nil
	}
	rounded := round(cagr)
	return &rounded
}
