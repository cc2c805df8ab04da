package analytics

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/apperrors"
)

// Period is a named trailing window anchored at the series' latest date.
type Period string

const (
	Period1M Period = "1m"
	Period3M Period = "3m"
	Period6M Period = "6m"
	Period1Y Period = "1y"

	DefaultPeriod = Period1M
)

// Periods lists the supported period tokens in display order.
var Periods = []Period{Period1M, Period3M, Period6M, Period1Y}

var periodMonths = map[Period]int{
	Period1M: 1,
	Period3M: 3,
	Period6M: 6,
	Period1Y: 12,
}

// Valid reports whether p is one of the supported tokens.
func (p Period) Valid() bool {
	_, ok := periodMonths[p]
	return ok
}

// Months returns the length of the period in calendar months.
// Unknown tokens fall back to the default period.
func (p Period) Months() int {
	if m, ok := periodMonths[p]; ok {
		return m
	}
	return periodMonths[DefaultPeriod]
}

// ParsePeriod converts a raw token into a Period. An empty token yields
// DefaultPeriod; unknown tokens are rejected with ErrInvalidPeriod.
func ParsePeriod(raw string) (Period, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return DefaultPeriod, nil
	}
	p := Period(token)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidPeriod, raw)
	}
	return p, nil
}

// Window selects the start and end of a return calculation.
// Period takes precedence over From. When neither is set the default period
// applies. A zero To means the latest available date.
type Window struct {
	Period Period
	From   time.Time
	To     time.Time
}

// PeriodWindow returns a trailing window for the given period ending at the latest date.
func PeriodWindow(p Period) Window {
	return Window{Period: p}
}

// RangeWindow returns an explicit window. A zero to means the latest available date.
func RangeWindow(from, to time.Time) Window {
	return Window{From: from, To: to}
}

// ReturnResult is the point-to-point return between two resolved NAV points.
type ReturnResult struct {
	StartDate           time.Time
	EndDate             time.Time
	StartNAV            float64
	EndNAV              float64
	SimpleReturnPct     float64
	AnnualizedReturnPct float64
}

// ComputeReturn calculates the simple and annualised return over a window.
//
// Resolution:
//   - start date: latest date minus the period, or the explicit From
//   - end date: the explicit To, or the latest date
//   - both ends resolve to the latest usable point on or before the date; an
//     unresolvable end falls back to the series' latest point
//
// Annualisation compounds over a 365-day year using the actual elapsed days
// between the resolved points, not the nominal window length.
//
// Returns *NeedsReview when the series is empty ("No NAV history available"),
// either end cannot be resolved ("NAV range not found") or the resolved span is
// shorter than one day ("Insufficient date span").
func ComputeReturn(series *NavSeries, window Window) (ReturnResult, error) {
	latest, ok := series.Latest()
	if !ok {
		return ReturnResult{}, dataAbsent(ReasonNoHistory)
	}

	endDate := latest.Date
	if !window.To.IsZero() {
		endDate = Day(window.To)
	}

	var startDate time.Time
	switch {
	case window.Period != "":
		startDate = AddMonths(latest.Date, -window.Period.Months())
	case !window.From.IsZero():
		startDate = Day(window.From)
	default:
		startDate = AddMonths(latest.Date, -DefaultPeriod.Months())
	}

	start, ok := series.LookupOnOrBefore(startDate)
	if !ok {
		return ReturnResult{}, rangeUnresolvable(ReasonRangeNotFound)
	}
	end, ok := series.LookupOnOrBefore(endDate)
	if !ok {
		end = latest
	}
	if !end.Usable() {
		return ReturnResult{}, rangeUnresolvable(ReasonRangeNotFound)
	}

	days := DaysBetween(start.Date, end.Date)
	if days < 1 {
		return ReturnResult{}, needsReview(apperrors.ErrDegenerateWindow, ReasonInsufficientSpan)
	}

	ratio := end.NAV / start.NAV
	simple := (ratio - 1) * 100
	annualized := (math.Pow(ratio, daysPerYear/float64(days)) - 1) * 100
	if !isFinite(simple) || !isFinite(annualized) {
		return ReturnResult{}, numericDegeneracy(ReasonNonFiniteResult)
	}

	return ReturnResult{
		StartDate:           start.Date,
		EndDate:             end.Date,
		StartNAV:            start.NAV,
		EndNAV:              end.NAV,
		SimpleReturnPct:     round(simple),
		AnnualizedReturnPct: round(annualized),
	}, nil
}
