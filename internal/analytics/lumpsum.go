package analytics

import "time"

// LumpsumParams describes a one-time investment held from From to To.
// A zero To means the series' latest date.
type LumpsumParams struct {
	Amount float64
	From   time.Time
	To     time.Time
}

// LumpsumResult is a buy-and-hold valuation curve with its summary.
type LumpsumResult struct {
	Invested          float64
	Units             float64
	PurchaseDate      time.Time
	PurchaseNAV       float64
	CurrentValue      float64
	AbsoluteReturnPct float64
	Series            []ValuePoint
}

// SimulateLumpsum buys units at the first point on or after From (falling back
// to the series' first point) and values them at every usable point in
// [From, To]. Values are rounded to two decimals.
func SimulateLumpsum(series *NavSeries, p LumpsumParams) (LumpsumResult, error) {
	if !(p.Amount > 0) || !isFinite(p.Amount) {
		return LumpsumResult{}, numericDegeneracy(ReasonInvalidAmount)
	}

	latest, ok := series.Latest()
	if !ok {
		return LumpsumResult{}, dataAbsent(ReasonNoHistory)
	}

	from := Day(p.From)
	to := latest.Date
	if !p.To.IsZero() {
		to = Day(p.To)
	}
	if from.After(to) {
		return LumpsumResult{}, rangeUnresolvable(ReasonInvalidDateRange)
	}

	purchase, ok := series.LookupOnOrAfter(from)
	if !ok {
		purchase, _ = series.First()
	}
	if !purchase.Usable() {
		return LumpsumResult{}, numericDegeneracy(ReasonUnusableStartNAV)
	}

	units := p.Amount / purchase.NAV

	var values []ValuePoint
	for _, pt := range series.Between(from, to) {
		if !pt.Usable() {
			continue
		}
		values = append(values, ValuePoint{Date: pt.Date, Value: round(units * pt.NAV)})
	}
	if len(values) == 0 {
		return LumpsumResult{}, rangeUnresolvable(ReasonRangeNotFound)
	}

	current := values[len(values)-1].Value

	return LumpsumResult{
		Invested:          round(p.Amount),
		Units:             roundTo(units, 4),
		PurchaseDate:      purchase.Date,
		PurchaseNAV:       purchase.NAV,
		CurrentValue:      current,
		AbsoluteReturnPct: round((current - p.Amount) / p.Amount * 100),
		Series:            values,
	}, nil
}
