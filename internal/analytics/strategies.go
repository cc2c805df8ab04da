package analytics

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/apperrors"
)

// Strategy names keyed in StrategiesResult.Reviews.
const (
	StrategySIP     = "sip"
	StrategyLumpsum = "lumpsum"
	StrategySWP     = "swp"
)

// SIPSeriesResult is the point-stepped SIP value curve.
type SIPSeriesResult struct {
	TotalInvested float64
	Installments  int
	FinalValue    float64
	Series        []ValuePoint
}

// SimulateSIPSeries invests Amount on the first usable point in [From, To] and
// then every StepPoints[Frequency] usable points, valuing the accumulated units
// at every usable point in the window. Unlike SimulateSIP it steps series
// points rather than calendar dates, which keeps its curve on the same axis as
// the lumpsum and SWP curves.
func SimulateSIPSeries(series *NavSeries, p SIPParams) (SIPSeriesResult, error) {
	step, ok := StepPoints[p.Frequency]
	if !ok {
		return SIPSeriesResult{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidFrequency, p.Frequency)
	}
	if !(p.Amount > 0) || !isFinite(p.Amount) {
		return SIPSeriesResult{}, numericDegeneracy(ReasonInvalidAmount)
	}

	latest, ok := series.Latest()
	if !ok {
		return SIPSeriesResult{}, dataAbsent(ReasonNoHistory)
	}

	from := Day(p.From)
	to := latest.Date
	if !p.To.IsZero() {
		to = Day(p.To)
	}
	if from.After(to) {
		return SIPSeriesResult{}, rangeUnresolvable(ReasonInvalidDateRange)
	}

	var (
		result     SIPSeriesResult
		totalUnits float64
		counter    int
	)
	for _, pt := range series.Between(from, to) {
		if !pt.Usable() {
			continue
		}
		if counter%step == 0 {
			totalUnits += p.Amount / pt.NAV
			result.TotalInvested += p.Amount
			result.Installments++
		}
		result.Series = append(result.Series, ValuePoint{Date: pt.Date, Value: round(totalUnits * pt.NAV)})
		counter++
	}

	if len(result.Series) == 0 {
		return SIPSeriesResult{}, rangeUnresolvable(ReasonRangeNotFound)
	}

	result.TotalInvested = round(result.TotalInvested)
	result.FinalValue = result.Series[len(result.Series)-1].Value
	return result, nil
}

// StrategiesParams configures the three strategies compared over one window.
// A zero To means the series' latest date.
type StrategiesParams struct {
	SIPAmount     float64
	SIPFrequency  Frequency
	LumpsumAmount float64
	Withdrawal    float64
	SWPFrequency  Frequency
	From          time.Time
	To            time.Time
}

// StrategyPoint holds the value of each strategy on one date.
// A nil value means the strategy has no value on that date.
type StrategyPoint struct {
	Date    time.Time
	SIP     *float64
	Lumpsum *float64
	SWP     *float64
}

// StrategiesResult is the merged comparison curve. Reviews holds the outcome
// of every strategy that could not be simulated, keyed by strategy name.
type StrategiesResult struct {
	Points  []StrategyPoint
	Reviews map[string]*NeedsReview
}

// CompareStrategies runs SimulateSIPSeries, SimulateLumpsum and SimulateSWP over
// the same window and merges their curves on one ascending date axis. The SWP
// curve is clipped to To.
//
// A strategy that needs review is reported in Reviews and leaves its column
// nil. When all three need review the SIP outcome is returned as the error.
// Invalid frequencies are returned as ErrInvalidFrequency.
func CompareStrategies(series *NavSeries, p StrategiesParams) (StrategiesResult, error) {
	reviews := make(map[string]*NeedsReview)
	curves := make(map[string][]ValuePoint)

	record := func(name string, values []ValuePoint, err error) error {
		if err == nil {
			curves[name] = values
			return nil
		}
		var nr *NeedsReview
		if errors.As(err, &nr) {
			reviews[name] = nr
			return nil
		}
		return err
	}

	sip, err := SimulateSIPSeries(series, SIPParams{
		Amount:    p.SIPAmount,
		Frequency: p.SIPFrequency,
		From:      p.From,
		To:        p.To,
	})
	if err := record(StrategySIP, sip.Series, err); err != nil {
		return StrategiesResult{}, err
	}

	lumpsum, err := SimulateLumpsum(series, LumpsumParams{
		Amount: p.LumpsumAmount,
		From:   p.From,
		To:     p.To,
	})
	if err := record(StrategyLumpsum, lumpsum.Series, err); err != nil {
		return StrategiesResult{}, err
	}

	swp, err := SimulateSWP(series, SWPParams{
		Withdrawal: p.Withdrawal,
		Frequency:  p.SWPFrequency,
		From:       p.From,
	})
	if err := record(StrategySWP, clipTo(swp.Series, p.To), err); err != nil {
		return StrategiesResult{}, err
	}

	if len(curves) == 0 {
		return StrategiesResult{}, reviews[StrategySIP]
	}

	return StrategiesResult{Points: mergeCurves(curves), Reviews: reviews}, nil
}

// clipTo drops values dated after to. A zero to keeps everything.
func clipTo(values []ValuePoint, to time.Time) []ValuePoint {
	if to.IsZero() {
		return values
	}
	to = Day(to)
	for i, v := range values {
		if v.Date.After(to) {
			return values[:i]
		}
	}
	return values
}

func mergeCurves(curves map[string][]ValuePoint) []StrategyPoint {
	byDate := make(map[time.Time]*StrategyPoint)
	var order []time.Time

	for name, values := range curves {
		for _, v := range values {
			pt, ok := byDate[v.Date]
			if !ok {
				pt = &StrategyPoint{Date: v.Date}
				byDate[v.Date] = pt
				order = append(order, v.Date)
			}
			value := v.Value
			switch name {
			case StrategySIP:
				pt.SIP = &value
			case StrategyLumpsum:
				pt.Lumpsum = &value
			case StrategySWP:
				pt.SWP = &value
			}
		}
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })
	points := make([]StrategyPoint, len(order))
	for i, d := range order {
		points[i] = *byDate[d]
	}
	return points
}
