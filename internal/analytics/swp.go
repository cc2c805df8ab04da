package analytics

import (
	"fmt"
	"time"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/apperrors"
)

// StepPoints is the cadence of the point-stepped simulators (SWP and the
// SIP value series) expressed in series points. It approximates days by
// points rather than stepping calendar dates.
var StepPoints = map[Frequency]int{
	Weekly:  7,
	Monthly: 30,
	Yearly:  365,
}

// SWPCorpusMultiple seeds the SWP corpus with this many withdrawals' worth of units.
const SWPCorpusMultiple = 12

// SWPParams describes a systematic withdrawal plan running to the end of the series.
type SWPParams struct {
	Withdrawal float64
	Frequency  Frequency
	From       time.Time
}

// SWPResult is the depletion curve of a withdrawal plan.
// DepletionDate is zero when the corpus never ran out.
type SWPResult struct {
	InitialCorpus  float64
	StartDate      time.Time
	StartNAV       float64
	Withdrawals    int
	TotalWithdrawn float64
	FinalValue     float64
	DepletionDate  time.Time
	Series         []ValuePoint
}

// SimulateSWP seeds a corpus of SWPCorpusMultiple × Withdrawal at the first
// point on or after From and walks the series forward. Every
// StepPoints[Frequency] usable points after the start it redeems
// Withdrawal worth of units at that point's NAV before re-valuing. Units are
// clamped at zero, so once the corpus is exhausted every later value is zero.
// Points with an unusable NAV are skipped and do not advance the cadence.
func SimulateSWP(series *NavSeries, p SWPParams) (SWPResult, error) {
	step, ok := StepPoints[p.Frequency]
	if !ok {
		return SWPResult{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidFrequency, p.Frequency)
	}
	if !(p.Withdrawal > 0) || !isFinite(p.Withdrawal) {
		return SWPResult{}, numericDegeneracy(ReasonInvalidAmount)
	}
	if series.Len() == 0 {
		return SWPResult{}, dataAbsent(ReasonNoHistory)
	}

	start := series.indexOnOrAfter(p.From)
	if start < 0 {
		return SWPResult{}, rangeUnresolvable(ReasonRangeNotFound)
	}
	first := series.points[start]
	if !first.Usable() {
		return SWPResult{}, numericDegeneracy(ReasonUnusableStartNAV)
	}

	corpus := p.Withdrawal * SWPCorpusMultiple
	units := corpus / first.NAV

	result := SWPResult{
		InitialCorpus: round(corpus),
		StartDate:     first.Date,
		StartNAV:      first.NAV,
	}

	counter := 0
	for i := start; i < len(series.points); i++ {
		pt := series.points[i]
		if !pt.Usable() {
			continue
		}

		if counter%step == 0 && i != start && units > 0 {
			redeem := p.Withdrawal / pt.NAV
			if redeem >= units {
				result.TotalWithdrawn += units * pt.NAV
				units = 0
				result.DepletionDate = pt.Date
			} else {
				result.TotalWithdrawn += p.Withdrawal
				units -= redeem
			}
			result.Withdrawals++
		}

		result.Series = append(result.Series, ValuePoint{Date: pt.Date, Value: round(units * pt.NAV)})
		counter++
	}

	result.TotalWithdrawn = round(result.TotalWithdrawn)
	result.FinalValue = result.Series[len(result.Series)-1].Value

	return result, nil
}
