package service

import (
	"math"
	"time"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/analytics"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/model"
)

func formatDate(t time.Time) string {
	return t.Format(analytics.DateLayout)
}

func toNavPoints(points []analytics.NavPoint) []model.NavPoint {
	out := make([]model.NavPoint, len(points))
	for i, p := range points {
		out[i] = model.NavPoint{Date: formatDate(p.Date), NAV: p.NAV}
	}
	return out
}

func toValuePoints(points []analytics.ValuePoint) []model.ValuePoint {
	out := make([]model.ValuePoint, len(points))
	for i, p := range points {
		out[i] = model.ValuePoint{Date: formatDate(p.Date), Value: p.Value}
	}
	return out
}

func toReturnsResponse(r analytics.ReturnResult) model.ReturnsResponse {
	return model.ReturnsResponse{
		StartDate:           formatDate(r.StartDate),
		EndDate:             formatDate(r.EndDate),
		StartNAV:            r.StartNAV,
		EndNAV:              r.EndNAV,
		SimpleReturnPct:     r.SimpleReturnPct,
		AnnualizedReturnPct: r.AnnualizedReturnPct,
	}
}

func toSIPResponse(r analytics.SIPResult) model.SIPResponse {
	flows := make([]model.Cashflow, len(r.Cashflows))
	for i, cf := range r.Cashflows {
		flows[i] = model.Cashflow{Date: formatDate(cf.Date), Amount: math.Round(cf.Amount*100) / 100}
	}
	return model.SIPResponse{
		TotalInvested:     r.TotalInvested,
		CurrentValue:      r.CurrentValue,
		TotalUnits:        r.TotalUnits,
		Installments:      r.Installments,
		AbsoluteReturnPct: r.AbsoluteReturnPct,
		XIRRPct:           r.XIRRPct,
		CAGRPct:           r.CAGRPct,
		ValuationDate:     formatDate(r.ValuationDate),
		ValuationNAV:      r.ValuationNAV,
		Series:            toValuePoints(r.Series),
		Cashflows:         flows,
	}
}

func toLumpsumResponse(r analytics.LumpsumResult) model.LumpsumResponse {
	return model.LumpsumResponse{
		Invested:          r.Invested,
		Units:             r.Units,
		PurchaseDate:      formatDate(r.PurchaseDate),
		PurchaseNAV:       r.PurchaseNAV,
		CurrentValue:      r.CurrentValue,
		AbsoluteReturnPct: r.AbsoluteReturnPct,
		Series:            toValuePoints(r.Series),
	}
}

func toSWPResponse(r analytics.SWPResult) model.SWPResponse {
	var depletion *string
	if !r.DepletionDate.IsZero() {
		d := formatDate(r.DepletionDate)
		depletion = &d
	}
	return model.SWPResponse{
		InitialCorpus:  r.InitialCorpus,
		StartDate:      formatDate(r.StartDate),
		StartNAV:       r.StartNAV,
		Withdrawals:    r.Withdrawals,
		TotalWithdrawn: r.TotalWithdrawn,
		FinalValue:     r.FinalValue,
		DepletionDate:  depletion,
		Series:         toValuePoints(r.Series),
	}
}

func toStrategiesResponse(r analytics.StrategiesResult) model.StrategiesResponse {
	points := make([]model.StrategyPoint, len(r.Points))
	for i, p := range r.Points {
		points[i] = model.StrategyPoint{Date: formatDate(p.Date), SIP: p.SIP, Lumpsum: p.Lumpsum, SWP: p.SWP}
	}

	var reviews map[string]*model.NeedsReview
	if len(r.Reviews) > 0 {
		reviews = make(map[string]*model.NeedsReview, len(r.Reviews))
		for name, nr := range r.Reviews {
			reviews[name] = toNeedsReview(nr)
		}
	}

	return model.StrategiesResponse{Points: points, NeedsReview: reviews}
}

func toRiskReturnResponse(r analytics.RiskReturn, lookback int) model.RiskReturnResponse {
	return model.RiskReturnResponse{
		MeanReturnPct: math.Round(r.MeanReturnPct*10000) / 10000,
		VolatilityPct: math.Round(r.VolatilityPct*10000) / 10000,
		Observations:  r.Observations,
		Lookback:      lookback,
	}
}

func toNeedsReview(nr *analytics.NeedsReview) *model.NeedsReview {
	return &model.NeedsReview{NeedsReview: true, Reason: nr.Reason}
}
