package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/analytics"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/apperrors"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/model"
)

// MaxCompareSchemes is the most schemes a single comparison may load.
const MaxCompareSchemes = 5

// AnalyticsService runs the analytics engine against scheme NAV histories.
//
// Every operation loads the scheme's series through SchemeService (and so the
// cache) and hands it to a pure analytics function. An *analytics.NeedsReview
// is returned unchanged so callers can render it as a review outcome rather
// than a failure.
type AnalyticsService struct {
	schemeService *SchemeService
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(schemeService *SchemeService) *AnalyticsService {
	return &AnalyticsService{
		schemeService: schemeService,
	}
}

// Returns computes the simple and annualised return of a scheme over a window.
func (s *AnalyticsService) Returns(ctx context.Context, code int, window analytics.Window) (model.ReturnsResponse, error) {
	series, err := s.schemeService.GetNavHistory(ctx, code)
	if err != nil {
		return model.ReturnsResponse{}, err
	}

	result, err := analytics.ComputeReturn(series, window)
	if err != nil {
		return model.ReturnsResponse{}, wrapCalculation(apperrors.ErrFailedToCalculateReturns, err)
	}
	return toReturnsResponse(result), nil
}

// ReturnsSummary computes the return over every supported period.
// A period that needs review yields a review row rather than failing the table.
func (s *AnalyticsService) ReturnsSummary(ctx context.Context, code int) ([]model.ReturnsSummaryRow, error) {
	series, err := s.schemeService.GetNavHistory(ctx, code)
	if err != nil {
		return nil, err
	}

	rows := make([]model.ReturnsSummaryRow, 0, len(analytics.Periods))
	for _, p := range analytics.Periods {
		row := model.ReturnsSummaryRow{Period: string(p)}

		result, err := analytics.ComputeReturn(series, analytics.PeriodWindow(p))
		var nr *analytics.NeedsReview
		switch {
		case errors.As(err, &nr):
			row.NeedsReview = toNeedsReview(nr)
		case err != nil:
			return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToCalculateReturns, err)
		default:
			r := toReturnsResponse(result)
			row.Result = &r
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// SIP simulates a systematic investment plan.
func (s *AnalyticsService) SIP(ctx context.Context, code int, params analytics.SIPParams) (model.SIPResponse, error) {
	series, err := s.schemeService.GetNavHistory(ctx, code)
	if err != nil {
		return model.SIPResponse{}, err
	}

	result, err := analytics.SimulateSIP(series, params)
	if err != nil {
		return model.SIPResponse{}, wrapCalculation(apperrors.ErrFailedToCalculateSIP, err)
	}
	return toSIPResponse(result), nil
}

// Lumpsum simulates a one-time investment held over a window.
func (s *AnalyticsService) Lumpsum(ctx context.Context, code int, params analytics.LumpsumParams) (model.LumpsumResponse, error) {
	series, err := s.schemeService.GetNavHistory(ctx, code)
	if err != nil {
		return model.LumpsumResponse{}, err
	}

	result, err := analytics.SimulateLumpsum(series, params)
	if err != nil {
		return model.LumpsumResponse{}, wrapCalculation(apperrors.ErrFailedToCalculateLumpsum, err)
	}
	return toLumpsumResponse(result), nil
}

// SWP simulates a systematic withdrawal plan.
func (s *AnalyticsService) SWP(ctx context.Context, code int, params analytics.SWPParams) (model.SWPResponse, error) {
	series, err := s.schemeService.GetNavHistory(ctx, code)
	if err != nil {
		return model.SWPResponse{}, err
	}

	result, err := analytics.SimulateSWP(series, params)
	if err != nil {
		return model.SWPResponse{}, wrapCalculation(apperrors.ErrFailedToCalculateSWP, err)
	}
	return toSWPResponse(result), nil
}

// Strategies compares SIP, lumpsum and SWP over one window on a shared date axis.
// A strategy that needs review is reported per strategy; the call fails with
// the review only when none of the three could run.
func (s *AnalyticsService) Strategies(ctx context.Context, code int, params analytics.StrategiesParams) (model.StrategiesResponse, error) {
	series, err := s.schemeService.GetNavHistory(ctx, code)
	if err != nil {
		return model.StrategiesResponse{}, err
	}

	result, err := analytics.CompareStrategies(series, params)
	if err != nil {
		return model.StrategiesResponse{}, wrapCalculation(apperrors.ErrFailedToCompareStrategies, err)
	}
	return toStrategiesResponse(result), nil
}

// Chart returns the trailing year of NAV points, anchored at the latest date,
// each paired with its moving average over window points.
func (s *AnalyticsService) Chart(ctx context.Context, code int, window int) (model.ChartResponse, error) {
	series, err := s.schemeService.GetNavHistory(ctx, code)
	if err != nil {
		return model.ChartResponse{}, err
	}
	if series.Len() == 0 {
		return model.ChartResponse{}, &analytics.NeedsReview{Kind: apperrors.ErrDataAbsent, Reason: analytics.ReasonNoHistory}
	}
	if window <= 0 {
		window = analytics.DefaultMAWindow
	}
	window = max(window, analytics.MinMAWindow)

	points := series.TrailingYear()
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.NAV
		if !p.Usable() {
			values[i] = math.NaN()
		}
	}
	ma := analytics.MovingAverage(values, window)

	out := make([]model.ChartPoint, len(points))
	for i, p := range points {
		out[i] = model.ChartPoint{Date: formatDate(p.Date), NAV: p.NAV}
		if !math.IsNaN(ma[i]) {
			v := math.Round(ma[i]*10000) / 10000
			out[i].MovingAverage = &v
		}
	}

	return model.ChartResponse{Window: window, Points: out}, nil
}

// RiskReturn computes mean daily return and volatility over the last
// analytics.DefaultRiskLookback points.
func (s *AnalyticsService) RiskReturn(ctx context.Context, code int) (model.RiskReturnResponse, error) {
	series, err := s.schemeService.GetNavHistory(ctx, code)
	if err != nil {
		return model.RiskReturnResponse{}, err
	}

	rr, err := analytics.VolatilityAndMeanReturn(series, analytics.DefaultRiskLookback)
	if err != nil {
		return model.RiskReturnResponse{}, wrapCalculation(apperrors.ErrFailedToCalculateStatistics, err)
	}
	return toRiskReturnResponse(rr, analytics.DefaultRiskLookback), nil
}

// Compare loads up to MaxCompareSchemes schemes concurrently and returns, in
// request order, each scheme's metadata, risk/return statistics and trailing
// year of NAV points. Duplicate codes are compared once.
//
// Any scheme failing to load fails the comparison; a scheme whose statistics
// need review is reported with a review marker instead.
func (s *AnalyticsService) Compare(ctx context.Context, codes []int) ([]model.ComparisonEntry, error) {
	unique := dedupe(codes)
	if len(unique) == 0 {
		return []model.ComparisonEntry{}, nil
	}
	if len(unique) > MaxCompareSchemes {
		return nil, fmt.Errorf("%w: %d requested, at most %d allowed", apperrors.ErrTooManySchemes, len(unique), MaxCompareSchemes)
	}

	entries := make([]model.ComparisonEntry, len(unique))
	g, gctx := errgroup.WithContext(ctx)
	for i, code := range unique {
		g.Go(func() error {
			scheme, err := s.schemeService.GetScheme(gctx, code)
			if err != nil {
				return err
			}

			entry := model.ComparisonEntry{
				Metadata:   scheme.Metadata,
				NavHistory: toNavPoints(scheme.Series.TrailingYear()),
			}

			rr, err := analytics.VolatilityAndMeanReturn(scheme.Series, analytics.DefaultRiskLookback)
			var nr *analytics.NeedsReview
			switch {
			case errors.As(err, &nr):
				entry.NeedsReview = toNeedsReview(nr)
			case err != nil:
				return err
			default:
				r := toRiskReturnResponse(rr, analytics.DefaultRiskLookback)
				entry.RiskReturn = &r
			}

			entries[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToCompareSchemes, err)
	}
	return entries, nil
}

func dedupe(codes []int) []int {
	seen := make(map[int]bool, len(codes))
	out := make([]int, 0, len(codes))
	for _, c := range codes {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// wrapCalculation passes review outcomes through untouched and wraps anything
// else with the operation's failure sentinel.
func wrapCalculation(sentinel, err error) error {
	var nr *analytics.NeedsReview
	if errors.As(err, &nr) {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
