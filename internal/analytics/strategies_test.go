package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/analytics"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/apperrors"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/testutil"
)

func TestSimulateSIPSeries(t *testing.T) {
	start := testutil.Date(2024, 1, 1)

	t.Run("weekly installments every seven points", func(t *testing.T) {
		series := testutil.DailySeries(start, testutil.ConstantNAVs(20, 10)...)

		result, err := analytics.SimulateSIPSeries(series, analytics.SIPParams{
			Amount:    1000,
			Frequency: analytics.Weekly,
			From:      start,
		})
		require.NoError(t, err)

		assert.Equal(t, 3, result.Installments)
		assert.Equal(t, 3000.0, result.TotalInvested)
		assert.Equal(t, 3000.0, result.FinalValue)
		require.Len(t, result.Series, 20)
		assert.Equal(t, start, result.Series[0].Date)
		assert.Equal(t, 1000.0, result.Series[6].Value)
		assert.Equal(t, 2000.0, result.Series[7].Value)
		assert.Equal(t, 3000.0, result.Series[14].Value)
	})

	t.Run("values follow the NAV between installments", func(t *testing.T) {
		series := testutil.DailySeries(start, 10, 11, 12)

		result, err := analytics.SimulateSIPSeries(series, analytics.SIPParams{
			Amount:    1000,
			Frequency: analytics.Monthly,
			From:      start,
		})
		require.NoError(t, err)

		assert.Equal(t, 1, result.Installments)
		assert.Equal(t, []float64{1000, 1100, 1200}, values(result.Series))
	})

	t.Run("unusable points are skipped and do not advance the cadence", func(t *testing.T) {
		series := testutil.DailySeries(start, 10, 0, 10, 10, 10, 10, 10, 10, 10)

		result, err := analytics.SimulateSIPSeries(series, analytics.SIPParams{
			Amount:    1000,
			Frequency: analytics.Weekly,
			From:      start,
		})
		require.NoError(t, err)

		require.Len(t, result.Series, 8)
		assert.Equal(t, 2, result.Installments)
		assert.Equal(t, testutil.Date(2024, 1, 9), result.Series[7].Date)
		assert.Equal(t, 2000.0, result.FinalValue)
	})

	t.Run("window is inclusive of To", func(t *testing.T) {
		series := testutil.DailySeries(start, testutil.ConstantNAVs(20, 10)...)

		result, err := analytics.SimulateSIPSeries(series, analytics.SIPParams{
			Amount:    1000,
			Frequency: analytics.Weekly,
			From:      testutil.Date(2024, 1, 3),
			To:        testutil.Date(2024, 1, 10),
		})
		require.NoError(t, err)

		require.Len(t, result.Series, 8)
		assert.Equal(t, testutil.Date(2024, 1, 10), result.Series[7].Date)
		assert.Equal(t, 2, result.Installments)
	})

	t.Run("needs review outcomes", func(t *testing.T) {
		series := testutil.DailySeries(start, testutil.ConstantNAVs(5, 10)...)

		_, err := analytics.SimulateSIPSeries(series, analytics.SIPParams{
			Amount: 1000, Frequency: analytics.Monthly, From: testutil.Date(2025, 1, 1),
		})
		requireNeedsReview(t, err, apperrors.ErrRangeUnresolvable, analytics.ReasonInvalidDateRange)

		_, err = analytics.SimulateSIPSeries(series, analytics.SIPParams{
			Amount: 1000, Frequency: analytics.Monthly,
			From: testutil.Date(2023, 1, 1), To: testutil.Date(2023, 6, 1),
		})
		requireNeedsReview(t, err, apperrors.ErrRangeUnresolvable, analytics.ReasonRangeNotFound)

		_, err = analytics.SimulateSIPSeries(series, analytics.SIPParams{
			Amount: 0, Frequency: analytics.Monthly, From: start,
		})
		requireNeedsReview(t, err, apperrors.ErrNumericDegeneracy, analytics.ReasonInvalidAmount)

		_, err = analytics.SimulateSIPSeries(testutil.NewSeries(), analytics.SIPParams{
			Amount: 1000, Frequency: analytics.Monthly, From: start,
		})
		requireNeedsReview(t, err, apperrors.ErrDataAbsent, analytics.ReasonNoHistory)
	})

	t.Run("invalid frequency", func(t *testing.T) {
		series := testutil.DailySeries(start, 10, 11)

		_, err := analytics.SimulateSIPSeries(series, analytics.SIPParams{
			Amount: 1000, Frequency: "daily", From: start,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidFrequency)
	})
}

// TestCompareStrategies tests the merged SIP, lumpsum and SWP comparison curve.
//
// WHY: The three curves share one date axis; a strategy that cannot run must
// blank its own column without hiding the others.
func TestCompareStrategies(t *testing.T) {
	start := testutil.Date(2024, 1, 1)
	series := testutil.DailySeries(start, testutil.ConstantNAVs(60, 10)...)
	params := analytics.StrategiesParams{
		SIPAmount:     1000,
		SIPFrequency:  analytics.Monthly,
		LumpsumAmount: 5000,
		Withdrawal:    100,
		SWPFrequency:  analytics.Monthly,
		From:          start,
		To:            start.AddDate(0, 0, 44),
	}

	t.Run("merges the three curves on one axis", func(t *testing.T) {
		// Execute
		result, err := analytics.CompareStrategies(series, params)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, result.Reviews)
		require.Len(t, result.Points, 45)
		assert.Equal(t, start, result.Points[0].Date)

		last := result.Points[44]
		assert.Equal(t, params.To, last.Date)
		require.NotNil(t, last.SIP)
		require.NotNil(t, last.Lumpsum)
		require.NotNil(t, last.SWP)
		assert.Equal(t, 2000.0, *last.SIP)
		assert.Equal(t, 5000.0, *last.Lumpsum)
		assert.Equal(t, 1100.0, *last.SWP)

		first := result.Points[0]
		assert.Equal(t, 1000.0, *first.SIP)
		assert.Equal(t, 1200.0, *first.SWP)

		for i := 1; i < len(result.Points); i++ {
			assert.True(t, result.Points[i].Date.After(result.Points[i-1].Date))
		}
	})

	t.Run("zero To runs to the latest date", func(t *testing.T) {
		p := params
		p.To = time.Time{}

		result, err := analytics.CompareStrategies(series, p)

		require.NoError(t, err)
		require.Len(t, result.Points, 60)
	})

	t.Run("a failing strategy blanks only its column", func(t *testing.T) {
		p := params
		p.LumpsumAmount = 0

		result, err := analytics.CompareStrategies(series, p)

		require.NoError(t, err)
		require.Contains(t, result.Reviews, analytics.StrategyLumpsum)
		assert.Equal(t, analytics.ReasonInvalidAmount, result.Reviews[analytics.StrategyLumpsum].Reason)
		require.Len(t, result.Points, 45)
		for _, pt := range result.Points {
			assert.Nil(t, pt.Lumpsum)
			assert.NotNil(t, pt.SIP)
			assert.NotNil(t, pt.SWP)
		}
	})

	t.Run("all strategies failing returns the review", func(t *testing.T) {
		_, err := analytics.CompareStrategies(testutil.NewSeries(), params)

		requireNeedsReview(t, err, apperrors.ErrDataAbsent, analytics.ReasonNoHistory)
	})

	t.Run("invalid SWP frequency", func(t *testing.T) {
		p := params
		p.SWPFrequency = "fortnightly"

		_, err := analytics.CompareStrategies(series, p)

		assert.ErrorIs(t, err, apperrors.ErrInvalidFrequency)
	})
}

func values(points []analytics.ValuePoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}
