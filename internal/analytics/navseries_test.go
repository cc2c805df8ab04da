package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/analytics"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/testutil"
)

func TestNewNavSeries(t *testing.T) {
	t.Run("sorts ascending and truncates times to calendar days", func(t *testing.T) {
		series := testutil.NewSeries(
			analytics.NavPoint{Date: time.Date(2024, 1, 3, 15, 30, 0, 0, time.UTC), NAV: 12},
			analytics.NavPoint{Date: testutil.Date(2024, 1, 1), NAV: 10},
			analytics.NavPoint{Date: testutil.Date(2024, 1, 2), NAV: 11},
		)

		points := series.Points()
		require.Len(t, points, 3)
		assert.Equal(t, testutil.Date(2024, 1, 1), points[0].Date)
		assert.Equal(t, testutil.Date(2024, 1, 2), points[1].Date)
		assert.Equal(t, testutil.Date(2024, 1, 3), points[2].Date)
	})

	t.Run("duplicate dates keep the last point in input order", func(t *testing.T) {
		series := testutil.NewSeries(
			analytics.NavPoint{Date: testutil.Date(2024, 1, 2), NAV: 11},
			analytics.NavPoint{Date: testutil.Date(2024, 1, 1), NAV: 10},
			analytics.NavPoint{Date: testutil.Date(2024, 1, 2), NAV: 11.5},
		)

		points := series.Points()
		require.Len(t, points, 2)
		assert.Equal(t, 11.5, points[1].NAV)
	})

	t.Run("does not alias the caller's slice", func(t *testing.T) {
		raw := []analytics.NavPoint{
			{Date: testutil.Date(2024, 1, 2), NAV: 11},
			{Date: testutil.Date(2024, 1, 1), NAV: 10},
		}
		series := analytics.NewNavSeries(raw)
		raw[0].NAV = 999

		latest, ok := series.Latest()
		require.True(t, ok)
		assert.Equal(t, 11.0, latest.NAV)
	})

	t.Run("keeps unusable points", func(t *testing.T) {
		series := testutil.DailySeries(testutil.Date(2024, 1, 1), 10, 0, -1)
		assert.Equal(t, 3, series.Len())
	})
}

func TestNavSeries_LookupOnOrBefore(t *testing.T) {
	series := testutil.NewSeries(
		analytics.NavPoint{Date: testutil.Date(2024, 1, 1), NAV: 10},
		analytics.NavPoint{Date: testutil.Date(2024, 1, 3), NAV: 12},
		analytics.NavPoint{Date: testutil.Date(2024, 1, 4), NAV: 0},
		analytics.NavPoint{Date: testutil.Date(2024, 1, 8), NAV: 15},
	)

	t.Run("exact match", func(t *testing.T) {
		p, ok := series.LookupOnOrBefore(testutil.Date(2024, 1, 3))
		require.True(t, ok)
		assert.Equal(t, 12.0, p.NAV)
	})

	t.Run("gap resolves to the previous point", func(t *testing.T) {
		p, ok := series.LookupOnOrBefore(testutil.Date(2024, 1, 2))
		require.True(t, ok)
		assert.Equal(t, testutil.Date(2024, 1, 1), p.Date)
	})

	t.Run("skips non-positive NAV", func(t *testing.T) {
		p, ok := series.LookupOnOrBefore(testutil.Date(2024, 1, 6))
		require.True(t, ok)
		assert.Equal(t, testutil.Date(2024, 1, 3), p.Date)
	})

	t.Run("ignores the time of day on the target", func(t *testing.T) {
		p, ok := series.LookupOnOrBefore(time.Date(2024, 1, 8, 1, 0, 0, 0, time.UTC))
		require.True(t, ok)
		assert.Equal(t, 15.0, p.NAV)
	})

	t.Run("before the first point is not found", func(t *testing.T) {
		_, ok := series.LookupOnOrBefore(testutil.Date(2023, 12, 31))
		assert.False(t, ok)
	})

	t.Run("empty series is not found", func(t *testing.T) {
		_, ok := testutil.NewSeries().LookupOnOrBefore(testutil.Date(2024, 1, 1))
		assert.False(t, ok)
	})

	t.Run("all non-positive is not found", func(t *testing.T) {
		bad := testutil.DailySeries(testutil.Date(2024, 1, 1), 0, -2, 0)
		_, ok := bad.LookupOnOrBefore(testutil.Date(2024, 2, 1))
		assert.False(t, ok)
	})

	t.Run("result is the latest usable point not after the target", func(t *testing.T) {
		navs := []float64{10, 0, 11, -1, 12, 13, 0, 0, 14}
		s := testutil.DailySeries(testutil.Date(2024, 1, 1), navs...)
		points := s.Points()

		for offset := 0; offset < 12; offset++ {
			target := testutil.Date(2024, 1, 1).AddDate(0, 0, offset)
			got, ok := s.LookupOnOrBefore(target)
			require.True(t, ok, "target %s", target.Format(analytics.DateLayout))

			assert.False(t, got.Date.After(target))
			assert.Greater(t, got.NAV, 0.0)
			for _, p := range points {
				if p.Date.After(got.Date) && !p.Date.After(target) {
					assert.False(t, p.Usable(), "later usable point %s missed", p.Date.Format(analytics.DateLayout))
				}
			}
		}
	})
}

func TestNavSeries_LookupOnOrAfter(t *testing.T) {
	series := testutil.NewSeries(
		analytics.NavPoint{Date: testutil.Date(2024, 1, 1), NAV: 10},
		analytics.NavPoint{Date: testutil.Date(2024, 1, 3), NAV: 0},
		analytics.NavPoint{Date: testutil.Date(2024, 1, 5), NAV: 14},
	)

	t.Run("returns the first point regardless of NAV", func(t *testing.T) {
		p, ok := series.LookupOnOrAfter(testutil.Date(2024, 1, 2))
		require.True(t, ok)
		assert.Equal(t, testutil.Date(2024, 1, 3), p.Date)
		assert.False(t, p.Usable())
	})

	t.Run("usable variant skips forward", func(t *testing.T) {
		p, ok := series.LookupUsableOnOrAfter(testutil.Date(2024, 1, 2))
		require.True(t, ok)
		assert.Equal(t, testutil.Date(2024, 1, 5), p.Date)
	})

	t.Run("after the last point is not found", func(t *testing.T) {
		_, ok := series.LookupOnOrAfter(testutil.Date(2024, 1, 6))
		assert.False(t, ok)
		_, ok = series.LookupUsableOnOrAfter(testutil.Date(2024, 1, 6))
		assert.False(t, ok)
	})
}

func TestNavSeries_Windows(t *testing.T) {
	series := testutil.DailySeries(testutil.Date(2024, 1, 1), 10, 11, 12, 13, 14)

	t.Run("Between is inclusive", func(t *testing.T) {
		points := series.Between(testutil.Date(2024, 1, 2), testutil.Date(2024, 1, 4))
		require.Len(t, points, 3)
		assert.Equal(t, 11.0, points[0].NAV)
		assert.Equal(t, 13.0, points[2].NAV)
	})

	t.Run("Tail caps at the series length", func(t *testing.T) {
		assert.Len(t, series.Tail(2), 2)
		assert.Len(t, series.Tail(50), 5)
		assert.Nil(t, series.Tail(0))
	})

	t.Run("TrailingYear is anchored at the latest date", func(t *testing.T) {
		s := testutil.MonthlySeries(testutil.Date(2022, 6, 15), testutil.ConstantNAVs(24, 10)...)
		points := s.TrailingYear()
		require.NotEmpty(t, points)
		assert.Equal(t, testutil.Date(2023, 5, 15), points[0].Date)
		assert.Equal(t, testutil.Date(2024, 5, 15), points[len(points)-1].Date)
	})

	t.Run("nil series is empty", func(t *testing.T) {
		var s *analytics.NavSeries
		assert.Equal(t, 0, s.Len())
		_, ok := s.Latest()
		assert.False(t, ok)
	})
}
