package testutil

import (
	"time"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/analytics"
)

// Date builds a UTC calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NewSeries builds a NavSeries from explicit points.
func NewSeries(points ...analytics.NavPoint) *analytics.NavSeries {
	return analytics.NewNavSeries(points)
}

// DailySeries builds a series with one point per consecutive calendar day starting at start.
func DailySeries(start time.Time, navs ...float64) *analytics.NavSeries {
	points := make([]analytics.NavPoint, len(navs))
	for i, nav := range navs {
		points[i] = analytics.NavPoint{Date: start.AddDate(0, 0, i), NAV: nav}
	}
	return analytics.NewNavSeries(points)
}

// MonthlySeries builds a series with one point per calendar month starting at start.
func MonthlySeries(start time.Time, navs ...float64) *analytics.NavSeries {
	points := make([]analytics.NavPoint, len(navs))
	for i, nav := range navs {
		points[i] = analytics.NavPoint{Date: analytics.AddMonths(start, i), NAV: nav}
	}
	return analytics.NewNavSeries(points)
}

// LinearNAVs returns n values rising linearly from first to last (inclusive).
func LinearNAVs(n int, first, last float64) []float64 {
	navs := make([]float64, n)
	for i := range navs {
		if n == 1 {
			navs[i] = first
			continue
		}
		navs[i] = first + float64(i)*(last-first)/float64(n-1)
	}
	return navs
}

// ConstantNAVs returns n copies of nav.
func ConstantNAVs(n int, nav float64) []float64 {
	navs := make([]float64, n)
	for i := range navs {
		navs[i] = nav
	}
	return navs
}
