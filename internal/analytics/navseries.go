// Package analytics is the NAV time-series analytics engine. It turns a per-day
// NAV history into investor-facing metrics: as-of lookups, windowed returns,
// SIP/lumpsum/SWP simulation, XIRR and smoothing/volatility statistics.
//
// Every function is a pure, synchronous computation over an immutable NavSeries.
// Computations that cannot produce a meaningful number return a *NeedsReview
// error rather than a wrong value.
package analytics

import (
	"sort"
	"time"
)

// NavPoint is the net asset value of a scheme on one calendar date.
type NavPoint struct {
	Date time.Time
	NAV  float64
}

// Usable reports whether the point can be used in a valuation.
// Zero, negative and non-finite NAVs are unusable.
func (p NavPoint) Usable() bool {
	return p.NAV > 0 && isFinite(p.NAV)
}

// NavSeries is an ascending-by-date, de-duplicated NAV history.
// It is immutable once built; new data means building a new series, so a
// single *NavSeries may be shared by any number of concurrent readers.
type NavSeries struct {
	points []NavPoint
}

// NewNavSeries canonicalises raw points into a NavSeries. The input slice is
// copied, dates are truncated to calendar days and sorted ascending with a
// stable sort. When several points share a date the one appearing last in the
// input wins. Unusable points are kept; lookups skip them where required.
func NewNavSeries(points []NavPoint) *NavSeries {
	sorted := make([]NavPoint, len(points))
	copy(sorted, points)
	for i := range sorted {
		sorted[i].Date = Day(sorted[i].Date)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	out := sorted[:0]
	for _, p := range sorted {
		if n := len(out); n > 0 && out[n-1].Date.Equal(p.Date) {
			out[n-1] = p
			continue
		}
		out = append(out, p)
	}

	return &NavSeries{points: out}
}

// Len returns the number of points in the series.
func (s *NavSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.points)
}

// Points returns a copy of the canonical points.
func (s *NavSeries) Points() []NavPoint {
	if s == nil {
		return nil
	}
	out := make([]NavPoint, len(s.points))
	copy(out, s.points)
	return out
}

// First returns the earliest point in the series.
func (s *NavSeries) First() (NavPoint, bool) {
	if s.Len() == 0 {
		return NavPoint{}, false
	}
	return s.points[0], true
}

// Latest returns the last point in the canonical ordering, regardless of NAV validity.
// It is the default valuation date and default window end.
func (s *NavSeries) Latest() (NavPoint, bool) {
	if s.Len() == 0 {
		return NavPoint{}, false
	}
	return s.points[len(s.points)-1], true
}

// LatestUsable returns the most recent point with a usable NAV.
func (s *NavSeries) LatestUsable() (NavPoint, bool) {
	latest, ok := s.Latest()
	if !ok {
		return NavPoint{}, false
	}
	return s.LookupOnOrBefore(latest.Date)
}

// LookupOnOrBefore returns the latest point dated on or before target whose NAV
// is usable. Unusable points are skipped, never failed on.
// Returns false when the series is empty or no point qualifies.
func (s *NavSeries) LookupOnOrBefore(target time.Time) (NavPoint, bool) {
	target = Day(target)
	// i is the first index dated strictly after target.
	i := sort.Search(s.Len(), func(i int) bool {
		return s.points[i].Date.After(target)
	})
	for j := i - 1; j >= 0; j-- {
		if s.points[j].Usable() {
			return s.points[j], true
		}
	}
	return NavPoint{}, false
}

// LookupOnOrAfter returns the first point dated on or after target, regardless
// of NAV validity. Callers must guard against an unusable NAV themselves.
func (s *NavSeries) LookupOnOrAfter(target time.Time) (NavPoint, bool) {
	i := s.indexOnOrAfter(target)
	if i < 0 {
		return NavPoint{}, false
	}
	return s.points[i], true
}

// LookupUsableOnOrAfter returns the first point dated on or after target whose NAV is usable.
func (s *NavSeries) LookupUsableOnOrAfter(target time.Time) (NavPoint, bool) {
	i := s.indexOnOrAfter(target)
	if i < 0 {
		return NavPoint{}, false
	}
	for ; i < len(s.points); i++ {
		if s.points[i].Usable() {
			return s.points[i], true
		}
	}
	return NavPoint{}, false
}

// Between returns a copy of the points dated within [from, to], inclusive on both ends.
func (s *NavSeries) Between(from, to time.Time) []NavPoint {
	from, to = Day(from), Day(to)
	var out []NavPoint
	for i := s.indexOnOrAfter(from); i >= 0 && i < len(s.points); i++ {
		if s.points[i].Date.After(to) {
			break
		}
		out = append(out, s.points[i])
	}
	return out
}

// Tail returns a copy of the last n points (all points when n exceeds the length).
func (s *NavSeries) Tail(n int) []NavPoint {
	if n <= 0 || s.Len() == 0 {
		return nil
	}
	if n > len(s.points) {
		n = len(s.points)
	}
	out := make([]NavPoint, n)
	copy(out, s.points[len(s.points)-n:])
	return out
}

// TrailingYear returns the points of the last calendar year, anchored at the latest date.
func (s *NavSeries) TrailingYear() []NavPoint {
	latest, ok := s.Latest()
	if !ok {
		return nil
	}
	return s.Between(AddYears(latest.Date, -1), latest.Date)
}

// indexOnOrAfter returns the index of the first point dated on or after target, or -1.
func (s *NavSeries) indexOnOrAfter(target time.Time) int {
	target = Day(target)
	n := s.Len()
	i := sort.Search(n, func(i int) bool {
		return !s.points[i].Date.Before(target)
	})
	if i >= n {
		return -1
	}
	return i
}
