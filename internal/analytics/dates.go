package analytics

import (
	"math"
	"time"
)

// DateLayout is the canonical calendar-date layout used across the engine and on the wire.
const DateLayout = "2006-01-02"

// daysPerYear is the fixed 365-day-year convention used for annualisation and XIRR year fractions.
const daysPerYear = 365.0

// Day truncates t to midnight UTC of its calendar date.
// All dates inside the engine are normalised through Day so that
// day differences are exact multiples of 24 hours.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from start to end.
// The result is negative when end is before start.
func DaysBetween(start, end time.Time) int {
	return int(math.Round(Day(end).Sub(Day(start)).Hours() / 24))
}

// AddMonths adds a number of calendar months to t, clamping the day to the
// last day of the target month (Jan 31 + 1 month = Feb 28/29) rather than
// letting Go's normalisation roll it into the following month.
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := Day(t).Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

// YearsBetween returns the number of whole calendar years from a to b.
// It is zero when b is before a or less than a year after it.
func YearsBetween(a, b time.Time) int {
	a, b = Day(a), Day(b)
	if b.Before(a) {
		return 0
	}
	n := b.Year() - a.Year()
	if AddYears(a, n).After(b) {
		n--
	}
	return n
}

// AddYears adds calendar years to t with the same end-of-month clamping as AddMonths (Feb 29 + 1y = Feb 28).
func AddYears(t time.Time, years int) time.Time {
	return AddMonths(t, 12*years)
}
