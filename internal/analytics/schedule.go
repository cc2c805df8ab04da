package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/apperrors"
)

// Frequency is the cadence of a systematic plan.
type Frequency string

const (
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// ValidFrequency contains the closed set of accepted frequencies.
var ValidFrequency = map[Frequency]bool{
	Weekly: true, Monthly: true, Yearly: true,
}

// Valid reports whether f is one of weekly, monthly or yearly.
func (f Frequency) Valid() bool {
	return ValidFrequency[f]
}

// ParseFrequency converts a raw token into a Frequency. An empty token defaults
// to Monthly; anything outside the closed set is rejected with ErrInvalidFrequency.
func ParseFrequency(raw string) (Frequency, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return Monthly, nil
	}
	f := Frequency(token)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidFrequency, raw)
	}
	return f, nil
}

// GenerateDates returns the plan dates from from through to (inclusive), stepping
// by one calendar week, month or year. Each date is computed from the anchor
// (from + i steps) so month-end clamping never drifts: a plan starting on
// Jan 31 runs Jan 31, Feb 28, Mar 31, ...
//
// The result is strictly increasing and bounded by to. from == to yields one
// date; from after to yields none. An unrecognised frequency yields only from;
// callers are expected to reject such values with ParseFrequency first.
func GenerateDates(from, to time.Time, freq Frequency) []time.Time {
	from, to = Day(from), Day(to)
	if from.After(to) {
		return nil
	}
	if !freq.Valid() {
		return []time.Time{from}
	}

	var dates []time.Time
	for i := 0; ; i++ {
		d := advance(from, freq, i)
		if d.After(to) {
			break
		}
		dates = append(dates, d)
	}
	return dates
}

func advance(anchor time.Time, freq Frequency, steps int) time.Time {
	switch freq {
	case Weekly:
		return anchor.AddDate(0, 0, 7*steps)
	case Monthly:
		return AddMonths(anchor, steps)
	default:
		return AddYears(anchor, steps)
	}
}
