package validation

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Error collects field-level validation failures.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

func result(errors map[string]string) error {
	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// positiveAmount records a message when v is not a positive finite number.
func positiveAmount(errors map[string]string, field string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		errors[field] = field + " must be a positive number"
	}
}

// requiredDate parses a mandatory date field.
func requiredDate(errors map[string]string, field, raw string) time.Time {
	if strings.TrimSpace(raw) == "" {
		errors[field] = field + " is required"
		return time.Time{}
	}
	return optionalDate(errors, field, raw)
}

// optionalDate parses a date field that may be empty.
func optionalDate(errors map[string]string, field, raw string) time.Time {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}
	}
	t, err := ParseDate(raw)
	if err != nil {
		errors[field] = field + " must be a date in YYYY-MM-DD format"
		return time.Time{}
	}
	return t
}

// dateOrder records a message when both dates are set and to precedes from.
func dateOrder(errors map[string]string, from, to time.Time) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		errors["to"] = "to must not be before from"
	}
}
