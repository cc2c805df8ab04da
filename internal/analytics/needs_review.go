package analytics

import "github.com/ndewijer/mutual-fund-explorer-backend/internal/apperrors"

// Human-readable reasons attached to NeedsReview outcomes.
const (
	ReasonNoHistory        = "No NAV history available"
	ReasonRangeNotFound    = "NAV range not found"
	ReasonInsufficientSpan = "Insufficient date span"
	ReasonInsufficientData = "Insufficient data for calculation"
	ReasonInvalidDateRange = "Invalid date range"
	ReasonUnusableStartNAV = "No usable NAV at start date"
	ReasonInvalidAmount    = "Amount must be a positive number"
	ReasonNonFiniteResult  = "Calculation produced a non-finite result"
)

// NeedsReview is the structured outcome of a computation that cannot produce a
// meaningful number. It is returned as an error so callers can branch with
// errors.As, and it unwraps to one of the apperrors needs-review kinds
// (ErrDataAbsent, ErrRangeUnresolvable, ErrDegenerateWindow, ErrNumericDegeneracy).
type NeedsReview struct {
	Kind   error
	Reason string
}

func (e *NeedsReview) Error() string {
	return "needs review: " + e.Reason
}

func (e *NeedsReview) Unwrap() error {
	return e.Kind
}

func needsReview(kind error, reason string) *NeedsReview {
	return &NeedsReview{Kind: kind, Reason: reason}
}

func dataAbsent(reason string) *NeedsReview {
	return needsReview(apperrors.ErrDataAbsent, reason)
}

func rangeUnresolvable(reason string) *NeedsReview {
	return needsReview(apperrors.ErrRangeUnresolvable, reason)
}

func numericDegeneracy(reason string) *NeedsReview {
	return needsReview(apperrors.ErrNumericDegeneracy, reason)
}
