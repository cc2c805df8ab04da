package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrSchemeNotFound indicates that the data provider has no scheme with the given code.
	ErrSchemeNotFound = errors.New("scheme not found")

	// ErrInvalidSchemeCode indicates that a scheme code is not a positive integer.
	ErrInvalidSchemeCode = errors.New("invalid scheme code")
)

// Needs-review kinds. An analytics computation that cannot produce a
// meaningful number resolves to one of these instead of failing.
var (
	// ErrDataAbsent indicates an empty or missing NAV history, or no executed installment.
	ErrDataAbsent = errors.New("data absent")

	// ErrRangeUnresolvable indicates that the requested window has no qualifying NAV point.
	ErrRangeUnresolvable = errors.New("range unresolvable")

	// ErrDegenerateWindow indicates a resolved span shorter than one day.
	ErrDegenerateWindow = errors.New("degenerate window")

	// ErrNumericDegeneracy indicates a non-finite intermediate result
	// (zero or negative NAV, zero invested amount).
	ErrNumericDegeneracy = errors.New("numeric degeneracy")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidFrequency indicates a frequency outside weekly, monthly and yearly.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrInvalidPeriod indicates a period token outside 1m, 3m, 6m and 1y.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidDate indicates a date that is not in YYYY-MM-DD format.
	ErrInvalidDate = errors.New("invalid date")

	// ErrTooManySchemes indicates a comparison naming more schemes than the service allows.
	ErrTooManySchemes = errors.New("too many schemes requested")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
var (
	// ErrUpstreamUnavailable indicates the NAV data provider could not be reached
	// or answered with an unexpected status.
	ErrUpstreamUnavailable = errors.New("nav data provider unavailable")

	// ErrFailedToRetrieveSchemes indicates that the scheme listing could not be loaded.
	ErrFailedToRetrieveSchemes = errors.New("failed to retrieve schemes")

	// ErrFailedToRetrieveScheme indicates that a single scheme could not be loaded.
	ErrFailedToRetrieveScheme = errors.New("failed to retrieve scheme")

	// ErrFailedToCalculateReturns indicates that a windowed return could not be computed.
	ErrFailedToCalculateReturns = errors.New("failed to calculate returns")

	// ErrFailedToCalculateSIP indicates that a SIP simulation failed.
	ErrFailedToCalculateSIP = errors.New("failed to calculate SIP")

	// ErrFailedToCalculateLumpsum indicates that a lumpsum simulation failed.
	ErrFailedToCalculateLumpsum = errors.New("failed to calculate lumpsum")

	// ErrFailedToCalculateSWP indicates that an SWP simulation failed.
	ErrFailedToCalculateSWP = errors.New("failed to calculate SWP")

	// ErrFailedToCalculateStatistics indicates that the chart or risk statistics could not be computed.
	ErrFailedToCalculateStatistics = errors.New("failed to calculate statistics")

	// ErrFailedToCompareSchemes indicates that a multi-scheme comparison failed.
	ErrFailedToCompareSchemes = errors.New("failed to compare schemes")

	// ErrFailedToCompareStrategies indicates that the SIP, lumpsum and SWP comparison failed.
	ErrFailedToCompareStrategies = errors.New("failed to compare strategies")

	// ErrFailedToParseProviderPayload indicates a provider response that could not be decoded.
	ErrFailedToParseProviderPayload = errors.New("failed to parse provider payload")
)
