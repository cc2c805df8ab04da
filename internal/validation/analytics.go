package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/analytics"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/api/request"
)

// MaxMAWindow caps the moving-average window at roughly one year of points.
const MaxMAWindow = 365

// Strategy comparison amounts used when the query omits them.
const (
	DefaultSIPAmount     = 5000
	DefaultLumpsumAmount = 50000
	DefaultSWPAmount     = 2000
)

// ValidateSIPRequest validates a SIP request and converts it to simulator parameters.
// An empty frequency defaults to monthly.
func ValidateSIPRequest(req request.SIPRequest) (analytics.SIPParams, error) {
	errors := make(map[string]string)

	positiveAmount(errors, "amount", req.Amount)
	freq := frequency(errors, req.Frequency)
	from := requiredDate(errors, "from", req.From)
	to := optionalDate(errors, "to", req.To)
	dateOrder(errors, from, to)

	if err := result(errors); err != nil {
		return analytics.SIPParams{}, err
	}
	return analytics.SIPParams{Amount: req.Amount, Frequency: freq, From: from, To: to}, nil
}

// ValidateLumpsumRequest validates a lumpsum request and converts it to simulator parameters.
func ValidateLumpsumRequest(req request.LumpsumRequest) (analytics.LumpsumParams, error) {
	errors := make(map[string]string)

	positiveAmount(errors, "amount", req.Amount)
	from := requiredDate(errors, "from", req.From)
	to := optionalDate(errors, "to", req.To)
	dateOrder(errors, from, to)

	if err := result(errors); err != nil {
		return analytics.LumpsumParams{}, err
	}
	return analytics.LumpsumParams{Amount: req.Amount, From: from, To: to}, nil
}

// ValidateSWPRequest validates a SWP request and converts it to simulator parameters.
func ValidateSWPRequest(req request.SWPRequest) (analytics.SWPParams, error) {
	errors := make(map[string]string)

	positiveAmount(errors, "withdrawal", req.Withdrawal)
	freq := frequency(errors, req.Frequency)
	from := requiredDate(errors, "from", req.From)

	if err := result(errors); err != nil {
		return analytics.SWPParams{}, err
	}
	return analytics.SWPParams{Withdrawal: req.Withdrawal, Frequency: freq, From: from}, nil
}

// ValidateStrategiesQuery validates strategy comparison query parameters and
// converts them to comparison parameters. Omitted amounts take the Default*
// values and omitted frequencies default to monthly. from is required.
func ValidateStrategiesQuery(q request.StrategiesQuery) (analytics.StrategiesParams, error) {
	errors := make(map[string]string)

	sipAmount := amountOrDefault(errors, "sipAmount", q.SIPAmount, DefaultSIPAmount)
	lumpsumAmount := amountOrDefault(errors, "lumpsumAmount", q.LumpsumAmount, DefaultLumpsumAmount)
	swpAmount := amountOrDefault(errors, "swpAmount", q.SWPAmount, DefaultSWPAmount)
	sipFreq := frequencyField(errors, "sipFrequency", q.SIPFrequency)
	swpFreq := frequencyField(errors, "swpFrequency", q.SWPFrequency)
	from := requiredDate(errors, "from", q.From)
	to := optionalDate(errors, "to", q.To)
	dateOrder(errors, from, to)

	if err := result(errors); err != nil {
		return analytics.StrategiesParams{}, err
	}
	return analytics.StrategiesParams{
		SIPAmount:     sipAmount,
		SIPFrequency:  sipFreq,
		LumpsumAmount: lumpsumAmount,
		Withdrawal:    swpAmount,
		SWPFrequency:  swpFreq,
		From:          from,
		To:            to,
	}, nil
}

// ValidateReturnsQuery converts returns query parameters into a window.
//
// A period selects a trailing window and takes precedence over from/to.
// Without a period, from selects an explicit window ending at to (or the
// latest date). With neither, the default period applies.
func ValidateReturnsQuery(q request.ReturnsQuery) (analytics.Window, error) {
	errors := make(map[string]string)

	if strings.TrimSpace(q.Period) != "" {
		p, err := analytics.ParsePeriod(q.Period)
		if err != nil {
			errors["period"] = fmt.Sprintf("invalid period: %s (expected one of 1m, 3m, 6m, 1y)", q.Period)
			return analytics.Window{}, result(errors)
		}
		return analytics.PeriodWindow(p), nil
	}

	from := optionalDate(errors, "from", q.From)
	to := optionalDate(errors, "to", q.To)
	if from.IsZero() && strings.TrimSpace(q.To) != "" && errors["to"] == "" {
		errors["from"] = "from is required when to is set"
	}
	dateOrder(errors, from, to)

	if err := result(errors); err != nil {
		return analytics.Window{}, err
	}
	if from.IsZero() {
		return analytics.PeriodWindow(analytics.DefaultPeriod), nil
	}
	return analytics.RangeWindow(from, to), nil
}

// ValidateMAWindow parses an optional moving-average window. Zero means the default.
func ValidateMAWindow(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	w, err := strconv.Atoi(raw)
	if err != nil || w < 1 || w > MaxMAWindow {
		return 0, &Error{Fields: map[string]string{
			"window": fmt.Sprintf("window must be an integer between 1 and %d", MaxMAWindow),
		}}
	}
	return w, nil
}

func frequency(errors map[string]string, raw string) analytics.Frequency {
	return frequencyField(errors, "frequency", raw)
}

func frequencyField(errors map[string]string, field, raw string) analytics.Frequency {
	f, err := analytics.ParseFrequency(raw)
	if err != nil {
		errors[field] = fmt.Sprintf("invalid frequency: %s (expected weekly, monthly or yearly)", raw)
	}
	return f
}

// amountOrDefault parses an optional amount query parameter.
func amountOrDefault(errors map[string]string, field, raw string, def float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errors[field] = field + " must be a positive number"
		return 0
	}
	positiveAmount(errors, field, v)
	return v
}
