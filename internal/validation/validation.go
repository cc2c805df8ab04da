package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/analytics"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/apperrors"
)

// maxSchemeCodeDigits bounds scheme codes; AMFI codes are six digits today.
const maxSchemeCodeDigits = 9

// ValidateSchemeCode checks that a scheme code is a positive integer and returns it.
func ValidateSchemeCode(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxSchemeCodeDigits {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidSchemeCode, raw)
	}
	code, err := strconv.Atoi(raw)
	if err != nil || code <= 0 {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidSchemeCode, raw)
	}
	return code, nil
}

// ValidateSchemeCodes parses a comma-separated list of scheme codes.
func ValidateSchemeCodes(raw string) ([]int, error) {
	var codes []int
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		code, err := ValidateSchemeCode(part)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: at least one scheme code is required", apperrors.ErrInvalidSchemeCode)
	}
	return codes, nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(analytics.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, raw)
	}
	return t, nil
}
