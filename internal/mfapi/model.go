package mfapi

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/analytics"
)

// schemeResponse is the raw payload of GET /mf/{code}.
//
// mfapi.in answers unknown codes with 200 and an empty meta object, so an
// absent scheme name is treated as not found.
type schemeResponse struct {
	Meta   schemeMeta `json:"meta"`
	Data   []navRow   `json:"data"`
	Status string     `json:"status"`
}

type schemeMeta struct {
	FundHouse           string `json:"fund_house"`
	SchemeType          string `json:"scheme_type"`
	SchemeCategory      string `json:"scheme_category"`
	SchemeCode          int    `json:"scheme_code"`
	SchemeName          string `json:"scheme_name"`
	ISINGrowth          string `json:"isin_growth"`
	ISINDivReinvestment string `json:"isin_div_reinvestment"`
}

// navRow is one history row. NAV arrives as a decimal string.
type navRow struct {
	Date string `json:"date"`
	NAV  string `json:"nav"`
}

// SchemeListing is one entry of the scheme catalogue returned by GET /mf.
type SchemeListing struct {
	SchemeCode int    `json:"schemeCode"`
	SchemeName string `json:"schemeName"`
}

// Metadata describes a scheme.
type Metadata struct {
	SchemeCode     int    `json:"schemeCode"`
	SchemeName     string `json:"schemeName"`
	SchemeType     string `json:"schemeType"`
	SchemeCategory string `json:"schemeCategory"`
	FundHouse      string `json:"fundHouse"`
	ISINGrowth     string `json:"isinGrowth"`
	ISINDividend   string `json:"isinDividend"`
}

// Scheme is a normalised scheme detail: metadata plus its raw NAV history in
// provider order. Rows that could not be parsed are already dropped.
type Scheme struct {
	Metadata Metadata
	History  []analytics.NavPoint
}

// providerDateLayouts are tried in order; mfapi.in uses dd-MM-yyyy.
var providerDateLayouts = []string{analytics.DateLayout, "02-01-2006"}

// ParseDate parses a provider date in either yyyy-MM-dd or dd-MM-yyyy form.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range providerDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseNAV parses a provider NAV string. Non-positive values parse successfully;
// deciding whether they are usable is left to the analytics engine.
func ParseNAV(raw string) (float64, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// normalize converts the raw payload into a Scheme.
func (r schemeResponse) normalize(code int) Scheme {
	history := make([]analytics.NavPoint, 0, len(r.Data))
	for _, row := range r.Data {
		date, ok := ParseDate(row.Date)
		if !ok {
			continue
		}
		nav, ok := ParseNAV(row.NAV)
		if !ok {
			continue
		}
		history = append(history, analytics.NavPoint{Date: date, NAV: nav})
	}

	schemeCode := r.Meta.SchemeCode
	if schemeCode == 0 {
		schemeCode = code
	}

	return Scheme{
		Metadata: Metadata{
			SchemeCode:     schemeCode,
			SchemeName:     r.Meta.SchemeName,
			SchemeType:     r.Meta.SchemeType,
			SchemeCategory: r.Meta.SchemeCategory,
			FundHouse:      r.Meta.FundHouse,
			ISINGrowth:     r.Meta.ISINGrowth,
			ISINDividend:   r.Meta.ISINDivReinvestment,
		},
		History: history,
	}
}
