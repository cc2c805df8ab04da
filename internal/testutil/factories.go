package testutil

import (
	"time"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/analytics"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/mfapi"
)

// SchemeBuilder provides a fluent interface for creating provider schemes.
//
// Example usage:
//
//	// Simple creation with defaults: 30 daily NAVs rising from 10 to 12.9
//	scheme := testutil.NewScheme(120465).Build()
//
//	// Customized scheme
//	scheme := testutil.NewScheme(120465).
//	    WithName("Axis Bluechip Fund").
//	    WithDailyNAVs(testutil.Date(2024, 1, 1), 10, 11, 12).
//	    Build()
type SchemeBuilder struct {
	Metadata mfapi.Metadata
	History  []analytics.NavPoint
}

// NewScheme creates a SchemeBuilder with sensible defaults.
func NewScheme(code int) *SchemeBuilder {
	b := &SchemeBuilder{
		Metadata: mfapi.Metadata{
			SchemeCode:     code,
			SchemeName:     MakeSchemeName("Test Fund"),
			SchemeType:     "Open Ended Schemes",
			SchemeCategory: "Equity Scheme - Large Cap Fund",
			FundHouse:      "Test Mutual Fund",
			ISINGrowth:     MakeISIN("INF"),
		},
	}
	return b.WithDailyNAVs(Date(2024, 1, 1), LinearNAVs(30, 10, 12.9)...)
}

// WithName sets a custom scheme name.
func (b *SchemeBuilder) WithName(name string) *SchemeBuilder {
	b.Metadata.SchemeName = name
	return b
}

// WithFundHouse sets a custom fund house.
func (b *SchemeBuilder) WithFundHouse(fundHouse string) *SchemeBuilder {
	b.Metadata.FundHouse = fundHouse
	return b
}

// WithHistory replaces the NAV history.
func (b *SchemeBuilder) WithHistory(points ...analytics.NavPoint) *SchemeBuilder {
	b.History = points
	return b
}

// WithDailyNAVs replaces the NAV history with one point per day starting at start.
// Points are stored newest first, the way the provider returns them.
func (b *SchemeBuilder) WithDailyNAVs(start time.Time, navs ...float64) *SchemeBuilder {
	b.History = make([]analytics.NavPoint, len(navs))
	for i, nav := range navs {
		b.History[len(navs)-1-i] = analytics.NavPoint{Date: start.AddDate(0, 0, i), NAV: nav}
	}
	return b
}

// WithoutHistory clears the NAV history.
func (b *SchemeBuilder) WithoutHistory() *SchemeBuilder {
	b.History = nil
	return b
}

// Build returns the scheme.
func (b *SchemeBuilder) Build() mfapi.Scheme {
	history := make([]analytics.NavPoint, len(b.History))
	copy(history, b.History)
	return mfapi.Scheme{Metadata: b.Metadata, History: history}
}
