package mfapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/apperrors"
)

const schemeBody = `{
  "meta": {
    "fund_house": "Axis Mutual Fund",
    "scheme_type": "Open Ended Schemes",
    "scheme_category": "Equity Scheme - Large Cap Fund",
    "scheme_code": 120465,
    "scheme_name": "Axis Bluechip Fund - Direct Plan - Growth",
    "isin_growth": "INF846K01DP8",
    "isin_div_reinvestment": null
  },
  "data": [
    {"date": "03-01-2024", "nav": "52.12340"},
    {"date": "02-01-2024", "nav": "51.90000"},
    {"date": "2024-01-01", "nav": "51.5"},
    {"date": "not-a-date", "nav": "50"},
    {"date": "29-12-2023", "nav": "N.A."},
    {"date": "28-12-2023", "nav": "0.00000"}
  ],
  "status": "SUCCESS"
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) (*APIClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(WithBaseURL(srv.URL), WithRateLimit(0), WithTimeout(2*time.Second)), srv
}

func TestAPIClient_GetScheme(t *testing.T) {
	t.Run("normalises metadata and history", func(t *testing.T) {
		client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/mf/120465", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(schemeBody))
		})

		scheme, err := client.GetScheme(context.Background(), 120465)
		require.NoError(t, err)

		assert.Equal(t, 120465, scheme.Metadata.SchemeCode)
		assert.Equal(t, "Axis Bluechip Fund - Direct Plan - Growth", scheme.Metadata.SchemeName)
		assert.Equal(t, "Axis Mutual Fund", scheme.Metadata.FundHouse)
		assert.Equal(t, "Equity Scheme - Large Cap Fund", scheme.Metadata.SchemeCategory)
		assert.Equal(t, "INF846K01DP8", scheme.Metadata.ISINGrowth)
		assert.Empty(t, scheme.Metadata.ISINDividend)

		require.Len(t, scheme.History, 4)
		assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), scheme.History[0].Date)
		assert.Equal(t, 52.1234, scheme.History[0].NAV)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), scheme.History[2].Date)
		assert.Equal(t, 0.0, scheme.History[3].NAV)
	})

	t.Run("empty meta is not found", func(t *testing.T) {
		client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"meta":{},"data":[],"status":"SUCCESS"}`))
		})

		_, err := client.GetScheme(context.Background(), 1)
		assert.ErrorIs(t, err, apperrors.ErrSchemeNotFound)
	})

	t.Run("404 is not found", func(t *testing.T) {
		client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})

		_, err := client.GetScheme(context.Background(), 1)
		assert.ErrorIs(t, err, apperrors.ErrSchemeNotFound)
	})

	t.Run("server error is an upstream failure", func(t *testing.T) {
		client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("bad gateway"))
		})

		_, err := client.GetScheme(context.Background(), 1)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Equal(t, "/mf/1", apiErr.Endpoint)
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	})

	t.Run("malformed payload", func(t *testing.T) {
		client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"meta":`))
		})

		_, err := client.GetScheme(context.Background(), 1)
		assert.ErrorIs(t, err, apperrors.ErrFailedToParseProviderPayload)
	})

	t.Run("cancelled context", func(t *testing.T) {
		var calls atomic.Int32
		client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(schemeBody))
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.GetScheme(ctx, 120465)
		assert.Error(t, err)
	})
}

func TestAPIClient_ListSchemes(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mf", r.URL.Path)
		_, _ = w.Write([]byte(`[{"schemeCode":100027,"schemeName":"Grindlays Super Saver Income Fund"},{"schemeCode":120465,"schemeName":"Axis Bluechip Fund"}]`))
	})

	listings, err := client.ListSchemes(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, 100027, listings[0].SchemeCode)
	assert.Equal(t, "Axis Bluechip Fund", listings[1].SchemeName)
}

func TestParseHelpers(t *testing.T) {
	t.Run("dates", func(t *testing.T) {
		want := time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC)

		d, ok := ParseDate("02-12-2024")
		require.True(t, ok)
		assert.Equal(t, want, d)

		d, ok = ParseDate(" 2024-12-02 ")
		require.True(t, ok)
		assert.Equal(t, want, d)

		_, ok = ParseDate("2024/12/02")
		assert.False(t, ok)
	})

	t.Run("navs", func(t *testing.T) {
		v, ok := ParseNAV("10.12345")
		require.True(t, ok)
		assert.Equal(t, 10.12345, v)

		v, ok = ParseNAV("-1")
		require.True(t, ok)
		assert.Equal(t, -1.0, v)

		_, ok = ParseNAV("N.A.")
		assert.False(t, ok)
		_, ok = ParseNAV("")
		assert.False(t, ok)
	})
}
