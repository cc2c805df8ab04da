package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/apperrors"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/mfapi"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/service"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/testutil"
)

// TestSchemeService_ListSchemes tests catalogue search and paging.
//
// WHY: The catalogue holds tens of thousands of schemes. Search must match names
// case-insensitively and codes exactly, and paging must never slice out of range.
func TestSchemeService_ListSchemes(t *testing.T) {
	listings := []mfapi.SchemeListing{
		{SchemeCode: 120465, SchemeName: "Axis Bluechip Fund - Direct Plan - Growth"},
		{SchemeCode: 118989, SchemeName: "HDFC Mid-Cap Opportunities Fund - Direct Plan"},
		{SchemeCode: 119551, SchemeName: "Aditya Birla Sun Life Banking & PSU Debt Fund"},
		{SchemeCode: 120503, SchemeName: "Axis ELSS Tax Saver Fund - Direct Plan"},
	}

	t.Run("empty query returns everything ordered by name", func(t *testing.T) {
		// Setup
		svc := testutil.NewTestSchemeService(t, testutil.NewMockMFAPIClient().WithListings(listings...))

		// Execute
		page, err := svc.ListSchemes(context.Background(), "", 0, 0)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 4, page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, service.DefaultPageSize, page.PageSize)
		require.Len(t, page.Schemes, 4)
		assert.Equal(t, 119551, page.Schemes[0].SchemeCode)
	})

	t.Run("matches names case-insensitively", func(t *testing.T) {
		svc := testutil.NewTestSchemeService(t, testutil.NewMockMFAPIClient().WithListings(listings...))

		page, err := svc.ListSchemes(context.Background(), "  axis ", 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 2, page.Total)
	})

	t.Run("numeric query matches the exact code", func(t *testing.T) {
		svc := testutil.NewTestSchemeService(t, testutil.NewMockMFAPIClient().WithListings(listings...))

		page, err := svc.ListSchemes(context.Background(), "118989", 1, 10)

		require.NoError(t, err)
		require.Len(t, page.Schemes, 1)
		assert.Equal(t, "HDFC Mid-Cap Opportunities Fund - Direct Plan", page.Schemes[0].SchemeName)
	})

	t.Run("pages through results and clamps the size", func(t *testing.T) {
		svc := testutil.NewTestSchemeService(t, testutil.NewMockMFAPIClient().WithListings(listings...))

		page, err := svc.ListSchemes(context.Background(), "", 2, 3)
		require.NoError(t, err)
		assert.Len(t, page.Schemes, 1)

		page, err = svc.ListSchemes(context.Background(), "", 5, 3)
		require.NoError(t, err)
		assert.Empty(t, page.Schemes)
		assert.NotNil(t, page.Schemes)

		page, err = svc.ListSchemes(context.Background(), "", 1, 10_000)
		require.NoError(t, err)
		assert.Equal(t, service.MaxPageSize, page.PageSize)
	})

	t.Run("caches the catalogue", func(t *testing.T) {
		mock := testutil.NewMockMFAPIClient().WithListings(listings...)
		svc := testutil.NewTestSchemeService(t, mock)

		_, err := svc.ListSchemes(context.Background(), "axis", 1, 10)
		require.NoError(t, err)
		_, err = svc.ListSchemes(context.Background(), "hdfc", 1, 10)
		require.NoError(t, err)

		assert.Equal(t, 1, mock.QueryCount())
	})

	t.Run("wraps provider failures", func(t *testing.T) {
		svc := testutil.NewTestSchemeService(t, testutil.NewMockMFAPIClient().WithError(apperrors.ErrUpstreamUnavailable))

		_, err := svc.ListSchemes(context.Background(), "", 1, 10)

		assert.ErrorIs(t, err, apperrors.ErrFailedToRetrieveSchemes)
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	})
}

// TestSchemeService_GetScheme tests scheme loading and caching.
//
// WHY: Every analytics endpoint goes through GetScheme. The provider returns
// history newest first; the series handed to the engine must be canonical and
// the provider must be hit once per TTL, not once per request.
func TestSchemeService_GetScheme(t *testing.T) {
	t.Run("builds a canonical ascending series", func(t *testing.T) {
		mock := testutil.NewMockMFAPIClient().WithScheme(
			testutil.NewScheme(120465).WithDailyNAVs(testutil.Date(2024, 1, 1), 10, 11, 12).Build(),
		)
		svc := testutil.NewTestSchemeService(t, mock)

		scheme, err := svc.GetScheme(context.Background(), 120465)

		require.NoError(t, err)
		points := scheme.Series.Points()
		require.Len(t, points, 3)
		assert.Equal(t, testutil.Date(2024, 1, 1), points[0].Date)
		assert.Equal(t, 12.0, points[2].NAV)
	})

	t.Run("caches schemes per code", func(t *testing.T) {
		mock := testutil.NewMockMFAPIClient().
			WithScheme(testutil.NewScheme(1).Build()).
			WithScheme(testutil.NewScheme(2).Build())
		svc := testutil.NewTestSchemeService(t, mock)

		for range 3 {
			_, err := svc.GetNavHistory(context.Background(), 1)
			require.NoError(t, err)
		}
		_, err := svc.GetNavHistory(context.Background(), 2)
		require.NoError(t, err)

		assert.Equal(t, 2, mock.QueryCount())
	})

	t.Run("unknown code is not found", func(t *testing.T) {
		svc := testutil.NewTestSchemeService(t, testutil.NewMockMFAPIClient())

		_, err := svc.GetScheme(context.Background(), 999)

		assert.ErrorIs(t, err, apperrors.ErrSchemeNotFound)
		assert.ErrorIs(t, err, apperrors.ErrFailedToRetrieveScheme)
	})

	t.Run("failures are not cached", func(t *testing.T) {
		mock := testutil.NewMockMFAPIClient().WithError(errors.New("timeout"))
		svc := testutil.NewTestSchemeService(t, mock)

		_, err := svc.GetScheme(context.Background(), 1)
		require.Error(t, err)

		mock.WithError(nil).WithScheme(testutil.NewScheme(1).Build())
		_, err = svc.GetScheme(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 2, mock.QueryCount())
	})

	t.Run("detail formats dates", func(t *testing.T) {
		mock := testutil.NewMockMFAPIClient().WithScheme(
			testutil.NewScheme(7).WithName("Seven").WithDailyNAVs(testutil.Date(2024, 2, 28), 10, 10.5).Build(),
		)
		svc := testutil.NewTestSchemeService(t, mock)

		detail, err := svc.GetSchemeDetail(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, "Seven", detail.Metadata.SchemeName)
		require.Len(t, detail.NavHistory, 2)
		assert.Equal(t, "2024-02-28", detail.NavHistory[0].Date)
		assert.Equal(t, "2024-02-29", detail.NavHistory[1].Date)
	})

	t.Run("exposes its caches", func(t *testing.T) {
		svc := testutil.NewTestSchemeService(t, testutil.NewMockMFAPIClient())
		assert.Len(t, svc.Caches(), 2)
	})
}
