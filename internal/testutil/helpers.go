package testutil

import (
	"math/rand"
	"testing"
	"time"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/logger"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/mfapi"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/service"
)

// NewTestSchemeService creates a SchemeService over the given provider with a one hour cache.
func NewTestSchemeService(t *testing.T, client mfapi.Client) *service.SchemeService {
	t.Helper()
	return service.NewSchemeService(client, time.Hour, logger.NewSilent())
}

// NewTestAnalyticsService creates an AnalyticsService over the given provider.
func NewTestAnalyticsService(t *testing.T, client mfapi.Client) *service.AnalyticsService {
	t.Helper()
	return service.NewAnalyticsService(NewTestSchemeService(t, client))
}

// MakeISIN generates a random ISIN-shaped identifier with the given prefix.
func MakeISIN(prefix string) string {
	return prefix + randomAlphanumeric(12-len(prefix))
}

// MakeSchemeName generates a unique scheme name with a random suffix.
func MakeSchemeName(base string) string {
	return base + " " + randomAlphanumeric(6) + " - Direct Plan - Growth"
}

func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
