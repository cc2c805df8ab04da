package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/apperrors"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/mfapi"
)

// MockMFAPIClient is a mock implementation of mfapi.Client for testing.
// It serves predefined schemes instead of making API calls and is safe for
// concurrent use.
type MockMFAPIClient struct {
	mu        sync.Mutex
	schemes   map[int]mfapi.Scheme
	listings  []mfapi.SchemeListing
	mockError error
	calls     int
}

// NewMockMFAPIClient creates a mock with no schemes.
func NewMockMFAPIClient() *MockMFAPIClient {
	return &MockMFAPIClient{
		schemes: make(map[int]mfapi.Scheme),
	}
}

// ListSchemes returns the configured listings, or the configured error.
func (m *MockMFAPIClient) ListSchemes(_ context.Context) ([]mfapi.SchemeListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.mockError != nil {
		return nil, m.mockError
	}
	out := make([]mfapi.SchemeListing, len(m.listings))
	copy(out, m.listings)
	return out, nil
}

// GetScheme returns the configured scheme, the configured error, or
// apperrors.ErrSchemeNotFound for an unknown code.
func (m *MockMFAPIClient) GetScheme(_ context.Context, code int) (mfapi.Scheme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.mockError != nil {
		return mfapi.Scheme{}, m.mockError
	}
	scheme, ok := m.schemes[code]
	if !ok {
		return mfapi.Scheme{}, fmt.Errorf("%w: %d", apperrors.ErrSchemeNotFound, code)
	}
	return scheme, nil
}

// WithScheme registers a scheme and adds it to the listings.
func (m *MockMFAPIClient) WithScheme(scheme mfapi.Scheme) *MockMFAPIClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schemes[scheme.Metadata.SchemeCode] = scheme
	m.listings = append(m.listings, mfapi.SchemeListing{
		SchemeCode: scheme.Metadata.SchemeCode,
		SchemeName: scheme.Metadata.SchemeName,
	})
	return m
}

// WithListings replaces the catalogue listings.
func (m *MockMFAPIClient) WithListings(listings ...mfapi.SchemeListing) *MockMFAPIClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings = listings
	return m
}

// WithError configures the mock to return the specified error.
func (m *MockMFAPIClient) WithError(err error) *MockMFAPIClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mockError = err
	return m
}

// QueryCount reports how many provider calls were made.
func (m *MockMFAPIClient) QueryCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
