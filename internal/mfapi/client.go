// Package mfapi is a client for the public mutual fund NAV API at api.mfapi.in.
package mfapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/apperrors"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/logger"
)

const (
	DefaultBaseURL   = "https://api.mfapi.in"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// Client is the capability the services need from the upstream provider.
type Client interface {
	ListSchemes(ctx context.Context) ([]SchemeListing, error)
	GetScheme(ctx context.Context, code int) (Scheme, error)
}

// APIClient fetches scheme data from mfapi.in over HTTP.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client.
type ClientOption func(*APIClient)

// WithBaseURL sets the base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *APIClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) ClientOption {
	return func(c *APIClient) {
		c.logger = l
	}
}

// WithRateLimit sets the outbound request rate. Non-positive values disable limiting.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *APIClient) {
		if requestsPerSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *APIClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *APIClient) {
		c.httpClient = hc
	}
}

// NewClient creates a new mfapi client.
func NewClient(opts ...ClientOption) *APIClient {
	c := &APIClient{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  logger.NewSilent(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError is a non-2xx answer from the provider.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mfapi error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// Unwrap lets callers match provider failures with apperrors.ErrUpstreamUnavailable.
func (e *APIError) Unwrap() error {
	return apperrors.ErrUpstreamUnavailable
}

// ListSchemes returns the full scheme catalogue.
func (c *APIClient) ListSchemes(ctx context.Context) ([]SchemeListing, error) {
	var listings []SchemeListing
	if err := c.get(ctx, "/mf", &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// GetScheme returns the metadata and NAV history of one scheme.
//
// Returns apperrors.ErrSchemeNotFound when the provider answers 404 or returns
// an empty metadata block. History rows with an unparseable date or NAV are dropped.
func (c *APIClient) GetScheme(ctx context.Context, code int) (Scheme, error) {
	var raw schemeResponse
	err := c.get(ctx, "/mf/"+strconv.Itoa(code), &raw)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return Scheme{}, fmt.Errorf("%w: %d", apperrors.ErrSchemeNotFound, code)
	}
	if err != nil {
		return Scheme{}, err
	}

	if strings.TrimSpace(raw.Meta.SchemeName) == "" {
		return Scheme{}, fmt.Errorf("%w: %d", apperrors.ErrSchemeNotFound, code)
	}

	scheme := raw.normalize(code)
	if dropped := len(raw.Data) - len(scheme.History); dropped > 0 {
		c.logger.Debug().Int("scheme", code).Int("dropped", dropped).Msg("Dropped unparseable NAV rows")
	}

	return scheme, nil
}

// get performs a rate-limited GET request and decodes the JSON body into result.
func (c *APIClient) get(ctx context.Context, path string, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", c.baseURL+path).Msg("mfapi request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrFailedToParseProviderPayload, err)
	}

	return nil
}
