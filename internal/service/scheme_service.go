package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/analytics"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/apperrors"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/cache"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/logger"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/mfapi"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/model"
)

const (
	// DefaultPageSize is the scheme catalogue page size used when none is requested.
	DefaultPageSize = 30
	// MaxPageSize caps a single catalogue page.
	MaxPageSize = 200

	catalogueKey = "all"
)

// Scheme is a scheme's metadata with its canonical, immutable NAV series.
// A *Scheme is shared by every request reading it from the cache.
type Scheme struct {
	Metadata mfapi.Metadata
	Series   *analytics.NavSeries
}

// SchemeService resolves scheme metadata and NAV history from the upstream
// provider, caching both for the configured TTL.
type SchemeService struct {
	client    mfapi.Client
	catalogue *cache.TTLCache[string, []mfapi.SchemeListing]
	schemes   *cache.TTLCache[int, *Scheme]
	logger    *logger.Logger
}

// NewSchemeService creates a SchemeService backed by the given provider client.
func NewSchemeService(client mfapi.Client, ttl time.Duration, log *logger.Logger) *SchemeService {
	return &SchemeService{
		client:    client,
		catalogue: cache.New[string, []mfapi.SchemeListing]("catalogue", ttl),
		schemes:   cache.New[int, *Scheme]("schemes", ttl),
		logger:    log,
	}
}

// Caches returns the caches owned by the service, for sweeping and health reporting.
func (s *SchemeService) Caches() []cache.Sweepable {
	return []cache.Sweepable{s.catalogue, s.schemes}
}

// ListSchemes returns one page of the scheme catalogue filtered by query.
//
// A query matches a scheme when its name contains the query (case-insensitive)
// or, for a numeric query, when its code equals the query. An empty query
// matches everything. Results are ordered by scheme name.
//
// Parameters:
//   - query: Search text; surrounding whitespace is ignored
//   - page: 1-based page number; values below 1 are treated as 1
//   - pageSize: Page size; 0 or less means DefaultPageSize, larger than MaxPageSize is clamped
func (s *SchemeService) ListSchemes(ctx context.Context, query string, page, pageSize int) (model.SchemeListingPage, error) {
	listings, err := s.catalogue.GetOrLoad(ctx, catalogueKey, func(ctx context.Context) ([]mfapi.SchemeListing, error) {
		s.logger.Debug().Msg("Scheme catalogue cache miss")
		return s.client.ListSchemes(ctx)
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to load scheme catalogue")
		return model.SchemeListingPage{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveSchemes, err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	matches := filterListings(listings, query)

	start := min((page-1)*pageSize, len(matches))
	end := min(start+pageSize, len(matches))

	return model.SchemeListingPage{
		Schemes:  matches[start:end],
		Total:    len(matches),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func filterListings(listings []mfapi.SchemeListing, query string) []mfapi.SchemeListing {
	q := strings.ToLower(strings.TrimSpace(query))
	code, codeErr := strconv.Atoi(q)

	matches := make([]mfapi.SchemeListing, 0, len(listings))
	for _, l := range listings {
		if q == "" ||
			strings.Contains(strings.ToLower(l.SchemeName), q) ||
			(codeErr == nil && l.SchemeCode == code) {
			matches = append(matches, l)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].SchemeName < matches[j].SchemeName
	})
	return matches
}

// GetScheme returns the scheme's metadata and canonical NAV series.
// Returns apperrors.ErrSchemeNotFound when the provider does not know the code.
func (s *SchemeService) GetScheme(ctx context.Context, code int) (*Scheme, error) {
	scheme, err := s.schemes.GetOrLoad(ctx, code, func(ctx context.Context) (*Scheme, error) {
		s.logger.Debug().Int("scheme", code).Msg("Scheme cache miss")

		raw, err := s.client.GetScheme(ctx, code)
		if err != nil {
			return nil, err
		}
		return &Scheme{
			Metadata: raw.Metadata,
			Series:   analytics.NewNavSeries(raw.History),
		}, nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Int("scheme", code).Msg("Failed to load scheme")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveScheme, err)
	}
	return scheme, nil
}

// GetNavHistory returns the scheme's NAV series, ascending and de-duplicated.
func (s *SchemeService) GetNavHistory(ctx context.Context, code int) (*analytics.NavSeries, error) {
	scheme, err := s.GetScheme(ctx, code)
	if err != nil {
		return nil, err
	}
	return scheme.Series, nil
}

// GetSchemeDetail returns the scheme's metadata and NAV history in wire form.
func (s *SchemeService) GetSchemeDetail(ctx context.Context, code int) (model.SchemeDetail, error) {
	scheme, err := s.GetScheme(ctx, code)
	if err != nil {
		return model.SchemeDetail{}, err
	}
	return model.SchemeDetail{
		Metadata:   scheme.Metadata,
		NavHistory: toNavPoints(scheme.Series.Points()),
	}, nil
}
