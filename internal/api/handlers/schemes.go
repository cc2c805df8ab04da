package handlers

import (
	"net/http"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/api/request"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/api/response"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/apperrors"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/service"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/validation"
)

// SchemeHandler handles HTTP requests for the scheme catalogue and scheme details.
// It serves as the HTTP layer adapter, parsing requests and delegating
// lookups to the schemeService.
type SchemeHandler struct {
	schemeService *service.SchemeService
}

// NewSchemeHandler creates a new SchemeHandler with the provided service dependency.
func NewSchemeHandler(schemeService *service.SchemeService) *SchemeHandler {
	return &SchemeHandler{
		schemeService: schemeService,
	}
}

// ListSchemes handles GET requests to search the scheme catalogue.
// Matches are case-insensitive on the scheme name, or exact on the scheme code.
//
// Endpoint: GET /api/mf?q={query}&page={page}&pageSize={pageSize}
// Response: 200 OK with SchemeListingPage
// Error: 400 Bad Request if page or pageSize are invalid
// Error: 502 Bad Gateway if the NAV data provider is unavailable
func (h *SchemeHandler) ListSchemes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params, err := validation.ValidateListSchemesQuery(request.ListSchemesQuery{
		Query:    q.Get("q"),
		Page:     q.Get("page"),
		PageSize: q.Get("pageSize"),
	})
	if err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	page, err := h.schemeService.ListSchemes(r.Context(), params.Query, params.Page, params.PageSize)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveSchemes.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, page)
}

// Scheme handles GET requests to retrieve a scheme's metadata and full NAV history.
//
// Endpoint: GET /api/scheme/{code}
// Response: 200 OK with SchemeDetail
// Error: 400 Bad Request if the code is not a positive integer
// Error: 404 Not Found if the provider has no such scheme
// Error: 502 Bad Gateway if the NAV data provider is unavailable
func (h *SchemeHandler) Scheme(w http.ResponseWriter, r *http.Request) {
	code, err := schemeCode(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid scheme code", err.Error())
		return
	}

	detail, err := h.schemeService.GetSchemeDetail(r.Context(), code)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveScheme.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, detail)
}
