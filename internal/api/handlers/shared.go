package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/analytics"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/api/middleware"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/api/response"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/apperrors"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/validation"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// parseJSON decodes the request body into T, rejecting unknown fields and trailing data.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("decode body: %w", err)
	}
	if dec.More() {
		return req, errors.New("decode body: unexpected data after JSON object")
	}
	return req, nil
}

// schemeCode returns the scheme code validated by ValidateSchemeCodeMiddleware,
// falling back to parsing the URL parameter when the middleware did not run.
func schemeCode(r *http.Request) (int, error) {
	if code, ok := middleware.SchemeCode(r.Context()); ok {
		return code, nil
	}
	return validation.ValidateSchemeCode(chi.URLParam(r, "code"))
}

// respondServiceError maps a service error onto an HTTP status.
// message is used for failures that do not carry a more specific status.
func respondServiceError(w http.ResponseWriter, err error, message string) {
	var review *analytics.NeedsReview
	var verr *validation.Error

	switch {
	case errors.As(err, &review):
		response.RespondNeedsReview(w, review.Reason)
	case errors.As(err, &verr):
		response.RespondError(w, http.StatusBadRequest, "validation failed", verr.Fields)
	case errors.Is(err, apperrors.ErrSchemeNotFound):
		response.RespondError(w, http.StatusNotFound, apperrors.ErrSchemeNotFound.Error(), err.Error())
	case errors.Is(err, apperrors.ErrInvalidSchemeCode),
		errors.Is(err, apperrors.ErrInvalidFrequency),
		errors.Is(err, apperrors.ErrInvalidPeriod),
		errors.Is(err, apperrors.ErrInvalidDate),
		errors.Is(err, apperrors.ErrTooManySchemes):
		response.RespondError(w, http.StatusBadRequest, message, err.Error())
	case errors.Is(err, apperrors.ErrUpstreamUnavailable),
		errors.Is(err, apperrors.ErrFailedToParseProviderPayload):
		response.RespondError(w, http.StatusBadGateway, apperrors.ErrUpstreamUnavailable.Error(), err.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, message, err.Error())
	}
}
