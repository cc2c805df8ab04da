// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/api/response"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/validation"
)

type schemeCodeKey struct{}

// ValidateSchemeCodeMiddleware validates that the code URL parameter is a positive
// integer scheme code and stores the parsed code in the request context.
// Returns 400 Bad Request if the code is missing or invalid.
//
// Example usage in router:
//
//	r.Route("/scheme/{code}", func(r chi.Router) {
//	    r.Use(middleware.ValidateSchemeCodeMiddleware)
//	    r.Get("/", handler.Scheme)
//	})
func ValidateSchemeCodeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "code")

		if raw == "" {
			response.RespondError(w, http.StatusBadRequest, "scheme code is required", "")
			return
		}

		code, err := validation.ValidateSchemeCode(raw)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid scheme code", err.Error())
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSchemeCode(r.Context(), code)))
	})
}

// WithSchemeCode returns a copy of ctx carrying a validated scheme code.
func WithSchemeCode(ctx context.Context, code int) context.Context {
	return context.WithValue(ctx, schemeCodeKey{}, code)
}

// SchemeCode returns the scheme code stored by ValidateSchemeCodeMiddleware.
func SchemeCode(ctx context.Context) (int, bool) {
	code, ok := ctx.Value(schemeCodeKey{}).(int)
	return code, ok
}
