package validation

import (
	"strconv"
	"strings"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/api/request"
)

// ListSchemesParams are validated catalogue search parameters. Zero values
// leave the choice to the service defaults.
type ListSchemesParams struct {
	Query    string
	Page     int
	PageSize int
}

// ValidateListSchemesQuery validates catalogue search parameters.
func ValidateListSchemesQuery(q request.ListSchemesQuery) (ListSchemesParams, error) {
	errors := make(map[string]string)

	page := optionalPositiveInt(errors, "page", q.Page)
	pageSize := optionalPositiveInt(errors, "pageSize", q.PageSize)
	if len(q.Query) > 100 {
		errors["q"] = "q must be 100 characters or less"
	}

	if err := result(errors); err != nil {
		return ListSchemesParams{}, err
	}
	return ListSchemesParams{Query: strings.TrimSpace(q.Query), Page: page, PageSize: pageSize}, nil
}

func optionalPositiveInt(errors map[string]string, field, raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		errors[field] = field + " must be a positive integer"
		return 0
	}
	return n
}
