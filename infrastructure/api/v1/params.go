package v1

import (
	"net/http"
	"strconv"

	"github.com/ynstf/boston-housing-api/internal/config"
)

// ListParams holds skip/limit parameters parsed from query strings.
type ListParams struct {
	skip  int
	limit int
}

// ParseListParams parses skip and limit from an HTTP request.
// Defaults: skip=0, limit=100. Negative values fall back to the
// defaults; limit=0 is honored and yields an empty page.
func ParseListParams(r *http.Request) ListParams {
	params := ListParams{
		skip:  0,
		limit: config.DefaultListLimit,
	}

	if skipStr := r.URL.Query().Get("skip"); skipStr != "" {
		if skip, err := strconv.Atoi(skipStr); err == nil && skip >= 0 {
			params.skip = skip
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit >= 0 {
			params.limit = limit
		}
	}

	return params
}

// Skip returns the number of records to skip.
func (p ListParams) Skip() int { return p.skip }

// Limit returns the maximum number of records to return.
func (p ListParams) Limit() int { return p.limit }
