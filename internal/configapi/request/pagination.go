package request

import (
	"net/http"
	"strconv"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ListParams holds pagination, search, filter, and sort parameters.
type ListParams struct {
	Limit  int
	Cursor string
	Search string
	Status string
	Sort   string
	Order  string // "asc" or "desc"
}

// ParseListParams extracts list parameters from the query string.
// defaultSort specifies which field to sort by when none is provided.
func ParseListParams(r *http.Request, defaultSort string) ListParams {
	q := r.URL.Query()

	limit := DefaultLimit
	if limitStr := q.Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	order := q.Get("order")
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	sort := q.Get("sort")
	if sort == "" {
		sort = defaultSort
	}

	return ListParams{
		Limit:  limit,
		Cursor: q.Get("cursor"),
		Search: q.Get("search"),
		Status: q.Get("status"),
		Sort:   sort,
		Order:  order,
	}
}
