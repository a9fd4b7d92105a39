// ABOUTME: Query parameter helpers for list endpoints
// ABOUTME: Search and pagination parameters shared by resource listings

package api

import (
	"net/url"
	"strconv"
)

// ListParams are the common search and pagination parameters for list
// endpoints. Zero values are omitted from the query string.
type ListParams struct {
	Search   string
	Category string // products only
	Page     int
	Limit    int
}

func (p ListParams) query() string {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
