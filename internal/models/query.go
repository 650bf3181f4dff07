package models

import (
	"net/url"
	"strconv"
)

// AllCategories is the category filter value that disables filtering.
const AllCategories = "all"

// QuerySpec holds the product list filter parameters.
type QuerySpec struct {
	Search    string `json:"search,omitempty"`
	Category  string `json:"category,omitempty"`
	SortBy    string `json:"sortBy,omitempty"`
	SortOrder string `json:"sortOrder,omitempty" binding:"omitempty,oneof=asc desc"`
	Limit     int    `json:"limit,omitempty" binding:"omitempty,gte=0"`
	Offset    int    `json:"offset,omitempty" binding:"omitempty,gte=0"`
}

// Values encodes the filters as query parameters. Empty fields, the "all"
// category and non-positive paging values are left out.
func (q QuerySpec) Values() url.Values {
	values := url.Values{}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Category != "" && q.Category != AllCategories {
		values.Set("category", q.Category)
	}
	if q.SortBy != "" {
		values.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		values.Set("sortOrder", q.SortOrder)
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	return values
}
