package ruckus

import "strings"

// Sort orders accepted by the query endpoints. The API requires uppercase.
const (
	SortAscending  = "ASC"
	SortDescending = "DESC"
)

// Query is the request body for the POST {resource}/query list endpoints.
type Query struct {
	Page               int                 `json:"page,omitempty"`
	PageSize           int                 `json:"pageSize,omitempty"`
	SortField          string              `json:"sortField,omitempty"`
	SortOrder          string              `json:"sortOrder,omitempty"`
	SearchString       string              `json:"searchString,omitempty"`
	SearchTargetFields []string            `json:"searchTargetFields,omitempty"`
	Fields             []string            `json:"fields,omitempty"`
	Filters            map[string][]string `json:"filters,omitempty"`
}

// NewQuery creates a query with the API defaults: first page, 100 results,
// ascending order.
func NewQuery() *Query {
	return &Query{
		Page:      0,
		PageSize:  100,
		SortOrder: SortAscending,
	}
}

// WithPage sets the page number.
func (q *Query) WithPage(page int) *Query {
	q.Page = page

	return q
}

// WithPageSize sets the page size.
func (q *Query) WithPageSize(size int) *Query {
	q.PageSize = size

	return q
}

// WithSort sets the sort field and order. The order is normalized to
// uppercase since the API rejects lowercase values.
func (q *Query) WithSort(field, order string) *Query {
	q.SortField = field
	if order != "" {
		q.SortOrder = strings.ToUpper(order)
	}

	return q
}

// WithSearch sets the search string.
func (q *Query) WithSearch(search string) *Query {
	q.SearchString = search

	return q
}

// WithFilter appends values to a named filter.
func (q *Query) WithFilter(key string, values ...string) *Query {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}
