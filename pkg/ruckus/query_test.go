package ruckus_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

func TestNewQuery_Defaults(t *testing.T) {
	t.Parallel()

	query := ruckus.NewQuery()

	assert.Equal(t, 0, query.Page)
	assert.Equal(t, 100, query.PageSize)
	assert.Equal(t, ruckus.SortAscending, query.SortOrder)
}

func TestQuery_Builders(t *testing.T) {
	t.Parallel()

	query := ruckus.NewQuery().
		WithPage(3).
		WithPageSize(50).
		WithSort("name", "desc").
		WithSearch("lobby").
		WithFilter("venueId", "venue-1").
		WithFilter("status", "Online", "Offline")

	assert.Equal(t, 3, query.Page)
	assert.Equal(t, 50, query.PageSize)
	assert.Equal(t, "name", query.SortField)
	assert.Equal(t, "DESC", query.SortOrder, "sort order should be uppercased")
	assert.Equal(t, "lobby", query.SearchString)
	assert.Equal(t, []string{"venue-1"}, query.Filters["venueId"])
	assert.Equal(t, []string{"Online", "Offline"}, query.Filters["status"])
}

func TestQuery_WithSort_EmptyOrderKeepsDefault(t *testing.T) {
	t.Parallel()

	query := ruckus.NewQuery().WithSort("name", "")

	assert.Equal(t, "name", query.SortField)
	assert.Equal(t, ruckus.SortAscending, query.SortOrder)
}

func TestQuery_WithFilter_Appends(t *testing.T) {
	t.Parallel()

	query := ruckus.NewQuery().
		WithFilter("status", "Online").
		WithFilter("status", "Offline")

	assert.Equal(t, []string{"Online", "Offline"}, query.Filters["status"])
}

func TestQuery_JSONShape(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(ruckus.NewQuery().WithPage(2).WithSearch("cafe"))
	require.NoError(t, err)

	var decoded map[string]interface{}

	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(2), decoded["page"])
	assert.Equal(t, float64(100), decoded["pageSize"])
	assert.Equal(t, "cafe", decoded["searchString"])
	assert.NotContains(t, decoded, "filters", "empty filters should be omitted")
}

func TestQueryResult_Total(t *testing.T) {
	t.Parallel()

	count := ruckus.QueryResult[ruckus.Venue]{TotalCount: 7}
	assert.Equal(t, 7, count.Total())

	items := ruckus.QueryResult[ruckus.Venue]{TotalItems: 3}
	assert.Equal(t, 3, items.Total())

	both := ruckus.QueryResult[ruckus.Venue]{TotalCount: 7, TotalItems: 3}
	assert.Equal(t, 7, both.Total(), "totalCount wins when both are present")
}
