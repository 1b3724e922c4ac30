package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryFromFlags(t *testing.T) {
	cmd := &cobra.Command{}
	addQueryFlags(cmd)

	require.NoError(t, cmd.Flags().Set("page", "2"))
	require.NoError(t, cmd.Flags().Set("page-size", "25"))
	require.NoError(t, cmd.Flags().Set("search", "lobby"))
	require.NoError(t, cmd.Flags().Set("sort-field", "name"))
	require.NoError(t, cmd.Flags().Set("sort-order", "desc"))

	query := queryFromFlags(cmd)

	assert.Equal(t, 2, query.Page)
	assert.Equal(t, 25, query.PageSize)
	assert.Equal(t, "lobby", query.SearchString)
	assert.Equal(t, "name", query.SortField)
	assert.Equal(t, "DESC", query.SortOrder)
}

func TestQueryFromFlags_Defaults(t *testing.T) {
	cmd := &cobra.Command{}
	addQueryFlags(cmd)

	query := queryFromFlags(cmd)

	assert.Equal(t, 100, query.PageSize)
	assert.Empty(t, query.SearchString)
}

func TestTruncateToken(t *testing.T) {
	assert.Equal(t, "short", truncateToken("short"))
	assert.Equal(t, "abcdefghijkl...", truncateToken("abcdefghijklmnopqrstuvwxyz"))
}

func TestIsPersistedKey(t *testing.T) {
	assert.True(t, isPersistedKey("region"))
	assert.True(t, isPersistedKey("client_secret"))
	assert.False(t, isPersistedKey("verbose"))
}
