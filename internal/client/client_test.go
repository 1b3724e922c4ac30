package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	. "github.com/wavelabs-io/ruckusone/internal/client"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ruckus.ErrConfigRequired)
	})

	t.Run("requires credentials or token", func(t *testing.T) {
		t.Parallel()

		_, err := New(&ruckus.Config{Region: ruckus.RegionNA})
		require.Error(t, err)
		assert.ErrorIs(t, err, ruckus.ErrCredentialsRequired)
	})

	t.Run("creates client with access token", func(t *testing.T) {
		t.Parallel()

		client, err := New(&ruckus.Config{AccessToken: "static-token"})
		require.NoError(t, err)

		token, err := client.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "static-token", token)
	})

	t.Run("creates client with client credentials", func(t *testing.T) {
		t.Parallel()

		client, err := New(&ruckus.Config{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			TenantID:     "tenant-id",
		})
		require.NoError(t, err)
		assert.NotNil(t, client.Venues())
		assert.NotNil(t, client.AccessPoints())
		assert.NotNil(t, client.Switches())
		assert.NotNil(t, client.WLANs())
		assert.NotNil(t, client.VLANs())
		assert.NotNil(t, client.DPSK())
		assert.NotNil(t, client.Identities())
		assert.NotNil(t, client.IdentityGroups())
	})
}

func TestNew_RegionResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		region   string
		expected string
	}{
		{
			name:     "default region",
			region:   "",
			expected: "https://api.ruckus.cloud",
		},
		{
			name:     "europe",
			region:   "eu",
			expected: "https://api.eu.ruckus.cloud",
		},
		{
			name:     "asia",
			region:   "asia",
			expected: "https://api.asia.ruckus.cloud",
		},
		{
			name:     "unknown region falls back to na",
			region:   "xx",
			expected: "https://api.ruckus.cloud",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			client, err := New(&ruckus.Config{
				AccessToken: "token",
				Region:      testCase.region,
			})
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, client.BaseURL())
		})
	}
}

func TestNewWithTokenManager_ConfigInterceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "injected", r.Header.Get("X-Tenant-Context"))
		_ = json.NewEncoder(w).Encode(ruckus.QueryResult[ruckus.Venue]{TotalCount: 0})
	}))
	defer server.Close()

	collector := ruckus.NewMetricsCollector()
	chain := ruckus.NewInterceptorChain()
	chain.AddRequestInterceptor(ruckus.HeaderInterceptor(map[string]string{"X-Tenant-Context": "injected"}))
	chain.AddRequestInterceptor(ruckus.MetricsRequestInterceptor(collector))
	chain.AddResponseInterceptor(ruckus.MetricsResponseInterceptor(collector))

	client := NewWithTokenManager(&ruckus.Config{Interceptors: chain}, server.URL, nil)

	_, err := client.Venues().Query(context.Background(), nil)
	require.NoError(t, err)

	metrics := collector.GetMetrics("POST /venues/query")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(1), metrics.TotalRequests)
}

func TestNewTestClient_ServesRequests(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(ruckus.QueryResult[ruckus.Venue]{
			Data:       []ruckus.Venue{{ID: "venue-1", Name: "HQ"}},
			TotalCount: 1,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result, err := client.Venues().Query(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total())
	assert.Equal(t, "HQ", result.Data[0].Name)
}
