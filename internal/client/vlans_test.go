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

func TestVLANsClient_Pools(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/vlanPools/query" && r.Method == "POST":
			_ = json.NewEncoder(w).Encode(ruckus.QueryResult[ruckus.VLANPool]{
				Data: []ruckus.VLANPool{{
					ID:    "pool-1",
					Name:  "guest-vlans",
					VLANs: []ruckus.VLANPoolVLAN{{VLANID: 100}, {VLANID: 101}},
				}},
				TotalCount: 1,
			})
		case r.URL.Path == "/vlanPools" && r.Method == "POST":
			var pool ruckus.VLANPool

			err := json.NewDecoder(r.Body).Decode(&pool)
			require.NoError(t, err)
			assert.Equal(t, "guest-vlans", pool.Name)
			require.Len(t, pool.VLANs, 2)

			w.WriteHeader(http.StatusCreated)
			pool.ID = "pool-1"
			_ = json.NewEncoder(w).Encode(pool)
		case r.URL.Path == "/vlanPools/pool-1" && r.Method == "DELETE":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	ctx := context.Background()

	result, err := client.VLANs().QueryPools(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total())
	assert.Len(t, result.Data[0].VLANs, 2)

	created, err := client.VLANs().CreatePool(ctx, &ruckus.VLANPool{
		Name:  "guest-vlans",
		VLANs: []ruckus.VLANPoolVLAN{{VLANID: 100}, {VLANID: 101}},
	})
	require.NoError(t, err)
	assert.Equal(t, "pool-1", created.ID)

	err = client.VLANs().DeletePool(ctx, "pool-1")
	require.NoError(t, err)
}

func TestVLANsClient_CreatePool_RequiresName(t *testing.T) {
	t.Parallel()

	client := NewTestClient("http://example.com")

	_, err := client.VLANs().CreatePool(context.Background(), &ruckus.VLANPool{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ruckus.ErrPoolNameRequired)
}

func TestVLANsClient_GetPool_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.VLANs().GetPool(context.Background(), "missing")
	require.Error(t, err)

	notFound := &ruckus.NotFoundError{}
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "VLAN pool", notFound.Resource)
}

func TestVLANsClient_ManagementVLAN(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/venues/venue-1/apManagementTrafficVlanSettings", r.URL.Path)

		switch r.Method {
		case "GET":
			_ = json.NewEncoder(w).Encode(ruckus.ManagementVLANSettings{VLANID: 10, Enabled: true})
		case "PUT":
			var settings ruckus.ManagementVLANSettings

			err := json.NewDecoder(r.Body).Decode(&settings)
			require.NoError(t, err)
			assert.Equal(t, 20, settings.VLANID)

			_ = json.NewEncoder(w).Encode(settings)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	ctx := context.Background()

	settings, err := client.VLANs().GetManagementVLAN(ctx, "venue-1")
	require.NoError(t, err)
	assert.Equal(t, 10, settings.VLANID)
	assert.True(t, settings.Enabled)

	updated, err := client.VLANs().UpdateManagementVLAN(ctx, "venue-1",
		&ruckus.ManagementVLANSettings{VLANID: 20, Enabled: true})
	require.NoError(t, err)
	assert.Equal(t, 20, updated.VLANID)
}
