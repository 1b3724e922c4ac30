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

func TestSwitchesClient_Query(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/venues/switches/query", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		_ = json.NewEncoder(w).Encode(ruckus.QueryResult[ruckus.Switch]{
			Data:       []ruckus.Switch{{ID: "sw-1", Name: "core-1", Model: "ICX7150"}},
			TotalCount: 1,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result, err := client.Switches().Query(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total())
	assert.Equal(t, "ICX7150", result.Data[0].Model)
}

func TestSwitchesClient_GetAndReboot(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/venues/venue-1/switches/sw-1" && r.Method == "GET":
			_ = json.NewEncoder(w).Encode(ruckus.Switch{ID: "sw-1", Name: "core-1", Status: "Online"})
		case r.URL.Path == "/venues/venue-1/switches/sw-1/reboot" && r.Method == "POST":
			w.WriteHeader(http.StatusAccepted)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	ctx := context.Background()

	sw, err := client.Switches().Get(ctx, "venue-1", "sw-1")
	require.NoError(t, err)
	assert.Equal(t, "Online", sw.Status)

	err = client.Switches().Reboot(ctx, "venue-1", "sw-1")
	require.NoError(t, err)
}

func TestSwitchesClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Switches().Get(context.Background(), "venue-1", "missing")
	require.Error(t, err)
	assert.True(t, ruckus.IsNotFound(err))

	notFound := &ruckus.NotFoundError{}
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "switch", notFound.Resource)
	assert.Equal(t, "missing", notFound.ID)
}

func TestSwitchesClient_VLANLifecycle(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/venues/venue-1/switches/sw-1/vlans" && r.Method == "GET":
			_ = json.NewEncoder(w).Encode([]ruckus.SwitchVLAN{{VLANID: 10, Name: "mgmt"}})
		case r.URL.Path == "/venues/venue-1/switches/sw-1/vlans" && r.Method == "POST":
			var vlan ruckus.SwitchVLAN

			err := json.NewDecoder(r.Body).Decode(&vlan)
			require.NoError(t, err)
			assert.Equal(t, 20, vlan.VLANID)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(vlan)
		case r.URL.Path == "/venues/venue-1/switches/sw-1/vlans/20" && r.Method == "DELETE":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	ctx := context.Background()

	vlans, err := client.Switches().GetVLANs(ctx, "venue-1", "sw-1")
	require.NoError(t, err)
	require.Len(t, vlans, 1)
	assert.Equal(t, "mgmt", vlans[0].Name)

	created, err := client.Switches().CreateVLAN(ctx, "venue-1", "sw-1",
		&ruckus.SwitchVLAN{VLANID: 20, Name: "guest"})
	require.NoError(t, err)
	assert.Equal(t, 20, created.VLANID)

	err = client.Switches().DeleteVLAN(ctx, "venue-1", "sw-1", "20")
	require.NoError(t, err)
}

func TestSwitchesClient_UpdatePort(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/venues/venue-1/switches/sw-1/switchPorts/port-5", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var updates map[string]interface{}

		err := json.NewDecoder(r.Body).Decode(&updates)
		require.NoError(t, err)
		assert.Equal(t, float64(30), updates["untaggedVlan"])

		_ = json.NewEncoder(w).Encode(ruckus.SwitchPort{PortID: "port-5", UntaggedVLAN: 30})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	port, err := client.Switches().UpdatePort(context.Background(), "venue-1", "sw-1", "port-5",
		map[string]interface{}{"untaggedVlan": 30})
	require.NoError(t, err)
	assert.Equal(t, 30, port.UntaggedVLAN)
}
