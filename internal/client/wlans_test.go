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

func TestWLANsClient_CRUD(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/wifiNetworks/query" && r.Method == "POST":
			_ = json.NewEncoder(w).Encode(ruckus.QueryResult[ruckus.WLAN]{
				Data:       []ruckus.WLAN{{ID: "wlan-1", Name: "corp", SSID: "corp-wifi"}},
				TotalCount: 1,
			})
		case r.URL.Path == "/wifiNetworks" && r.Method == "POST":
			var req ruckus.WLANCreateRequest

			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "guest", req.Name)
			assert.Equal(t, "WPA2", req.SecurityProtocol)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(ruckus.WLAN{ID: "wlan-2", Name: req.Name, SSID: req.SSID})
		case r.URL.Path == "/wifiNetworks/wlan-1" && r.Method == "PUT":
			var updates map[string]interface{}

			err := json.NewDecoder(r.Body).Decode(&updates)
			require.NoError(t, err)
			assert.Equal(t, float64(42), updates["vlan"])

			_ = json.NewEncoder(w).Encode(ruckus.WLAN{ID: "wlan-1", Name: "corp", VLAN: 42})
		case r.URL.Path == "/wifiNetworks/wlan-1" && r.Method == "DELETE":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	ctx := context.Background()

	result, err := client.WLANs().Query(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "corp-wifi", result.Data[0].SSID)

	created, err := client.WLANs().Create(ctx, &ruckus.WLANCreateRequest{
		Name:             "guest",
		SSID:             "guest-wifi",
		SecurityProtocol: "WPA2",
		Passphrase:       "changeme123",
	})
	require.NoError(t, err)
	assert.Equal(t, "wlan-2", created.ID)

	updated, err := client.WLANs().Update(ctx, "wlan-1", map[string]interface{}{"vlan": 42})
	require.NoError(t, err)
	assert.Equal(t, 42, updated.VLAN)

	err = client.WLANs().Delete(ctx, "wlan-1")
	require.NoError(t, err)
}

func TestWLANsClient_Create_RequiresName(t *testing.T) {
	t.Parallel()

	client := NewTestClient("http://example.com")

	_, err := client.WLANs().Create(context.Background(), &ruckus.WLANCreateRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ruckus.ErrWLANNameRequired)
}

func TestWLANsClient_Activation(t *testing.T) {
	t.Parallel()
	t.Run("activate on all AP groups", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/venues/venue-1/networks", r.URL.Path)
			assert.Equal(t, "POST", r.Method)

			var body map[string]interface{}

			err := json.NewDecoder(r.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "wlan-1", body["networkId"])
			assert.Equal(t, true, body["isAllApGroups"])

			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		err := client.WLANs().Activate(context.Background(), "venue-1", "wlan-1", "")
		require.NoError(t, err)
	})

	t.Run("activate on a specific AP group", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]interface{}

			err := json.NewDecoder(r.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "group-1", body["apGroupId"])
			assert.Equal(t, false, body["isAllApGroups"])

			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		err := client.WLANs().Activate(context.Background(), "venue-1", "wlan-1", "group-1")
		require.NoError(t, err)
	})

	t.Run("deactivate", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/venues/venue-1/networks/wlan-1", r.URL.Path)
			assert.Equal(t, "DELETE", r.Method)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		err := client.WLANs().Deactivate(context.Background(), "venue-1", "wlan-1")
		require.NoError(t, err)
	})
}
