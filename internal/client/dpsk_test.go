package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	. "github.com/wavelabs-io/ruckusone/internal/client"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

func TestDPSKClient_Services(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/dpskServices/query" && r.Method == "POST":
			_ = json.NewEncoder(w).Encode(ruckus.QueryResult[ruckus.DPSKService]{
				Data:       []ruckus.DPSKService{{ID: "svc-1", Name: "guest-dpsk"}},
				TotalItems: 1,
			})
		case r.URL.Path == "/dpskServices" && r.Method == "POST":
			var req ruckus.DPSKServiceCreateRequest

			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "guest-dpsk", req.Name)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(ruckus.DPSKService{ID: "svc-1", Name: req.Name})
		case r.URL.Path == "/dpskServices/svc-1" && r.Method == "DELETE":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	ctx := context.Background()

	result, err := client.DPSK().QueryServices(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total())
	assert.Equal(t, "guest-dpsk", result.Data[0].Name)

	created, err := client.DPSK().CreateService(ctx, &ruckus.DPSKServiceCreateRequest{Name: "guest-dpsk"})
	require.NoError(t, err)
	assert.Equal(t, "svc-1", created.ID)

	err = client.DPSK().DeleteService(ctx, "svc-1")
	require.NoError(t, err)
}

func TestDPSKClient_CreateService_RequiresName(t *testing.T) {
	t.Parallel()

	client := NewTestClient("http://example.com")

	_, err := client.DPSK().CreateService(context.Background(), &ruckus.DPSKServiceCreateRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ruckus.ErrServiceNameRequired)
}

func TestDPSKClient_Passphrases(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/dpskServices/svc-1/passphrases" && r.Method == "POST":
			var passphrases []ruckus.Passphrase

			err := json.NewDecoder(r.Body).Decode(&passphrases)
			require.NoError(t, err)
			require.Len(t, passphrases, 2)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(passphrases)
		case r.URL.Path == "/dpskServices/svc-1/passphrases" && r.Method == "DELETE":
			var ids []string

			err := json.NewDecoder(r.Body).Decode(&ids)
			require.NoError(t, err)
			assert.Equal(t, []string{"pp-1", "pp-2"}, ids)

			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	ctx := context.Background()

	created, err := client.DPSK().CreatePassphrases(ctx, "svc-1", []ruckus.Passphrase{
		{Username: "alice"},
		{Username: "bob"},
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)

	err = client.DPSK().DeletePassphrases(ctx, "svc-1", []string{"pp-1", "pp-2"})
	require.NoError(t, err)
}

func TestDPSKClient_CSVRoundTrip(t *testing.T) {
	t.Parallel()

	csvPayload := "username,passphrase\nalice,secret-one\nbob,secret-two"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/dpskServices/svc-1/passphrases/csvFiles" && r.Method == "POST":
			assert.Equal(t, "text/csv", r.Header.Get("Content-Type"))

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Equal(t, csvPayload, string(body))

			w.WriteHeader(http.StatusAccepted)
		case r.URL.Path == "/dpskServices/svc-1/passphrases/csvFiles/query" && r.Method == "POST":
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte(csvPayload))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	ctx := context.Background()

	err := client.DPSK().ImportPassphrasesCSV(ctx, "svc-1", []byte(csvPayload))
	require.NoError(t, err)

	// Export comes back as CSV bytes, not decoded JSON.
	exported, err := client.DPSK().ExportPassphrasesCSV(ctx, "svc-1", nil)
	require.NoError(t, err)
	assert.Equal(t, csvPayload, string(exported))
}

func TestDPSKClient_ExportCSV_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.DPSK().ExportPassphrasesCSV(context.Background(), "missing", nil)
	require.Error(t, err)

	notFound := &ruckus.NotFoundError{}
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "DPSK service", notFound.Resource)
	assert.Equal(t, "missing", notFound.ID)
}

func TestDPSKClient_AssociateWLAN(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wifiNetworks/wlan-1/dpskServices/svc-1", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.DPSK().AssociateWLAN(context.Background(), "wlan-1", "svc-1")
	require.NoError(t, err)
}
