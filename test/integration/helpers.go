// Package integration exercises the full client stack (token exchange,
// authenticated transport, resource clients) against an in-process mock of
// the RUCKUS One cloud.
package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/wavelabs-io/ruckusone/internal/auth"
	"github.com/wavelabs-io/ruckusone/internal/client"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

const (
	testTenantID     = "tenant-1"
	testClientID     = "integration-client"
	testClientSecret = "integration-secret"
)

// mockCloud is an in-memory stand-in for the RUCKUS One API. It issues
// bearer tokens through the tenant-scoped token endpoint and rejects any
// resource request that does not carry one of them.
type mockCloud struct {
	Server *httptest.Server

	mutex        sync.Mutex
	tokensIssued int
	validTokens  map[string]bool
	nextID       int

	venues      map[string]ruckus.Venue
	wlans       map[string]ruckus.WLAN
	activations map[string]string // venueID -> networkID
	services    map[string]ruckus.DPSKService
	passphrases map[string][]ruckus.Passphrase // serviceID -> passphrases
	devices     map[string][]ruckus.PassphraseDevice
}

func newMockCloud(t *testing.T) *mockCloud {
	t.Helper()

	cloud := &mockCloud{
		validTokens: make(map[string]bool),
		venues:      make(map[string]ruckus.Venue),
		wlans:       make(map[string]ruckus.WLAN),
		activations: make(map[string]string),
		services:    make(map[string]ruckus.DPSKService),
		passphrases: make(map[string][]ruckus.Passphrase),
		devices:     make(map[string][]ruckus.PassphraseDevice),
	}

	cloud.Server = httptest.NewServer(http.HandlerFunc(cloud.handle))
	t.Cleanup(cloud.Server.Close)

	return cloud
}

// TokensIssued reports how many token exchanges succeeded.
func (c *mockCloud) TokensIssued() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.tokensIssued
}

// newClient builds a real client-credentials token manager and client
// pointed at the mock cloud.
func newClient(t *testing.T, cloud *mockCloud) (ruckus.Client, *auth.ClientCredentialsTokenManager) {
	t.Helper()

	tokenManager := auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
		ClientID:     testClientID,
		ClientSecret: testClientSecret,
		TenantID:     testTenantID,
		BaseURL:      cloud.Server.URL,
	})

	return client.NewWithTokenManager(&ruckus.Config{}, cloud.Server.URL, tokenManager), tokenManager
}

func (c *mockCloud) handle(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/oauth2/token/") {
		c.handleToken(w, r)

		return
	}

	if !c.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid or missing token"})

		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	switch {
	case c.routeVenues(w, r):
	case c.routeWLANs(w, r):
	case c.routeDPSK(w, r):
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "no such endpoint"})
	}
}

func (c *mockCloud) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/oauth2/token/"+testTenantID {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "unknown tenant"})

		return
	}

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad form"})

		return
	}

	if r.PostForm.Get("grant_type") != "client_credentials" ||
		r.PostForm.Get("client_id") != testClientID ||
		r.PostForm.Get("client_secret") != testClientSecret {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid client credentials"})

		return
	}

	c.mutex.Lock()
	c.tokensIssued++
	token := fmt.Sprintf("mock-token-%d", c.tokensIssued)
	c.validTokens[token] = true
	c.mutex.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": token,
		"token_type":   "bearer",
		"expires_in":   3600,
	})
}

func (c *mockCloud) authorized(r *http.Request) bool {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return false
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.validTokens[strings.TrimPrefix(header, "Bearer ")]
}

// assignID returns a fresh ID with the given prefix. Caller holds the mutex.
func (c *mockCloud) assignID(prefix string) string {
	c.nextID++

	return fmt.Sprintf("%s-%d", prefix, c.nextID)
}

// routeVenues serves the venue endpoints. Caller holds the mutex. Returns
// false when the path belongs to another family.
func (c *mockCloud) routeVenues(w http.ResponseWriter, r *http.Request) bool {
	venueID := strings.TrimPrefix(r.URL.Path, "/venues/")

	switch {
	case r.URL.Path == "/venues/query" && r.Method == http.MethodPost:
		venues := make([]ruckus.Venue, 0, len(c.venues))
		for _, venue := range c.venues {
			venues = append(venues, venue)
		}

		writeJSON(w, http.StatusOK, ruckus.QueryResult[ruckus.Venue]{Data: venues, TotalCount: len(venues)})
	case r.URL.Path == "/venues" && r.Method == http.MethodPost:
		var request ruckus.VenueCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad venue payload"})

			return true
		}

		venue := ruckus.Venue{
			ID:      c.assignID("venue"),
			Name:    request.Name,
			City:    request.Address.City,
			Country: request.Address.Country,
		}
		c.venues[venue.ID] = venue

		writeJSON(w, http.StatusCreated, venue)
	case strings.HasPrefix(r.URL.Path, "/venues/") && !strings.Contains(venueID, "/") && r.Method == http.MethodGet:
		venue, ok := c.venues[venueID]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "venue not found"})

			return true
		}

		writeJSON(w, http.StatusOK, venue)
	case strings.HasPrefix(r.URL.Path, "/venues/") && !strings.Contains(venueID, "/") && r.Method == http.MethodDelete:
		if _, ok := c.venues[venueID]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "venue not found"})

			return true
		}

		delete(c.venues, venueID)
		w.WriteHeader(http.StatusNoContent)
	default:
		return false
	}

	return true
}

// routeWLANs serves the Wi-Fi network endpoints, including venue
// activations. Caller holds the mutex.
func (c *mockCloud) routeWLANs(w http.ResponseWriter, r *http.Request) bool {
	switch {
	case r.URL.Path == "/wifiNetworks" && r.Method == http.MethodPost:
		var request ruckus.WLANCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad network payload"})

			return true
		}

		wlan := ruckus.WLAN{
			ID:   c.assignID("wlan"),
			Name: request.Name,
			SSID: request.SSID,
		}
		c.wlans[wlan.ID] = wlan

		writeJSON(w, http.StatusCreated, wlan)
	case r.URL.Path == "/wifiNetworks/query" && r.Method == http.MethodPost:
		wlans := make([]ruckus.WLAN, 0, len(c.wlans))
		for _, wlan := range c.wlans {
			wlans = append(wlans, wlan)
		}

		writeJSON(w, http.StatusOK, ruckus.QueryResult[ruckus.WLAN]{Data: wlans, TotalCount: len(wlans)})
	case strings.HasPrefix(r.URL.Path, "/wifiNetworks/") && r.Method == http.MethodDelete:
		wlanID := strings.TrimPrefix(r.URL.Path, "/wifiNetworks/")
		if _, ok := c.wlans[wlanID]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "network not found"})

			return true
		}

		delete(c.wlans, wlanID)
		w.WriteHeader(http.StatusNoContent)
	case strings.HasPrefix(r.URL.Path, "/venues/") && strings.HasSuffix(r.URL.Path, "/networks") && r.Method == http.MethodPost:
		venueID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/venues/"), "/networks")

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad activation payload"})

			return true
		}

		networkID, _ := body["networkId"].(string)
		if _, exists := c.wlans[networkID]; !exists {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "network not found"})

			return true
		}

		c.activations[venueID] = networkID
		w.WriteHeader(http.StatusOK)
	case strings.HasPrefix(r.URL.Path, "/venues/") && strings.Contains(r.URL.Path, "/networks/") && r.Method == http.MethodDelete:
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/venues/"), "/networks/")
		if len(parts) != 2 {
			return false
		}

		if c.activations[parts[0]] != parts[1] {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "activation not found"})

			return true
		}

		delete(c.activations, parts[0])
		w.WriteHeader(http.StatusNoContent)
	default:
		return false
	}

	return true
}

// routeDPSK serves the DPSK service and passphrase endpoints. Caller holds
// the mutex.
func (c *mockCloud) routeDPSK(w http.ResponseWriter, r *http.Request) bool {
	if !strings.HasPrefix(r.URL.Path, "/dpskServices") {
		return false
	}

	switch {
	case r.URL.Path == "/dpskServices" && r.Method == http.MethodPost:
		var request ruckus.DPSKServiceCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad service payload"})

			return true
		}

		service := ruckus.DPSKService{
			ID:               c.assignID("dpsk"),
			Name:             request.Name,
			PassphraseFormat: request.PassphraseFormat,
			PassphraseLength: request.PassphraseLength,
		}
		c.services[service.ID] = service

		writeJSON(w, http.StatusCreated, service)
	case strings.HasSuffix(r.URL.Path, "/passphrases") && r.Method == http.MethodPost:
		serviceID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/dpskServices/"), "/passphrases")
		if _, ok := c.services[serviceID]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "service not found"})

			return true
		}

		var incoming []ruckus.Passphrase
		if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad passphrase payload"})

			return true
		}

		for i := range incoming {
			incoming[i].ID = c.assignID("pass")
			incoming[i].Passphrase = c.assignID("secret")
		}

		c.passphrases[serviceID] = append(c.passphrases[serviceID], incoming...)

		writeJSON(w, http.StatusCreated, incoming)
	case strings.HasSuffix(r.URL.Path, "/passphrases/query") && r.Method == http.MethodPost:
		serviceID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/dpskServices/"), "/passphrases/query")
		passphrases := c.passphrases[serviceID]
		if passphrases == nil {
			passphrases = []ruckus.Passphrase{}
		}

		writeJSON(w, http.StatusOK, ruckus.QueryResult[ruckus.Passphrase]{
			Data:       passphrases,
			TotalCount: len(passphrases),
		})
	case strings.HasSuffix(r.URL.Path, "/devices") && r.Method == http.MethodPost:
		var incoming []ruckus.PassphraseDevice
		if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad device payload"})

			return true
		}

		c.devices[r.URL.Path] = append(c.devices[r.URL.Path], incoming...)
		w.WriteHeader(http.StatusCreated)
	case strings.HasSuffix(r.URL.Path, "/devices") && r.Method == http.MethodGet:
		devices := c.devices[r.URL.Path]
		if devices == nil {
			devices = []ruckus.PassphraseDevice{}
		}

		writeJSON(w, http.StatusOK, devices)
	case r.Method == http.MethodDelete:
		serviceID := strings.TrimPrefix(r.URL.Path, "/dpskServices/")
		if _, ok := c.services[serviceID]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "service not found"})

			return true
		}

		delete(c.services, serviceID)
		delete(c.passphrases, serviceID)
		w.WriteHeader(http.StatusNoContent)
	default:
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
