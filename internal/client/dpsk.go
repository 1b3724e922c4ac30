package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"

	"github.com/wavelabs-io/ruckusone/internal/constants"
	"github.com/wavelabs-io/ruckusone/internal/http"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

// DPSKClient implements ruckus.DPSKClient.
type DPSKClient struct {
	httpClient *http.Client
}

// NewDPSKClient creates a new DPSK services client.
func NewDPSKClient(httpClient *http.Client) *DPSKClient {
	return &DPSKClient{httpClient: httpClient}
}

// QueryServices implements ruckus.DPSKClient.QueryServices.
func (c *DPSKClient) QueryServices(ctx context.Context, query *ruckus.Query) (*ruckus.QueryResult[ruckus.DPSKService], error) {
	resp, err := c.httpClient.Post(ctx, "/dpskServices/query", queryOrDefault(query))
	if err != nil {
		return nil, fmt.Errorf("querying DPSK services: %w", err)
	}

	var result ruckus.QueryResult[ruckus.DPSKService]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing DPSK services query response: %w", err)
	}

	return &result, nil
}

// GetService implements ruckus.DPSKClient.GetService.
func (c *DPSKClient) GetService(ctx context.Context, serviceID string) (*ruckus.DPSKService, error) {
	path := fmt.Sprintf("/dpskServices/%s", serviceID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("getting DPSK service: %w", err), "DPSK service", serviceID)
	}

	var service ruckus.DPSKService
	if err := json.Unmarshal(resp.Body, &service); err != nil {
		return nil, fmt.Errorf("parsing DPSK service response: %w", err)
	}

	return &service, nil
}

// CreateService implements ruckus.DPSKClient.CreateService.
func (c *DPSKClient) CreateService(ctx context.Context, request *ruckus.DPSKServiceCreateRequest) (*ruckus.DPSKService, error) {
	if request == nil || request.Name == "" {
		return nil, ruckus.ErrServiceNameRequired
	}

	resp, err := c.httpClient.Post(ctx, "/dpskServices", request)
	if err != nil {
		return nil, fmt.Errorf("creating DPSK service: %w", err)
	}

	var service ruckus.DPSKService
	if err := json.Unmarshal(resp.Body, &service); err != nil {
		return nil, fmt.Errorf("parsing DPSK service response: %w", err)
	}

	return &service, nil
}

// UpdateService implements ruckus.DPSKClient.UpdateService.
func (c *DPSKClient) UpdateService(ctx context.Context, serviceID string, updates map[string]interface{}) (*ruckus.DPSKService, error) {
	path := fmt.Sprintf("/dpskServices/%s", serviceID)

	resp, err := c.httpClient.Put(ctx, path, updates)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("updating DPSK service: %w", err), "DPSK service", serviceID)
	}

	var service ruckus.DPSKService
	if err := json.Unmarshal(resp.Body, &service); err != nil {
		return nil, fmt.Errorf("parsing DPSK service response: %w", err)
	}

	return &service, nil
}

// DeleteService implements ruckus.DPSKClient.DeleteService.
func (c *DPSKClient) DeleteService(ctx context.Context, serviceID string) error {
	path := fmt.Sprintf("/dpskServices/%s", serviceID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("deleting DPSK service: %w", err), "DPSK service", serviceID)
	}

	return nil
}

// QueryPassphrases implements ruckus.DPSKClient.QueryPassphrases.
func (c *DPSKClient) QueryPassphrases(ctx context.Context, serviceID string, query *ruckus.Query) (*ruckus.QueryResult[ruckus.Passphrase], error) {
	path := fmt.Sprintf("/dpskServices/%s/passphrases/query", serviceID)

	resp, err := c.httpClient.Post(ctx, path, queryOrDefault(query))
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("querying passphrases: %w", err), "DPSK service", serviceID)
	}

	var result ruckus.QueryResult[ruckus.Passphrase]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing passphrases query response: %w", err)
	}

	return &result, nil
}

// GetPassphrase implements ruckus.DPSKClient.GetPassphrase.
func (c *DPSKClient) GetPassphrase(ctx context.Context, serviceID, passphraseID string) (*ruckus.Passphrase, error) {
	path := fmt.Sprintf("/dpskServices/%s/passphrases/%s", serviceID, passphraseID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("getting passphrase: %w", err), "passphrase", passphraseID)
	}

	var passphrase ruckus.Passphrase
	if err := json.Unmarshal(resp.Body, &passphrase); err != nil {
		return nil, fmt.Errorf("parsing passphrase response: %w", err)
	}

	return &passphrase, nil
}

// CreatePassphrases implements ruckus.DPSKClient.CreatePassphrases. The
// endpoint is a bulk create; a single passphrase is a one-element slice.
func (c *DPSKClient) CreatePassphrases(ctx context.Context, serviceID string, passphrases []ruckus.Passphrase) ([]ruckus.Passphrase, error) {
	path := fmt.Sprintf("/dpskServices/%s/passphrases", serviceID)

	resp, err := c.httpClient.Post(ctx, path, passphrases)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("creating passphrases: %w", err), "DPSK service", serviceID)
	}

	var created []ruckus.Passphrase
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("parsing passphrases response: %w", err)
	}

	return created, nil
}

// UpdatePassphrase implements ruckus.DPSKClient.UpdatePassphrase.
func (c *DPSKClient) UpdatePassphrase(ctx context.Context, serviceID, passphraseID string, updates map[string]interface{}) (*ruckus.Passphrase, error) {
	path := fmt.Sprintf("/dpskServices/%s/passphrases/%s", serviceID, passphraseID)

	resp, err := c.httpClient.Patch(ctx, path, updates)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("updating passphrase: %w", err), "passphrase", passphraseID)
	}

	var passphrase ruckus.Passphrase
	if err := json.Unmarshal(resp.Body, &passphrase); err != nil {
		return nil, fmt.Errorf("parsing passphrase response: %w", err)
	}

	return &passphrase, nil
}

// DeletePassphrases implements ruckus.DPSKClient.DeletePassphrases; the
// target IDs travel in the DELETE body.
func (c *DPSKClient) DeletePassphrases(ctx context.Context, serviceID string, passphraseIDs []string) error {
	path := fmt.Sprintf("/dpskServices/%s/passphrases", serviceID)

	_, err := c.httpClient.DeleteWithBody(ctx, path, passphraseIDs)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("deleting passphrases: %w", err), "DPSK service", serviceID)
	}

	return nil
}

// ListDevices implements ruckus.DPSKClient.ListDevices.
func (c *DPSKClient) ListDevices(ctx context.Context, serviceID, passphraseID string) ([]ruckus.PassphraseDevice, error) {
	path := fmt.Sprintf("/dpskServices/%s/passphrases/%s/devices", serviceID, passphraseID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("listing passphrase devices: %w", err), "passphrase", passphraseID)
	}

	var devices []ruckus.PassphraseDevice
	if err := json.Unmarshal(resp.Body, &devices); err != nil {
		return nil, fmt.Errorf("parsing passphrase devices response: %w", err)
	}

	return devices, nil
}

// AddDevices implements ruckus.DPSKClient.AddDevices.
func (c *DPSKClient) AddDevices(ctx context.Context, serviceID, passphraseID string, devices []ruckus.PassphraseDevice) error {
	path := fmt.Sprintf("/dpskServices/%s/passphrases/%s/devices", serviceID, passphraseID)

	_, err := c.httpClient.Post(ctx, path, devices)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("adding passphrase devices: %w", err), "passphrase", passphraseID)
	}

	return nil
}

// RemoveDevices implements ruckus.DPSKClient.RemoveDevices.
func (c *DPSKClient) RemoveDevices(ctx context.Context, serviceID, passphraseID string, macs []string) error {
	path := fmt.Sprintf("/dpskServices/%s/passphrases/%s/devices", serviceID, passphraseID)

	_, err := c.httpClient.DeleteWithBody(ctx, path, macs)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("removing passphrase devices: %w", err), "passphrase", passphraseID)
	}

	return nil
}

// ImportPassphrasesCSV implements ruckus.DPSKClient.ImportPassphrasesCSV.
func (c *DPSKClient) ImportPassphrasesCSV(ctx context.Context, serviceID string, csv []byte) error {
	path := fmt.Sprintf("/dpskServices/%s/passphrases/csvFiles", serviceID)

	_, err := c.httpClient.Do(ctx, &http.Request{
		Method: nethttp.MethodPost,
		Path:   path,
		Body:   csv,
		Headers: map[string]string{
			"Content-Type": constants.ContentTypeCSV,
		},
	})
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("importing passphrases CSV: %w", err), "DPSK service", serviceID)
	}

	return nil
}

// ExportPassphrasesCSV implements ruckus.DPSKClient.ExportPassphrasesCSV.
// The response is CSV, not JSON, so the raw escape hatch carries the bytes
// through untouched.
func (c *DPSKClient) ExportPassphrasesCSV(ctx context.Context, serviceID string, query *ruckus.Query) ([]byte, error) {
	path := fmt.Sprintf("/dpskServices/%s/passphrases/csvFiles", serviceID)

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: nethttp.MethodPost,
		Path:   path + "/query",
		Body:   queryOrDefault(query),
		Headers: map[string]string{
			"Accept": constants.ContentTypeCSV,
		},
		Raw: true,
	})
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("exporting passphrases CSV: %w", err), "DPSK service", serviceID)
	}

	return resp.Body, nil
}

// AssociateWLAN implements ruckus.DPSKClient.AssociateWLAN.
func (c *DPSKClient) AssociateWLAN(ctx context.Context, wlanID, serviceID string) error {
	path := fmt.Sprintf("/wifiNetworks/%s/dpskServices/%s", wlanID, serviceID)

	_, err := c.httpClient.Put(ctx, path, nil)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("associating DPSK service with network: %w", err), "network", wlanID)
	}

	return nil
}
