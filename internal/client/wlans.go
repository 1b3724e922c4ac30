package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wavelabs-io/ruckusone/internal/http"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

// WLANsClient implements ruckus.WLANsClient.
type WLANsClient struct {
	httpClient *http.Client
}

// NewWLANsClient creates a new Wi-Fi networks client.
func NewWLANsClient(httpClient *http.Client) *WLANsClient {
	return &WLANsClient{httpClient: httpClient}
}

// Query implements ruckus.WLANsClient.Query.
func (c *WLANsClient) Query(ctx context.Context, query *ruckus.Query) (*ruckus.QueryResult[ruckus.WLAN], error) {
	resp, err := c.httpClient.Post(ctx, "/wifiNetworks/query", queryOrDefault(query))
	if err != nil {
		return nil, fmt.Errorf("querying networks: %w", err)
	}

	var result ruckus.QueryResult[ruckus.WLAN]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing networks query response: %w", err)
	}

	return &result, nil
}

// Get implements ruckus.WLANsClient.Get.
func (c *WLANsClient) Get(ctx context.Context, wlanID string) (*ruckus.WLAN, error) {
	path := fmt.Sprintf("/wifiNetworks/%s", wlanID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("getting network: %w", err), "network", wlanID)
	}

	var wlan ruckus.WLAN
	if err := json.Unmarshal(resp.Body, &wlan); err != nil {
		return nil, fmt.Errorf("parsing network response: %w", err)
	}

	return &wlan, nil
}

// Create implements ruckus.WLANsClient.Create.
func (c *WLANsClient) Create(ctx context.Context, request *ruckus.WLANCreateRequest) (*ruckus.WLAN, error) {
	if request == nil || request.Name == "" {
		return nil, ruckus.ErrWLANNameRequired
	}

	resp, err := c.httpClient.Post(ctx, "/wifiNetworks", request)
	if err != nil {
		return nil, fmt.Errorf("creating network: %w", err)
	}

	var wlan ruckus.WLAN
	if err := json.Unmarshal(resp.Body, &wlan); err != nil {
		return nil, fmt.Errorf("parsing network response: %w", err)
	}

	return &wlan, nil
}

// Update implements ruckus.WLANsClient.Update.
func (c *WLANsClient) Update(ctx context.Context, wlanID string, updates map[string]interface{}) (*ruckus.WLAN, error) {
	path := fmt.Sprintf("/wifiNetworks/%s", wlanID)

	resp, err := c.httpClient.Put(ctx, path, updates)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("updating network: %w", err), "network", wlanID)
	}

	var wlan ruckus.WLAN
	if err := json.Unmarshal(resp.Body, &wlan); err != nil {
		return nil, fmt.Errorf("parsing network response: %w", err)
	}

	return &wlan, nil
}

// Delete implements ruckus.WLANsClient.Delete.
func (c *WLANsClient) Delete(ctx context.Context, wlanID string) error {
	path := fmt.Sprintf("/wifiNetworks/%s", wlanID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("deleting network: %w", err), "network", wlanID)
	}

	return nil
}

// QueryVenueNetworks implements ruckus.WLANsClient.QueryVenueNetworks.
func (c *WLANsClient) QueryVenueNetworks(ctx context.Context, query *ruckus.Query) (*ruckus.QueryResult[ruckus.WLAN], error) {
	resp, err := c.httpClient.Post(ctx, "/venues/networks/query", queryOrDefault(query))
	if err != nil {
		return nil, fmt.Errorf("querying venue networks: %w", err)
	}

	var result ruckus.QueryResult[ruckus.WLAN]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing venue networks response: %w", err)
	}

	return &result, nil
}

// Activate implements ruckus.WLANsClient.Activate. An empty apGroupID
// activates the network on all AP groups in the venue.
func (c *WLANsClient) Activate(ctx context.Context, venueID, wlanID, apGroupID string) error {
	path := fmt.Sprintf("/venues/%s/networks", venueID)

	body := map[string]interface{}{
		"networkId":     wlanID,
		"isAllApGroups": apGroupID == "",
	}
	if apGroupID != "" {
		body["apGroupId"] = apGroupID
	}

	_, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("activating network: %w", err), "network", wlanID)
	}

	return nil
}

// Deactivate implements ruckus.WLANsClient.Deactivate.
func (c *WLANsClient) Deactivate(ctx context.Context, venueID, networkID string) error {
	path := fmt.Sprintf("/venues/%s/networks/%s", venueID, networkID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("deactivating network: %w", err), "network", networkID)
	}

	return nil
}
