package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wavelabs-io/ruckusone/internal/http"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

// SwitchesClient implements ruckus.SwitchesClient.
type SwitchesClient struct {
	httpClient *http.Client
}

// NewSwitchesClient creates a new switches client.
func NewSwitchesClient(httpClient *http.Client) *SwitchesClient {
	return &SwitchesClient{httpClient: httpClient}
}

// Query implements ruckus.SwitchesClient.Query.
func (c *SwitchesClient) Query(ctx context.Context, query *ruckus.Query) (*ruckus.QueryResult[ruckus.Switch], error) {
	resp, err := c.httpClient.Post(ctx, "/venues/switches/query", queryOrDefault(query))
	if err != nil {
		return nil, fmt.Errorf("querying switches: %w", err)
	}

	var result ruckus.QueryResult[ruckus.Switch]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing switches query response: %w", err)
	}

	return &result, nil
}

// Get implements ruckus.SwitchesClient.Get.
func (c *SwitchesClient) Get(ctx context.Context, venueID, switchID string) (*ruckus.Switch, error) {
	path := fmt.Sprintf("/venues/%s/switches/%s", venueID, switchID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("getting switch: %w", err), "switch", switchID)
	}

	var sw ruckus.Switch
	if err := json.Unmarshal(resp.Body, &sw); err != nil {
		return nil, fmt.Errorf("parsing switch response: %w", err)
	}

	return &sw, nil
}

// Update implements ruckus.SwitchesClient.Update.
func (c *SwitchesClient) Update(ctx context.Context, venueID, switchID string, updates map[string]interface{}) (*ruckus.Switch, error) {
	path := fmt.Sprintf("/venues/%s/switches/%s", venueID, switchID)

	resp, err := c.httpClient.Put(ctx, path, updates)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("updating switch: %w", err), "switch", switchID)
	}

	var sw ruckus.Switch
	if err := json.Unmarshal(resp.Body, &sw); err != nil {
		return nil, fmt.Errorf("parsing switch response: %w", err)
	}

	return &sw, nil
}

// Reboot implements ruckus.SwitchesClient.Reboot.
func (c *SwitchesClient) Reboot(ctx context.Context, venueID, switchID string) error {
	path := fmt.Sprintf("/venues/%s/switches/%s/reboot", venueID, switchID)

	_, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("rebooting switch: %w", err), "switch", switchID)
	}

	return nil
}

// QueryPorts implements ruckus.SwitchesClient.QueryPorts.
func (c *SwitchesClient) QueryPorts(ctx context.Context, query *ruckus.Query) (*ruckus.QueryResult[ruckus.SwitchPort], error) {
	resp, err := c.httpClient.Post(ctx, "/venues/switches/switchPorts/query", queryOrDefault(query))
	if err != nil {
		return nil, fmt.Errorf("querying switch ports: %w", err)
	}

	var result ruckus.QueryResult[ruckus.SwitchPort]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing switch ports response: %w", err)
	}

	return &result, nil
}

// UpdatePort implements ruckus.SwitchesClient.UpdatePort.
func (c *SwitchesClient) UpdatePort(ctx context.Context, venueID, switchID, portID string, updates map[string]interface{}) (*ruckus.SwitchPort, error) {
	path := fmt.Sprintf("/venues/%s/switches/%s/switchPorts/%s", venueID, switchID, portID)

	resp, err := c.httpClient.Put(ctx, path, updates)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("updating switch port: %w", err), "switch port", portID)
	}

	var port ruckus.SwitchPort
	if err := json.Unmarshal(resp.Body, &port); err != nil {
		return nil, fmt.Errorf("parsing switch port response: %w", err)
	}

	return &port, nil
}

// GetVLANs implements ruckus.SwitchesClient.GetVLANs.
func (c *SwitchesClient) GetVLANs(ctx context.Context, venueID, switchID string) ([]ruckus.SwitchVLAN, error) {
	path := fmt.Sprintf("/venues/%s/switches/%s/vlans", venueID, switchID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("listing switch VLANs: %w", err), "switch", switchID)
	}

	var vlans []ruckus.SwitchVLAN
	if err := json.Unmarshal(resp.Body, &vlans); err != nil {
		return nil, fmt.Errorf("parsing switch VLANs response: %w", err)
	}

	return vlans, nil
}

// CreateVLAN implements ruckus.SwitchesClient.CreateVLAN.
func (c *SwitchesClient) CreateVLAN(ctx context.Context, venueID, switchID string, vlan *ruckus.SwitchVLAN) (*ruckus.SwitchVLAN, error) {
	path := fmt.Sprintf("/venues/%s/switches/%s/vlans", venueID, switchID)

	resp, err := c.httpClient.Post(ctx, path, vlan)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("creating switch VLAN: %w", err), "switch", switchID)
	}

	var created ruckus.SwitchVLAN
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("parsing switch VLAN response: %w", err)
	}

	return &created, nil
}

// UpdateVLAN implements ruckus.SwitchesClient.UpdateVLAN.
func (c *SwitchesClient) UpdateVLAN(ctx context.Context, venueID, switchID, vlanID string, updates map[string]interface{}) (*ruckus.SwitchVLAN, error) {
	path := fmt.Sprintf("/venues/%s/switches/%s/vlans/%s", venueID, switchID, vlanID)

	resp, err := c.httpClient.Put(ctx, path, updates)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("updating switch VLAN: %w", err), "VLAN", vlanID)
	}

	var vlan ruckus.SwitchVLAN
	if err := json.Unmarshal(resp.Body, &vlan); err != nil {
		return nil, fmt.Errorf("parsing switch VLAN response: %w", err)
	}

	return &vlan, nil
}

// DeleteVLAN implements ruckus.SwitchesClient.DeleteVLAN.
func (c *SwitchesClient) DeleteVLAN(ctx context.Context, venueID, switchID, vlanID string) error {
	path := fmt.Sprintf("/venues/%s/switches/%s/vlans/%s", venueID, switchID, vlanID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("deleting switch VLAN: %w", err), "VLAN", vlanID)
	}

	return nil
}

// GetStatistics implements ruckus.SwitchesClient.GetStatistics.
func (c *SwitchesClient) GetStatistics(ctx context.Context, venueID, switchID string) (ruckus.Statistics, error) {
	path := fmt.Sprintf("/venues/%s/switches/%s/statistics", venueID, switchID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("getting switch statistics: %w", err), "switch", switchID)
	}

	var stats ruckus.Statistics
	if err := json.Unmarshal(resp.Body, &stats); err != nil {
		return nil, fmt.Errorf("parsing statistics response: %w", err)
	}

	return stats, nil
}
