package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wavelabs-io/ruckusone/internal/http"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

// AccessPointsClient implements ruckus.AccessPointsClient.
type AccessPointsClient struct {
	httpClient *http.Client
}

// NewAccessPointsClient creates a new access points client.
func NewAccessPointsClient(httpClient *http.Client) *AccessPointsClient {
	return &AccessPointsClient{httpClient: httpClient}
}

// Query implements ruckus.AccessPointsClient.Query.
func (c *AccessPointsClient) Query(ctx context.Context, query *ruckus.Query) (*ruckus.QueryResult[ruckus.AccessPoint], error) {
	resp, err := c.httpClient.Post(ctx, "/venues/aps/query", queryOrDefault(query))
	if err != nil {
		return nil, fmt.Errorf("querying access points: %w", err)
	}

	var result ruckus.QueryResult[ruckus.AccessPoint]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing access points query response: %w", err)
	}

	return &result, nil
}

// Get implements ruckus.AccessPointsClient.Get. The cloud has no direct GET
// by serial; the tenant-wide query endpoint is filtered instead and the
// first match returned.
func (c *AccessPointsClient) Get(ctx context.Context, serialNumber string) (*ruckus.AccessPoint, error) {
	if serialNumber == "" {
		return nil, ruckus.ErrSerialNumberRequired
	}

	query := ruckus.NewQuery().WithFilter("serialNumber", serialNumber)

	result, err := c.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("getting access point: %w", err)
	}

	if len(result.Data) == 0 {
		return nil, &ruckus.NotFoundError{
			APIError: ruckus.APIError{StatusCode: 404},
			Resource: "access point",
			ID:       serialNumber,
		}
	}

	return &result.Data[0], nil
}

// Update implements ruckus.AccessPointsClient.Update.
func (c *AccessPointsClient) Update(ctx context.Context, venueID, serialNumber string, request *ruckus.APUpdateRequest) (*ruckus.AccessPoint, error) {
	path := fmt.Sprintf("/venues/%s/aps/%s", venueID, serialNumber)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("updating access point: %w", err), "access point", serialNumber)
	}

	var accessPoint ruckus.AccessPoint
	if err := json.Unmarshal(resp.Body, &accessPoint); err != nil {
		return nil, fmt.Errorf("parsing access point response: %w", err)
	}

	return &accessPoint, nil
}

// Reboot implements ruckus.AccessPointsClient.Reboot.
func (c *AccessPointsClient) Reboot(ctx context.Context, venueID, serialNumber string) error {
	path := fmt.Sprintf("/venues/%s/aps/%s/reboot", venueID, serialNumber)

	_, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("rebooting access point: %w", err), "access point", serialNumber)
	}

	return nil
}

// QueryClients implements ruckus.AccessPointsClient.QueryClients.
func (c *AccessPointsClient) QueryClients(ctx context.Context, query *ruckus.Query) (*ruckus.QueryResult[ruckus.WirelessClient], error) {
	resp, err := c.httpClient.Post(ctx, "/clients/query", queryOrDefault(query))
	if err != nil {
		return nil, fmt.Errorf("querying wireless clients: %w", err)
	}

	var result ruckus.QueryResult[ruckus.WirelessClient]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing wireless clients response: %w", err)
	}

	return &result, nil
}

// GetRadioSettings implements ruckus.AccessPointsClient.GetRadioSettings.
func (c *AccessPointsClient) GetRadioSettings(ctx context.Context, venueID, serialNumber string) (ruckus.RadioSettings, error) {
	path := fmt.Sprintf("/venues/%s/aps/%s/radioSettings", venueID, serialNumber)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("getting radio settings: %w", err), "access point", serialNumber)
	}

	var settings ruckus.RadioSettings
	if err := json.Unmarshal(resp.Body, &settings); err != nil {
		return nil, fmt.Errorf("parsing radio settings response: %w", err)
	}

	return settings, nil
}

// UpdateRadioSettings implements ruckus.AccessPointsClient.UpdateRadioSettings.
func (c *AccessPointsClient) UpdateRadioSettings(ctx context.Context, venueID, serialNumber string, settings ruckus.RadioSettings) (ruckus.RadioSettings, error) {
	path := fmt.Sprintf("/venues/%s/aps/%s/radioSettings", venueID, serialNumber)

	resp, err := c.httpClient.Put(ctx, path, settings)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("updating radio settings: %w", err), "access point", serialNumber)
	}

	var updated ruckus.RadioSettings
	if err := json.Unmarshal(resp.Body, &updated); err != nil {
		return nil, fmt.Errorf("parsing radio settings response: %w", err)
	}

	return updated, nil
}

// GetStatistics implements ruckus.AccessPointsClient.GetStatistics.
func (c *AccessPointsClient) GetStatistics(ctx context.Context, venueID, serialNumber string) (ruckus.Statistics, error) {
	path := fmt.Sprintf("/venues/%s/aps/%s/statistics", venueID, serialNumber)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("getting access point statistics: %w", err), "access point", serialNumber)
	}

	var stats ruckus.Statistics
	if err := json.Unmarshal(resp.Body, &stats); err != nil {
		return nil, fmt.Errorf("parsing statistics response: %w", err)
	}

	return stats, nil
}

// AddToGroup implements ruckus.AccessPointsClient.AddToGroup.
func (c *AccessPointsClient) AddToGroup(ctx context.Context, venueID, apGroupID string, serialNumbers []string) error {
	path := fmt.Sprintf("/venues/%s/apGroups/%s/aps", venueID, apGroupID)

	body := map[string][]string{"serialNumbers": serialNumbers}

	_, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("adding access points to group: %w", err), "AP group", apGroupID)
	}

	return nil
}
