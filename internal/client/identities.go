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

// IdentitiesClient implements ruckus.IdentitiesClient.
type IdentitiesClient struct {
	httpClient *http.Client
}

// NewIdentitiesClient creates a new identities client.
func NewIdentitiesClient(httpClient *http.Client) *IdentitiesClient {
	return &IdentitiesClient{httpClient: httpClient}
}

// List implements ruckus.IdentitiesClient.List.
func (c *IdentitiesClient) List(ctx context.Context) ([]ruckus.Identity, error) {
	resp, err := c.httpClient.Get(ctx, "/identities", nil)
	if err != nil {
		return nil, fmt.Errorf("listing identities: %w", err)
	}

	var identities []ruckus.Identity
	if err := json.Unmarshal(resp.Body, &identities); err != nil {
		return nil, fmt.Errorf("parsing identities response: %w", err)
	}

	return identities, nil
}

// Query implements ruckus.IdentitiesClient.Query.
func (c *IdentitiesClient) Query(ctx context.Context, query *ruckus.Query) (*ruckus.QueryResult[ruckus.Identity], error) {
	resp, err := c.httpClient.Post(ctx, "/identities/query", queryOrDefault(query))
	if err != nil {
		return nil, fmt.Errorf("querying identities: %w", err)
	}

	var result ruckus.QueryResult[ruckus.Identity]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing identities query response: %w", err)
	}

	return &result, nil
}

// Get implements ruckus.IdentitiesClient.Get.
func (c *IdentitiesClient) Get(ctx context.Context, groupID, identityID string) (*ruckus.Identity, error) {
	path := fmt.Sprintf("/identityGroups/%s/identities/%s", groupID, identityID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("getting identity: %w", err), "identity", identityID)
	}

	var identity ruckus.Identity
	if err := json.Unmarshal(resp.Body, &identity); err != nil {
		return nil, fmt.Errorf("parsing identity response: %w", err)
	}

	return &identity, nil
}

// Update implements ruckus.IdentitiesClient.Update.
func (c *IdentitiesClient) Update(ctx context.Context, groupID, identityID string, updates map[string]interface{}) (*ruckus.Identity, error) {
	path := fmt.Sprintf("/identityGroups/%s/identities/%s", groupID, identityID)

	resp, err := c.httpClient.Put(ctx, path, updates)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("updating identity: %w", err), "identity", identityID)
	}

	var identity ruckus.Identity
	if err := json.Unmarshal(resp.Body, &identity); err != nil {
		return nil, fmt.Errorf("parsing identity response: %w", err)
	}

	return &identity, nil
}

// Delete implements ruckus.IdentitiesClient.Delete.
func (c *IdentitiesClient) Delete(ctx context.Context, groupID, identityID string) error {
	path := fmt.Sprintf("/identityGroups/%s/identities/%s", groupID, identityID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("deleting identity: %w", err), "identity", identityID)
	}

	return nil
}

// AddDevices implements ruckus.IdentitiesClient.AddDevices.
func (c *IdentitiesClient) AddDevices(ctx context.Context, groupID, identityID string, devices []ruckus.IdentityDevice) error {
	path := fmt.Sprintf("/identityGroups/%s/identities/%s/devices", groupID, identityID)

	_, err := c.httpClient.Post(ctx, path, devices)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("adding identity devices: %w", err), "identity", identityID)
	}

	return nil
}

// RemoveDevice implements ruckus.IdentitiesClient.RemoveDevice.
func (c *IdentitiesClient) RemoveDevice(ctx context.Context, groupID, identityID, macAddress string) error {
	path := fmt.Sprintf("/identityGroups/%s/identities/%s/devices/%s", groupID, identityID, macAddress)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("removing identity device: %w", err), "identity", identityID)
	}

	return nil
}

// ExportCSV implements ruckus.IdentitiesClient.ExportCSV. The response is
// CSV, carried through the raw escape hatch.
func (c *IdentitiesClient) ExportCSV(ctx context.Context, query *ruckus.Query) ([]byte, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: nethttp.MethodPost,
		Path:   "/identities/csvFiles/query",
		Body:   queryOrDefault(query),
		Headers: map[string]string{
			"Accept": constants.ContentTypeCSV,
		},
		Raw: true,
	})
	if err != nil {
		return nil, fmt.Errorf("exporting identities CSV: %w", err)
	}

	return resp.Body, nil
}
