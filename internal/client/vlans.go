package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wavelabs-io/ruckusone/internal/http"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

// VLANsClient implements ruckus.VLANsClient.
type VLANsClient struct {
	httpClient *http.Client
}

// NewVLANsClient creates a new VLAN pools client.
func NewVLANsClient(httpClient *http.Client) *VLANsClient {
	return &VLANsClient{httpClient: httpClient}
}

// QueryPools implements ruckus.VLANsClient.QueryPools.
func (c *VLANsClient) QueryPools(ctx context.Context, query *ruckus.Query) (*ruckus.QueryResult[ruckus.VLANPool], error) {
	resp, err := c.httpClient.Post(ctx, "/vlanPools/query", queryOrDefault(query))
	if err != nil {
		return nil, fmt.Errorf("querying VLAN pools: %w", err)
	}

	var result ruckus.QueryResult[ruckus.VLANPool]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing VLAN pools query response: %w", err)
	}

	return &result, nil
}

// GetPool implements ruckus.VLANsClient.GetPool.
func (c *VLANsClient) GetPool(ctx context.Context, poolID string) (*ruckus.VLANPool, error) {
	path := fmt.Sprintf("/vlanPools/%s", poolID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("getting VLAN pool: %w", err), "VLAN pool", poolID)
	}

	var pool ruckus.VLANPool
	if err := json.Unmarshal(resp.Body, &pool); err != nil {
		return nil, fmt.Errorf("parsing VLAN pool response: %w", err)
	}

	return &pool, nil
}

// CreatePool implements ruckus.VLANsClient.CreatePool.
func (c *VLANsClient) CreatePool(ctx context.Context, pool *ruckus.VLANPool) (*ruckus.VLANPool, error) {
	if pool == nil || pool.Name == "" {
		return nil, ruckus.ErrPoolNameRequired
	}

	resp, err := c.httpClient.Post(ctx, "/vlanPools", pool)
	if err != nil {
		return nil, fmt.Errorf("creating VLAN pool: %w", err)
	}

	var created ruckus.VLANPool
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("parsing VLAN pool response: %w", err)
	}

	return &created, nil
}

// UpdatePool implements ruckus.VLANsClient.UpdatePool.
func (c *VLANsClient) UpdatePool(ctx context.Context, poolID string, updates map[string]interface{}) (*ruckus.VLANPool, error) {
	path := fmt.Sprintf("/vlanPools/%s", poolID)

	resp, err := c.httpClient.Put(ctx, path, updates)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("updating VLAN pool: %w", err), "VLAN pool", poolID)
	}

	var pool ruckus.VLANPool
	if err := json.Unmarshal(resp.Body, &pool); err != nil {
		return nil, fmt.Errorf("parsing VLAN pool response: %w", err)
	}

	return &pool, nil
}

// DeletePool implements ruckus.VLANsClient.DeletePool.
func (c *VLANsClient) DeletePool(ctx context.Context, poolID string) error {
	path := fmt.Sprintf("/vlanPools/%s", poolID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("deleting VLAN pool: %w", err), "VLAN pool", poolID)
	}

	return nil
}

// QueryProfiles implements ruckus.VLANsClient.QueryProfiles.
func (c *VLANsClient) QueryProfiles(ctx context.Context, query *ruckus.Query) (*ruckus.QueryResult[ruckus.VLANPoolProfile], error) {
	resp, err := c.httpClient.Post(ctx, "/vlanPoolProfiles/query", queryOrDefault(query))
	if err != nil {
		return nil, fmt.Errorf("querying VLAN pool profiles: %w", err)
	}

	var result ruckus.QueryResult[ruckus.VLANPoolProfile]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing VLAN pool profiles response: %w", err)
	}

	return &result, nil
}

// GetProfile implements ruckus.VLANsClient.GetProfile.
func (c *VLANsClient) GetProfile(ctx context.Context, profileID string) (*ruckus.VLANPoolProfile, error) {
	path := fmt.Sprintf("/vlanPoolProfiles/%s", profileID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("getting VLAN pool profile: %w", err), "VLAN pool profile", profileID)
	}

	var profile ruckus.VLANPoolProfile
	if err := json.Unmarshal(resp.Body, &profile); err != nil {
		return nil, fmt.Errorf("parsing VLAN pool profile response: %w", err)
	}

	return &profile, nil
}

// CreateProfile implements ruckus.VLANsClient.CreateProfile.
func (c *VLANsClient) CreateProfile(ctx context.Context, profile *ruckus.VLANPoolProfile) (*ruckus.VLANPoolProfile, error) {
	if profile == nil || profile.Name == "" {
		return nil, ruckus.ErrPoolNameRequired
	}

	resp, err := c.httpClient.Post(ctx, "/vlanPoolProfiles", profile)
	if err != nil {
		return nil, fmt.Errorf("creating VLAN pool profile: %w", err)
	}

	var created ruckus.VLANPoolProfile
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("parsing VLAN pool profile response: %w", err)
	}

	return &created, nil
}

// UpdateProfile implements ruckus.VLANsClient.UpdateProfile.
func (c *VLANsClient) UpdateProfile(ctx context.Context, profileID string, updates map[string]interface{}) (*ruckus.VLANPoolProfile, error) {
	path := fmt.Sprintf("/vlanPoolProfiles/%s", profileID)

	resp, err := c.httpClient.Put(ctx, path, updates)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("updating VLAN pool profile: %w", err), "VLAN pool profile", profileID)
	}

	var profile ruckus.VLANPoolProfile
	if err := json.Unmarshal(resp.Body, &profile); err != nil {
		return nil, fmt.Errorf("parsing VLAN pool profile response: %w", err)
	}

	return &profile, nil
}

// DeleteProfile implements ruckus.VLANsClient.DeleteProfile.
func (c *VLANsClient) DeleteProfile(ctx context.Context, profileID string) error {
	path := fmt.Sprintf("/vlanPoolProfiles/%s", profileID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("deleting VLAN pool profile: %w", err), "VLAN pool profile", profileID)
	}

	return nil
}

// GetManagementVLAN implements ruckus.VLANsClient.GetManagementVLAN.
func (c *VLANsClient) GetManagementVLAN(ctx context.Context, venueID string) (*ruckus.ManagementVLANSettings, error) {
	path := fmt.Sprintf("/venues/%s/apManagementTrafficVlanSettings", venueID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("getting management VLAN settings: %w", err), "venue", venueID)
	}

	var settings ruckus.ManagementVLANSettings
	if err := json.Unmarshal(resp.Body, &settings); err != nil {
		return nil, fmt.Errorf("parsing management VLAN settings response: %w", err)
	}

	return &settings, nil
}

// UpdateManagementVLAN implements ruckus.VLANsClient.UpdateManagementVLAN.
func (c *VLANsClient) UpdateManagementVLAN(ctx context.Context, venueID string, settings *ruckus.ManagementVLANSettings) (*ruckus.ManagementVLANSettings, error) {
	path := fmt.Sprintf("/venues/%s/apManagementTrafficVlanSettings", venueID)

	resp, err := c.httpClient.Put(ctx, path, settings)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("updating management VLAN settings: %w", err), "venue", venueID)
	}

	var updated ruckus.ManagementVLANSettings
	if err := json.Unmarshal(resp.Body, &updated); err != nil {
		return nil, fmt.Errorf("parsing management VLAN settings response: %w", err)
	}

	return &updated, nil
}
