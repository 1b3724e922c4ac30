package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wavelabs-io/ruckusone/internal/http"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

// IdentityGroupsClient implements ruckus.IdentityGroupsClient.
type IdentityGroupsClient struct {
	httpClient *http.Client
}

// NewIdentityGroupsClient creates a new identity groups client.
func NewIdentityGroupsClient(httpClient *http.Client) *IdentityGroupsClient {
	return &IdentityGroupsClient{httpClient: httpClient}
}

// List implements ruckus.IdentityGroupsClient.List.
func (c *IdentityGroupsClient) List(ctx context.Context) ([]ruckus.IdentityGroup, error) {
	resp, err := c.httpClient.Get(ctx, "/identityGroups", nil)
	if err != nil {
		return nil, fmt.Errorf("listing identity groups: %w", err)
	}

	var groups []ruckus.IdentityGroup
	if err := json.Unmarshal(resp.Body, &groups); err != nil {
		return nil, fmt.Errorf("parsing identity groups response: %w", err)
	}

	return groups, nil
}

// Query implements ruckus.IdentityGroupsClient.Query.
func (c *IdentityGroupsClient) Query(ctx context.Context, query *ruckus.Query) (*ruckus.QueryResult[ruckus.IdentityGroup], error) {
	resp, err := c.httpClient.Post(ctx, "/identityGroups/query", queryOrDefault(query))
	if err != nil {
		return nil, fmt.Errorf("querying identity groups: %w", err)
	}

	var result ruckus.QueryResult[ruckus.IdentityGroup]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing identity groups query response: %w", err)
	}

	return &result, nil
}

// Get implements ruckus.IdentityGroupsClient.Get.
func (c *IdentityGroupsClient) Get(ctx context.Context, groupID string) (*ruckus.IdentityGroup, error) {
	path := fmt.Sprintf("/identityGroups/%s", groupID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("getting identity group: %w", err), "identity group", groupID)
	}

	var group ruckus.IdentityGroup
	if err := json.Unmarshal(resp.Body, &group); err != nil {
		return nil, fmt.Errorf("parsing identity group response: %w", err)
	}

	return &group, nil
}

// Create implements ruckus.IdentityGroupsClient.Create.
func (c *IdentityGroupsClient) Create(ctx context.Context, group *ruckus.IdentityGroup) (*ruckus.IdentityGroup, error) {
	if group == nil || group.Name == "" {
		return nil, ruckus.ErrGroupNameRequired
	}

	resp, err := c.httpClient.Post(ctx, "/identityGroups", group)
	if err != nil {
		return nil, fmt.Errorf("creating identity group: %w", err)
	}

	var created ruckus.IdentityGroup
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("parsing identity group response: %w", err)
	}

	return &created, nil
}

// Update implements ruckus.IdentityGroupsClient.Update.
func (c *IdentityGroupsClient) Update(ctx context.Context, groupID string, updates map[string]interface{}) (*ruckus.IdentityGroup, error) {
	path := fmt.Sprintf("/identityGroups/%s", groupID)

	resp, err := c.httpClient.Put(ctx, path, updates)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("updating identity group: %w", err), "identity group", groupID)
	}

	var group ruckus.IdentityGroup
	if err := json.Unmarshal(resp.Body, &group); err != nil {
		return nil, fmt.Errorf("parsing identity group response: %w", err)
	}

	return &group, nil
}

// Delete implements ruckus.IdentityGroupsClient.Delete.
func (c *IdentityGroupsClient) Delete(ctx context.Context, groupID string) error {
	path := fmt.Sprintf("/identityGroups/%s", groupID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("deleting identity group: %w", err), "identity group", groupID)
	}

	return nil
}

// LinkDPSKPool implements ruckus.IdentityGroupsClient.LinkDPSKPool.
func (c *IdentityGroupsClient) LinkDPSKPool(ctx context.Context, groupID, dpskPoolID string) error {
	path := fmt.Sprintf("/identityGroups/%s/dpskServices/%s", groupID, dpskPoolID)

	_, err := c.httpClient.Put(ctx, path, nil)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("linking DPSK pool: %w", err), "identity group", groupID)
	}

	return nil
}

// LinkPolicySet implements ruckus.IdentityGroupsClient.LinkPolicySet.
func (c *IdentityGroupsClient) LinkPolicySet(ctx context.Context, groupID, policySetID string) error {
	path := fmt.Sprintf("/identityGroups/%s/policySets/%s", groupID, policySetID)

	_, err := c.httpClient.Put(ctx, path, nil)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("linking policy set: %w", err), "identity group", groupID)
	}

	return nil
}

// AddIdentity implements ruckus.IdentityGroupsClient.AddIdentity.
func (c *IdentityGroupsClient) AddIdentity(ctx context.Context, groupID string, identity *ruckus.Identity) (*ruckus.Identity, error) {
	path := fmt.Sprintf("/identityGroups/%s/identities", groupID)

	resp, err := c.httpClient.Post(ctx, path, identity)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("adding identity to group: %w", err), "identity group", groupID)
	}

	var created ruckus.Identity
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("parsing identity response: %w", err)
	}

	return &created, nil
}
