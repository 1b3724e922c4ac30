package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wavelabs-io/ruckusone/internal/http"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

// queryOrDefault substitutes the API defaults for a nil query.
func queryOrDefault(query *ruckus.Query) *ruckus.Query {
	if query == nil {
		return ruckus.NewQuery()
	}

	return query
}

// scopedToVenue returns a copy of the query filtered to one venue.
func scopedToVenue(query *ruckus.Query, venueID string) *ruckus.Query {
	scoped := *queryOrDefault(query)

	filters := make(map[string][]string, len(scoped.Filters)+1)
	for key, values := range scoped.Filters {
		filters[key] = values
	}

	filters["venueId"] = []string{venueID}
	scoped.Filters = filters

	return &scoped
}

// VenuesClient implements ruckus.VenuesClient.
type VenuesClient struct {
	httpClient *http.Client
}

// NewVenuesClient creates a new venues client.
func NewVenuesClient(httpClient *http.Client) *VenuesClient {
	return &VenuesClient{httpClient: httpClient}
}

// Query implements ruckus.VenuesClient.Query.
func (c *VenuesClient) Query(ctx context.Context, query *ruckus.Query) (*ruckus.QueryResult[ruckus.Venue], error) {
	resp, err := c.httpClient.Post(ctx, "/venues/query", queryOrDefault(query))
	if err != nil {
		return nil, fmt.Errorf("querying venues: %w", err)
	}

	var result ruckus.QueryResult[ruckus.Venue]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing venues query response: %w", err)
	}

	return &result, nil
}

// Get implements ruckus.VenuesClient.Get.
func (c *VenuesClient) Get(ctx context.Context, venueID string) (*ruckus.Venue, error) {
	path := fmt.Sprintf("/venues/%s", venueID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("getting venue: %w", err), "venue", venueID)
	}

	var venue ruckus.Venue
	if err := json.Unmarshal(resp.Body, &venue); err != nil {
		return nil, fmt.Errorf("parsing venue response: %w", err)
	}

	return &venue, nil
}

// Create implements ruckus.VenuesClient.Create.
func (c *VenuesClient) Create(ctx context.Context, request *ruckus.VenueCreateRequest) (*ruckus.Venue, error) {
	if request == nil || request.Name == "" {
		return nil, ruckus.ErrVenueNameRequired
	}

	resp, err := c.httpClient.Post(ctx, "/venues", request)
	if err != nil {
		return nil, fmt.Errorf("creating venue: %w", err)
	}

	var venue ruckus.Venue
	if err := json.Unmarshal(resp.Body, &venue); err != nil {
		return nil, fmt.Errorf("parsing venue response: %w", err)
	}

	return &venue, nil
}

// Update implements ruckus.VenuesClient.Update.
func (c *VenuesClient) Update(ctx context.Context, venueID string, request *ruckus.VenueUpdateRequest) (*ruckus.Venue, error) {
	path := fmt.Sprintf("/venues/%s", venueID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("updating venue: %w", err), "venue", venueID)
	}

	var venue ruckus.Venue
	if err := json.Unmarshal(resp.Body, &venue); err != nil {
		return nil, fmt.Errorf("parsing venue response: %w", err)
	}

	return &venue, nil
}

// Delete implements ruckus.VenuesClient.Delete.
func (c *VenuesClient) Delete(ctx context.Context, venueID string) error {
	path := fmt.Sprintf("/venues/%s", venueID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return ruckus.MarkNotFound(fmt.Errorf("deleting venue: %w", err), "venue", venueID)
	}

	return nil
}

// APs implements ruckus.VenuesClient.APs.
func (c *VenuesClient) APs(ctx context.Context, venueID string) ([]ruckus.AccessPoint, error) {
	path := fmt.Sprintf("/venues/%s/aps", venueID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, ruckus.MarkNotFound(fmt.Errorf("listing venue APs: %w", err), "venue", venueID)
	}

	var aps []ruckus.AccessPoint
	if err := json.Unmarshal(resp.Body, &aps); err != nil {
		return nil, fmt.Errorf("parsing venue APs response: %w", err)
	}

	return aps, nil
}

// QuerySwitches implements ruckus.VenuesClient.QuerySwitches.
func (c *VenuesClient) QuerySwitches(ctx context.Context, venueID string, query *ruckus.Query) (*ruckus.QueryResult[ruckus.Switch], error) {
	resp, err := c.httpClient.Post(ctx, "/venues/switches/query", scopedToVenue(query, venueID))
	if err != nil {
		return nil, fmt.Errorf("querying venue switches: %w", err)
	}

	var result ruckus.QueryResult[ruckus.Switch]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing venue switches response: %w", err)
	}

	return &result, nil
}

// QueryWLANs implements ruckus.VenuesClient.QueryWLANs.
func (c *VenuesClient) QueryWLANs(ctx context.Context, venueID string, query *ruckus.Query) (*ruckus.QueryResult[ruckus.WLAN], error) {
	resp, err := c.httpClient.Post(ctx, "/wifiNetworks/query", scopedToVenue(query, venueID))
	if err != nil {
		return nil, fmt.Errorf("querying venue networks: %w", err)
	}

	var result ruckus.QueryResult[ruckus.WLAN]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing venue networks response: %w", err)
	}

	return &result, nil
}

// QueryClients implements ruckus.VenuesClient.QueryClients.
func (c *VenuesClient) QueryClients(ctx context.Context, venueID string, query *ruckus.Query) (*ruckus.QueryResult[ruckus.WirelessClient], error) {
	resp, err := c.httpClient.Post(ctx, "/clients/query", scopedToVenue(query, venueID))
	if err != nil {
		return nil, fmt.Errorf("querying venue clients: %w", err)
	}

	var result ruckus.QueryResult[ruckus.WirelessClient]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing venue clients response: %w", err)
	}

	return &result, nil
}
