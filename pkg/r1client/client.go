// Package r1client provides the main entry point for creating RUCKUS One API clients
package r1client

import (
	"fmt"

	"github.com/wavelabs-io/ruckusone/internal/client"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

// New creates a new RUCKUS One API client from config. The configured region
// selects the API cluster; unrecognized codes resolve to "na".
func New(config *ruckus.Config) (ruckus.Client, error) {
	if config == nil {
		return nil, ruckus.ErrConfigRequired
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithClientCredentials creates a new client using OAuth2 client
// credentials for the given tenant and region.
func NewWithClientCredentials(region, tenantID, clientID, clientSecret string) (ruckus.Client, error) {
	return New(&ruckus.Config{
		Region:       region,
		TenantID:     tenantID,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

// NewWithToken creates a new client using a pre-acquired bearer token. The
// token is used as-is and never refreshed.
func NewWithToken(region, token string) (ruckus.Client, error) {
	return New(&ruckus.Config{
		Region:      region,
		AccessToken: token,
	})
}
