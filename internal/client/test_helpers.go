package client

import (
	internalhttp "github.com/wavelabs-io/ruckusone/internal/http"
)

// NewTestClient creates a client pointed at a test server with no token
// manager, so requests carry no Authorization header.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initResourceClients()

	return client
}
