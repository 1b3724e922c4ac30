// Package client implements the ruckus.Client interface: token manager
// selection, regional endpoint resolution, and explicit wiring of the
// per-resource clients.
package client

import (
	"context"
	"fmt"

	"github.com/wavelabs-io/ruckusone/internal/auth"
	"github.com/wavelabs-io/ruckusone/internal/constants"
	"github.com/wavelabs-io/ruckusone/internal/http"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

// Client implements the ruckus.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       ruckus.Logger

	// Resource clients
	venues         ruckus.VenuesClient
	accessPoints   ruckus.AccessPointsClient
	switches       ruckus.SwitchesClient
	wlans          ruckus.WLANsClient
	vlans          ruckus.VLANsClient
	dpsk           ruckus.DPSKClient
	identities     ruckus.IdentitiesClient
	identityGroups ruckus.IdentityGroupsClient
}

// New creates a new RUCKUS One API client from config.
func New(config *ruckus.Config) (*Client, error) {
	if config == nil {
		return nil, ruckus.ErrConfigRequired
	}

	baseURL := resolveBaseURL(config)

	tokenManager, err := createTokenManager(config, baseURL)
	if err != nil {
		return nil, err
	}

	return NewWithTokenManager(config, baseURL, tokenManager), nil
}

// NewWithTokenManager creates a client around an existing token manager. The
// CLI uses this to plug in its config-persisting manager.
func NewWithTokenManager(config *ruckus.Config, baseURL string, tokenManager auth.TokenManager) *Client {
	httpClient := http.NewClient(baseURL, tokenManager, httpOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      baseURL,
		logger:       config.Logger,
	}

	client.initResourceClients()

	return client
}

// initResourceClients wires the per-resource clients. Each one receives its
// dependencies explicitly; nothing registers itself on a shared object.
func (c *Client) initResourceClients() {
	c.venues = NewVenuesClient(c.httpClient)
	c.accessPoints = NewAccessPointsClient(c.httpClient)
	c.switches = NewSwitchesClient(c.httpClient)
	c.wlans = NewWLANsClient(c.httpClient)
	c.vlans = NewVLANsClient(c.httpClient)
	c.dpsk = NewDPSKClient(c.httpClient)
	c.identities = NewIdentitiesClient(c.httpClient)
	c.identityGroups = NewIdentityGroupsClient(c.httpClient)
}

// resolveBaseURL maps the configured region to its API base URL, warning on
// unrecognized codes. The fallback to "na" matches the cloud's documented
// default.
func resolveBaseURL(config *ruckus.Config) string {
	host, recognized := ruckus.RegionHost(config.Region)
	if !recognized && config.Logger != nil {
		config.Logger.Warn("unrecognized region, falling back to default", map[string]interface{}{
			"region":  config.Region,
			"default": ruckus.DefaultRegion,
		})
	}

	return "https://" + host
}

// createTokenManager selects the token manager based on config: a static
// token wins over client credentials.
func createTokenManager(config *ruckus.Config, baseURL string) (auth.TokenManager, error) {
	if config.AccessToken != "" {
		return auth.NewStaticTokenManager(config.AccessToken), nil
	}

	if config.ClientID == "" || config.ClientSecret == "" || config.TenantID == "" {
		return nil, ruckus.ErrCredentialsRequired
	}

	return auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		TenantID:     config.TenantID,
		BaseURL:      baseURL,
	}), nil
}

// httpOptions translates config into pipeline options.
func httpOptions(config *ruckus.Config) []http.Option {
	opts := []http.Option{}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.Interceptors != nil {
		opts = append(opts, http.WithInterceptors(config.Interceptors))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		if waitMin <= 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax <= 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	return opts
}

// Venues returns the venues resource client.
func (c *Client) Venues() ruckus.VenuesClient {
	return c.venues
}

// AccessPoints returns the access points resource client.
func (c *Client) AccessPoints() ruckus.AccessPointsClient {
	return c.accessPoints
}

// Switches returns the switches resource client.
func (c *Client) Switches() ruckus.SwitchesClient {
	return c.switches
}

// WLANs returns the Wi-Fi networks resource client.
func (c *Client) WLANs() ruckus.WLANsClient {
	return c.wlans
}

// VLANs returns the VLAN pools resource client.
func (c *Client) VLANs() ruckus.VLANsClient {
	return c.vlans
}

// DPSK returns the DPSK services resource client.
func (c *Client) DPSK() ruckus.DPSKClient {
	return c.dpsk
}

// Identities returns the identities resource client.
func (c *Client) Identities() ruckus.IdentitiesClient {
	return c.identities
}

// IdentityGroups returns the identity groups resource client.
func (c *Client) IdentityGroups() ruckus.IdentityGroupsClient {
	return c.identityGroups
}

// Token returns the current bearer token, acquiring one if needed.
func (c *Client) Token(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", ruckus.ErrNoTokenManager
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// BaseURL returns the resolved regional API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient exposes the underlying pipeline for raw requests.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}
