package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/wavelabs-io/ruckusone/internal/constants"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

// TokenManager handles the bearer token lifecycle for API requests.
type TokenManager interface {
	// GetToken returns a valid access token, acquiring one if needed.
	GetToken(ctx context.Context) (string, error)

	// RefreshToken forces a new token exchange regardless of cached state.
	RefreshToken(ctx context.Context) error

	// SetToken manually sets the access token.
	SetToken(token string, expiresAt time.Time)
}

// ClientCredentialsConfig configures the OAuth2 client_credentials exchange
// against the regional token endpoint.
type ClientCredentialsConfig struct {
	ClientID     string
	ClientSecret string
	TenantID     string

	// BaseURL is the regional API base, e.g. https://api.eu.ruckus.cloud.
	BaseURL string

	// HTTPClient overrides the transport used for the token exchange.
	HTTPClient *http.Client
}

// ClientCredentialsTokenManager exchanges client credentials for bearer
// tokens and caches them until the safety margin is reached.
type ClientCredentialsTokenManager struct {
	config     *ClientCredentialsConfig
	store      *TokenStore
	httpClient *http.Client

	// mutex serializes token exchanges so concurrent callers hitting an
	// expired cache trigger a single request.
	mutex sync.Mutex
}

// NewClientCredentialsTokenManager creates a token manager for the given
// credentials.
func NewClientCredentialsTokenManager(config *ClientCredentialsConfig) *ClientCredentialsTokenManager {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.DefaultHTTPTimeout}
	}

	return &ClientCredentialsTokenManager{
		config:     config,
		store:      NewTokenStore(),
		httpClient: httpClient,
	}
}

// TokenURL returns the tenant-scoped token endpoint.
func (m *ClientCredentialsTokenManager) TokenURL() string {
	return strings.TrimSuffix(m.config.BaseURL, "/") + "/oauth2/token/" + m.config.TenantID
}

// GetToken returns the cached token, or performs a new exchange when the
// cache is empty or within the safety margin of expiry.
func (m *ClientCredentialsTokenManager) GetToken(ctx context.Context) (string, error) {
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	token, err := m.requestToken(ctx)
	if err != nil {
		return "", err
	}

	m.store.Set(token)

	return token.AccessToken, nil
}

// RefreshToken forces a new token exchange.
func (m *ClientCredentialsTokenManager) RefreshToken(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	token, err := m.requestToken(ctx)
	if err != nil {
		return err
	}

	m.store.Set(token)

	return nil
}

// SetToken manually sets the access token.
func (m *ClientCredentialsTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

// TokenExpiry returns the stored token's expiration time, or the zero time
// when no token is cached.
func (m *ClientCredentialsTokenManager) TokenExpiry() time.Time {
	token := m.store.Get()
	if token == nil {
		return time.Time{}
	}

	return token.ExpiresAt
}

// requestToken performs the client_credentials exchange. The caller holds
// the mutex.
func (m *ClientCredentialsTokenManager) requestToken(ctx context.Context) (*Token, error) {
	if m.config.ClientID == "" || m.config.ClientSecret == "" || m.config.TenantID == "" {
		return nil, ruckus.ErrCredentialsRequired
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", m.config.ClientID)
	form.Set("client_secret", m.config.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.TokenURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}

	req.Header.Set("Content-Type", constants.ContentTypeForm)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		// Transport failures during the exchange are authentication
		// failures: the caller could not obtain a token.
		return nil, &ruckus.AuthenticationError{APIError: ruckus.APIError{
			Message: fmt.Sprintf("token request failed: %v", err),
		}}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ruckus.AuthenticationError{APIError: ruckus.APIError{
			Message: fmt.Sprintf("failed to read token response: %v", err),
		}}
	}

	// Any non-2xx from the token endpoint, a 500 included, means the
	// exchange failed.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := tokenErrorDetail(body)

		return nil, &ruckus.AuthenticationError{APIError: ruckus.APIError{
			StatusCode: resp.StatusCode,
			Detail:     detail,
			Message:    fmt.Sprintf("authentication failed: %v", detail),
		}}
	}

	var token Token

	err = json.Unmarshal(body, &token)
	if err != nil {
		return nil, &ruckus.AuthenticationError{APIError: ruckus.APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to decode token response: %v", err),
		}}
	}

	// A 2xx without an access token is a failed authentication. Nothing is
	// cached so the next call retries the exchange.
	if token.AccessToken == "" {
		return nil, &ruckus.AuthenticationError{APIError: ruckus.APIError{
			StatusCode: resp.StatusCode,
			Message:    "no access token in response",
		}}
	}

	expiresIn := token.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = int64(constants.DefaultTokenLifetime / time.Second)
	}

	token.ExpiresAt = time.Now().Add(time.Duration(expiresIn)*time.Second - constants.TokenExpirySafetyMargin)

	return &token, nil
}

// tokenErrorDetail extracts a displayable detail from a failed token
// response body: message field, then error/error_description, then the
// decoded document, then the raw text.
func tokenErrorDetail(body []byte) interface{} {
	var decoded map[string]interface{}

	err := json.Unmarshal(body, &decoded)
	if err != nil {
		return string(body)
	}

	if msg, ok := decoded["message"].(string); ok && msg != "" {
		return msg
	}

	if errVal, ok := decoded["error"].(string); ok && errVal != "" {
		if desc, ok := decoded["error_description"].(string); ok && desc != "" {
			return errVal + ": " + desc
		}

		return errVal
	}

	return decoded
}

// StaticTokenManager serves a pre-acquired bearer token. It never refreshes;
// when the token expires, API calls start failing with 401 and the caller
// must supply a new one.
type StaticTokenManager struct {
	store *TokenStore
}

// NewStaticTokenManager creates a token manager around a fixed token.
func NewStaticTokenManager(accessToken string) *StaticTokenManager {
	store := NewTokenStore()
	store.Set(&Token{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})

	return &StaticTokenManager{store: store}
}

// GetToken returns the static token.
func (m *StaticTokenManager) GetToken(_ context.Context) (string, error) {
	token := m.store.Get()
	if token == nil || token.AccessToken == "" {
		return "", ruckus.ErrNotAuthenticated
	}

	return token.AccessToken, nil
}

// RefreshToken fails: static tokens have no credentials to exchange.
func (m *StaticTokenManager) RefreshToken(_ context.Context) error {
	return ruckus.ErrStaticTokenNoRefresh
}

// SetToken replaces the static token.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}
