// Package http implements the HTTP pipeline shared by all resource clients:
// URL construction against the regional base, bearer token injection, status
// code classification into typed errors, and content-type aware decoding.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/wavelabs-io/ruckusone/internal/auth"
	"github.com/wavelabs-io/ruckusone/internal/constants"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

// Request represents an API request.
type Request struct {
	Method string
	Path   string
	Query  url.Values

	// Body is JSON-marshaled unless it is a []byte, which is sent as-is
	// (CSV import and similar payloads). Mutually exclusive with FormData.
	Body interface{}

	// FormData is sent URL-encoded with the form content type.
	FormData url.Values

	// Headers are applied last and win over computed headers.
	Headers map[string]string

	// Raw marks the request as expecting a non-JSON payload; the body is
	// returned verbatim on success. Non-2xx responses are still classified.
	Raw bool
}

// Response represents an API response.
type Response struct {
	StatusCode  int
	Headers     nethttp.Header
	Body        []byte
	ContentType string
}

// IsJSON reports whether the response declares a JSON payload, including
// vendor-suffixed types like application/vnd.ruckus.v1+json.
func (r *Response) IsJSON() bool {
	mediaType, _, err := mime.ParseMediaType(r.ContentType)
	if err != nil {
		return false
	}

	return mediaType == constants.ContentTypeJSON || strings.HasSuffix(mediaType, "+json")
}

// JSON unmarshals the response body into v.
func (r *Response) JSON(v interface{}) error {
	err := json.Unmarshal(r.Body, v)
	if err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// Decoded returns the decoded JSON document when the response declares JSON,
// and the raw bytes otherwise.
func (r *Response) Decoded() (interface{}, error) {
	if !r.IsJSON() || len(r.Body) == 0 {
		return r.Body, nil
	}

	var decoded interface{}

	err := json.Unmarshal(r.Body, &decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return decoded, nil
}

// Client is the low-level API client.
type Client struct {
	baseURL      string
	tokenManager auth.TokenManager
	httpClient   *nethttp.Client
	retryClient  *retryablehttp.Client
	logger       ruckus.Logger
	debug        bool
	userAgent    string
	interceptors *ruckus.InterceptorChain
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets a structured logger.
func WithLogger(logger ruckus.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPTimeout bounds each HTTP exchange.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables transport-level retries for 429 and 5xx responses.
// Retries are off by default.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryClient.RetryMax = retryMax
		c.retryClient.RetryWaitMin = waitMin
		c.retryClient.RetryWaitMax = waitMax
	}
}

// WithInterceptors installs an interceptor chain run around each request.
func WithInterceptors(chain *ruckus.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new API client. A nil tokenManager sends requests
// without an Authorization header.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		retryClient:  retryClient,
		userAgent:    constants.UserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.httpClient = client.retryClient.StandardClient()

	return client
}

// Do executes a request against the API.
//
// The returned Response is non-nil whenever an HTTP exchange completed, even
// when err is a classified API error, so callers can inspect the raw body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, bodyBytes, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	intercepted := &ruckus.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: httpReq.Header,
		Body:    bodyBytes,
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
		if err != nil {
			return nil, err
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	resp := &Response{
		StatusCode:  httpResp.StatusCode,
		Headers:     httpResp.Header,
		Body:        respBody,
		ContentType: httpResp.Header.Get("Content-Type"),
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         httpReq.URL.String(),
			"status_code": resp.StatusCode,
		})
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		classified := ruckus.ClassifyStatus(resp.StatusCode, extractErrorDetail(resp))
		c.runResponseInterceptors(ctx, intercepted, resp, classified)

		return resp, classified
	}

	c.runResponseInterceptors(ctx, intercepted, resp, nil)

	return resp, nil
}

func (c *Client) runResponseInterceptors(ctx context.Context, req *ruckus.Request, resp *Response, respErr error) {
	if c.interceptors == nil {
		return
	}

	intercepted := &ruckus.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Error:      respErr,
	}

	err := c.interceptors.ExecuteResponseInterceptors(ctx, req, intercepted)
	if err != nil && c.logger != nil {
		c.logger.Warn("response interceptor failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

//nolint:cyclop // Header and body assembly is a linear sequence of cases
func (c *Client) buildRequest(ctx context.Context, req *Request) (*nethttp.Request, []byte, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var (
		bodyReader io.Reader
		bodyBytes  []byte
	)

	// Every request declares the JSON content type unless the body says
	// otherwise; caller headers still win below.
	contentType := constants.ContentTypeJSON

	switch {
	case req.Body != nil && len(req.FormData) > 0:
		return nil, nil, ruckus.ErrBodyConflict
	case req.Body != nil:
		if raw, ok := req.Body.([]byte); ok {
			bodyBytes = raw
		} else {
			encoded, err := json.Marshal(req.Body)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to marshal request body: %w", err)
			}

			bodyBytes = encoded
		}

		bodyReader = bytes.NewReader(bodyBytes)
	case len(req.FormData) > 0:
		bodyBytes = []byte(req.FormData.Encode())
		bodyReader = bytes.NewReader(bodyBytes)
		contentType = constants.ContentTypeForm
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	httpReq.Header.Set("Content-Type", contentType)

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	// Caller headers win over computed ones.
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, bodyBytes, nil
}

// extractErrorDetail pulls a displayable detail from an error response:
// message field, then error field, then the decoded document, then the raw
// body text.
func extractErrorDetail(resp *Response) interface{} {
	if len(resp.Body) == 0 {
		return nil
	}

	if !resp.IsJSON() {
		return string(resp.Body)
	}

	var decoded interface{}

	err := json.Unmarshal(resp.Body, &decoded)
	if err != nil {
		return string(resp.Body)
	}

	if doc, ok := decoded.(map[string]interface{}); ok {
		if msg, ok := doc["message"].(string); ok && msg != "" {
			return msg
		}

		if errVal, ok := doc["error"].(string); ok && errVal != "" {
			return errVal
		}
	}

	return decoded
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodPatch,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodDelete,
		Path:   path,
	})
}

// DeleteWithBody performs a DELETE request carrying a JSON body; several
// bulk-delete endpoints take the target IDs this way.
func (c *Client) DeleteWithBody(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodDelete,
		Path:   path,
		Body:   body,
	})
}
