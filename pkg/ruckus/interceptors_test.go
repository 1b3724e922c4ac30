package ruckus_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	chain := ruckus.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	// Add multiple interceptors
	chain.AddRequestInterceptor(func(ctx context.Context, req *ruckus.Request) error {
		executionOrder = append(executionOrder, "first")
		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *ruckus.Request) error {
		executionOrder = append(executionOrder, "second")
		return nil
	})

	req := &ruckus.Request{
		Method: "GET",
		Path:   "/venues",
	}

	err := chain.ExecuteRequestInterceptors(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	chain := ruckus.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddResponseInterceptor(func(ctx context.Context, req *ruckus.Request, resp *ruckus.Response) error {
		executionOrder = append(executionOrder, "first")
		return nil
	})

	chain.AddResponseInterceptor(func(ctx context.Context, req *ruckus.Request, resp *ruckus.Response) error {
		executionOrder = append(executionOrder, "second")
		return nil
	})

	req := &ruckus.Request{
		Method: "GET",
		Path:   "/venues",
	}
	resp := &ruckus.Response{
		StatusCode: 200,
	}

	err := chain.ExecuteResponseInterceptors(ctx, req, resp)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestHeaderInterceptor(t *testing.T) {
	headers := map[string]string{
		"X-Custom-Header": "custom-value",
		"X-Tenant-Hint":   "tenant-1",
	}

	interceptor := ruckus.HeaderInterceptor(headers)
	ctx := context.Background()
	req := &ruckus.Request{
		Method: "GET",
		Path:   "/venues",
	}

	err := interceptor(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "custom-value", req.Headers.Get("X-Custom-Header"))
	assert.Equal(t, "tenant-1", req.Headers.Get("X-Tenant-Hint"))
}

func TestAuthenticationInterceptor(t *testing.T) {
	tokenProvider := func(ctx context.Context) (string, error) {
		return "test-token", nil
	}

	interceptor := ruckus.AuthenticationInterceptor(tokenProvider)
	ctx := context.Background()
	req := &ruckus.Request{
		Method: "GET",
		Path:   "/venues",
	}

	err := interceptor(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", req.Headers.Get("Authorization"))
}

func TestRateLimitInterceptor(t *testing.T) {
	interceptor := ruckus.RateLimitInterceptor(100)
	ctx := context.Background()

	// Burst up to the bucket size passes without blocking.
	for range 100 {
		err := interceptor(ctx, &ruckus.Request{Method: "GET", Path: "/venues"})
		require.NoError(t, err)
	}

	// With the bucket drained, a cancelled context aborts the wait.
	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	err := interceptor(cancelled, &ruckus.Request{Method: "GET", Path: "/venues"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMetricsCollector(t *testing.T) {
	collector := ruckus.NewMetricsCollector()

	var notifiedEndpoint string
	var notifiedMetrics *ruckus.Metrics

	collector.SetOnChange(func(endpoint string, metrics *ruckus.Metrics) {
		notifiedEndpoint = endpoint
		notifiedMetrics = metrics
	})

	requestInterceptor := ruckus.MetricsRequestInterceptor(collector)
	responseInterceptor := ruckus.MetricsResponseInterceptor(collector)

	ctx := context.Background()
	req := &ruckus.Request{
		Method: "GET",
		Path:   "/venues",
	}

	err := requestInterceptor(ctx, req)
	require.NoError(t, err)

	// Simulate some delay
	time.Sleep(10 * time.Millisecond)

	resp := &ruckus.Response{
		StatusCode: 200,
	}
	err = responseInterceptor(ctx, req, resp)
	require.NoError(t, err)

	assert.Equal(t, "GET /venues", notifiedEndpoint)
	assert.NotNil(t, notifiedMetrics)
	assert.Equal(t, int64(1), notifiedMetrics.TotalRequests)
	assert.Equal(t, int64(0), notifiedMetrics.TotalErrors)
	assert.True(t, notifiedMetrics.AverageLatency > 0)

	// A failed exchange counts as an error.
	req2 := &ruckus.Request{
		Method: "GET",
		Path:   "/venues",
	}
	resp2 := &ruckus.Response{
		StatusCode: 500,
	}
	err = responseInterceptor(ctx, req2, resp2)
	require.NoError(t, err)

	metrics := collector.GetMetrics("GET /venues")
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)

	assert.Nil(t, collector.GetMetrics("GET /unknown"))
}
