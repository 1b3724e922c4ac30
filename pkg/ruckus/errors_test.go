package ruckus_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		detail     interface{}
		check      func(t *testing.T, err error)
	}{
		{
			name:       "401 produces authentication error",
			statusCode: 401,
			detail:     "invalid_client",
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, ruckus.IsAuthentication(err))
				assert.Contains(t, err.Error(), "authentication failed")
				assert.Contains(t, err.Error(), "invalid_client")
			},
		},
		{
			name:       "404 produces not found error",
			statusCode: 404,
			detail:     "no such venue",
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, ruckus.IsNotFound(err))
			},
		},
		{
			name:       "400 produces validation error",
			statusCode: 400,
			detail:     "name must not be empty",
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, ruckus.IsValidation(err))
			},
		},
		{
			name:       "429 produces rate limit error",
			statusCode: 429,
			detail:     nil,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, ruckus.IsRateLimit(err))
			},
		},
		{
			name:       "500 produces server error",
			statusCode: 500,
			detail:     "internal error",
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, ruckus.IsServerError(err))
			},
		},
		{
			name:       "599 still counts as server error",
			statusCode: 599,
			detail:     nil,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, ruckus.IsServerError(err))
			},
		},
		{
			name:       "unmapped status produces plain API error",
			statusCode: 418,
			detail:     "teapot",
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.False(t, ruckus.IsAuthentication(err))
				assert.False(t, ruckus.IsNotFound(err))
				assert.False(t, ruckus.IsValidation(err))
				assert.False(t, ruckus.IsRateLimit(err))
				assert.False(t, ruckus.IsServerError(err))
				assert.Contains(t, err.Error(), "API error occurred")
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := ruckus.ClassifyStatus(testCase.statusCode, testCase.detail)
			require.Error(t, err)
			testCase.check(t, err)

			assert.Equal(t, testCase.statusCode, ruckus.StatusCodeOf(err))
		})
	}
}

func TestMarkNotFound(t *testing.T) {
	t.Parallel()

	t.Run("attaches resource and ID", func(t *testing.T) {
		t.Parallel()

		err := ruckus.ClassifyStatus(404, "gone")
		marked := ruckus.MarkNotFound(err, "venue", "venue-1")

		notFound := &ruckus.NotFoundError{}
		require.ErrorAs(t, marked, &notFound)
		assert.Equal(t, "venue", notFound.Resource)
		assert.Equal(t, "venue-1", notFound.ID)
		assert.Equal(t, "venue venue-1 not found", marked.Error())
	})

	t.Run("passes other errors through", func(t *testing.T) {
		t.Parallel()

		err := ruckus.ClassifyStatus(400, "bad request")
		marked := ruckus.MarkNotFound(err, "venue", "venue-1")

		assert.Equal(t, err, marked)
		assert.True(t, ruckus.IsValidation(marked))
	})

	t.Run("survives wrapping", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("request failed: %w", ruckus.ClassifyStatus(404, nil))
		marked := ruckus.MarkNotFound(err, "switch", "sw-9")

		assert.True(t, ruckus.IsNotFound(marked))
		assert.Contains(t, marked.Error(), "switch sw-9 not found")
	})
}

func TestStatusCodeOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 429, ruckus.StatusCodeOf(ruckus.ClassifyStatus(429, nil)))
	assert.Equal(t, 0, ruckus.StatusCodeOf(errors.New("plain error")))
	assert.Equal(t, 0, ruckus.StatusCodeOf(nil))
}

func TestAPIError_DetailString(t *testing.T) {
	t.Parallel()

	t.Run("string detail", func(t *testing.T) {
		t.Parallel()

		err := &ruckus.APIError{StatusCode: 400, Detail: "bad input"}
		assert.Equal(t, "bad input", err.DetailString())
	})

	t.Run("structured detail renders as JSON", func(t *testing.T) {
		t.Parallel()

		err := &ruckus.APIError{
			StatusCode: 400,
			Detail:     map[string]interface{}{"field": "name"},
		}
		assert.JSONEq(t, `{"field":"name"}`, err.DetailString())
	})

	t.Run("nil detail", func(t *testing.T) {
		t.Parallel()

		err := &ruckus.APIError{StatusCode: 500}
		assert.Empty(t, err.DetailString())
	})
}

func TestTypedErrors_UnwrapToAPIError(t *testing.T) {
	t.Parallel()

	for _, err := range []error{
		ruckus.ClassifyStatus(401, "x"),
		ruckus.ClassifyStatus(404, "x"),
		ruckus.ClassifyStatus(400, "x"),
		ruckus.ClassifyStatus(429, "x"),
		ruckus.ClassifyStatus(503, "x"),
	} {
		apiErr := &ruckus.APIError{}
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "x", apiErr.Detail)
	}
}
