package r1client_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wavelabs-io/ruckusone/pkg/r1client"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &ruckus.Config{
			Region:       ruckus.RegionEU,
			TenantID:     "tenant-id",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
		}

		client, err := r1client.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "https://api.eu.ruckus.cloud", client.BaseURL())
	})

	t.Run("rejects nil config", func(t *testing.T) {
		t.Parallel()

		_, err := r1client.New(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ruckus.ErrConfigRequired)
	})

	t.Run("rejects missing credentials", func(t *testing.T) {
		t.Parallel()

		_, err := r1client.New(&ruckus.Config{Region: ruckus.RegionNA})
		require.Error(t, err)
		assert.ErrorIs(t, err, ruckus.ErrCredentialsRequired)
	})
}

func TestNewWithClientCredentials(t *testing.T) {
	t.Parallel()

	client, err := r1client.NewWithClientCredentials("asia", "tenant-id", "client-id", "client-secret")
	require.NoError(t, err)
	assert.Equal(t, "https://api.asia.ruckus.cloud", client.BaseURL())
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := r1client.NewWithToken("", "bearer-token")
	require.NoError(t, err)
	assert.Equal(t, "https://api.ruckus.cloud", client.BaseURL())

	token, err := client.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bearer-token", token)
}
