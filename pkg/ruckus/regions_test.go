package ruckus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

func TestRegionHost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		region     string
		wantHost   string
		recognized bool
	}{
		{"empty defaults to na", "", "api.ruckus.cloud", true},
		{"na", "na", "api.ruckus.cloud", true},
		{"eu", "eu", "api.eu.ruckus.cloud", true},
		{"asia", "asia", "api.asia.ruckus.cloud", true},
		{"unknown falls back to na", "mars", "api.ruckus.cloud", false},
		{"uppercase is not recognized", "EU", "api.ruckus.cloud", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			host, recognized := ruckus.RegionHost(testCase.region)
			assert.Equal(t, testCase.wantHost, host)
			assert.Equal(t, testCase.recognized, recognized)
		})
	}
}

func TestBaseURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://api.eu.ruckus.cloud", ruckus.BaseURL("eu"))
	assert.Equal(t, "https://api.ruckus.cloud", ruckus.BaseURL(""))
	assert.Equal(t, "https://api.ruckus.cloud", ruckus.BaseURL("nope"))
}

func TestRegions(t *testing.T) {
	t.Parallel()

	regions := ruckus.Regions()
	assert.Equal(t, []string{"na", "eu", "asia"}, regions)

	// Every advertised region resolves to itself, not the fallback.
	for _, region := range regions {
		_, recognized := ruckus.RegionHost(region)
		assert.True(t, recognized, "region %s should be recognized", region)
	}
}
