package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wavelabs-io/ruckusone/internal/auth"
	"github.com/wavelabs-io/ruckusone/internal/client"
	"github.com/wavelabs-io/ruckusone/internal/constants"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
	"gopkg.in/yaml.v3"
)

// Output format constants shared by all commands.
const (
	OutputFormatTable = constants.FormatTable
	OutputFormatJSON  = constants.FormatJSON
	OutputFormatYAML  = constants.FormatYAML
)

// Config holds the CLI configuration persisted in ~/.r1/config.yml.
type Config struct {
	Region         string     `json:"region"                     yaml:"region"`
	TenantID       string     `json:"tenant_id"                  yaml:"tenant_id"`
	ClientID       string     `json:"client_id"                  yaml:"client_id"`
	ClientSecret   string     `json:"client_secret,omitempty"    yaml:"client_secret,omitempty"`
	Token          string     `json:"token,omitempty"            yaml:"token,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty" yaml:"token_expires_at,omitempty"`
	LastRefreshed  *time.Time `json:"last_refreshed,omitempty"   yaml:"last_refreshed,omitempty"`
	Output         string     `json:"output,omitempty"           yaml:"output,omitempty"`
}

// persistedKeys are the viper keys written to the config file. Flag-only
// settings like verbose stay out.
var persistedKeys = []string{
	"region",
	"tenant_id",
	"client_id",
	"client_secret",
	"token",
	"token_expires_at",
	"last_refreshed",
	"output",
}

func loadConfig() *Config {
	config := &Config{
		Region:       viper.GetString("region"),
		TenantID:     viper.GetString("tenant_id"),
		ClientID:     viper.GetString("client_id"),
		ClientSecret: viper.GetString("client_secret"),
		Token:        viper.GetString("token"),
		Output:       viper.GetString("output"),
	}

	if raw := viper.GetString("token_expires_at"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			config.TokenExpiresAt = &parsed
		}
	}

	if raw := viper.GetString("last_refreshed"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			config.LastRefreshed = &parsed
		}
	}

	return config
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".r1")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.yml"), nil
}

// saveConfig writes the persisted viper settings back to the config file.
func saveConfig() error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	settings := make(map[string]interface{})

	for _, key := range persistedKeys {
		if value := viper.Get(key); value != nil && value != "" {
			settings[key] = value
		}
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CreateClient builds an API client from the stored CLI configuration. A
// cached token is seeded into the token manager so repeated invocations do
// not burn a credentials exchange each time; refreshed tokens are persisted
// back to the config file.
func CreateClient() (ruckus.Client, error) {
	config := loadConfig()

	if config.ClientID == "" || config.ClientSecret == "" || config.TenantID == "" {
		// No credentials; a stored token still works until it expires.
		if config.Token != "" {
			return client.New(&ruckus.Config{
				Region:      config.Region,
				AccessToken: config.Token,
			})
		}

		return nil, constants.ErrNoCredentialsConfigured
	}

	baseURL := ruckus.BaseURL(config.Region)

	var initialExpiry time.Time
	if config.TokenExpiresAt != nil {
		initialExpiry = *config.TokenExpiresAt
	}

	tokenManager := auth.NewConfigTokenManager(&auth.ClientCredentialsConfig{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		TenantID:     config.TenantID,
		BaseURL:      baseURL,
	}, NewConfigPersister(), config.Token, initialExpiry)

	clientConfig := &ruckus.Config{
		Region:   config.Region,
		TenantID: config.TenantID,
		Debug:    viper.GetBool("verbose"),
	}

	return client.NewWithTokenManager(clientConfig, baseURL, tokenManager), nil
}

// renderJSON writes data to stdout as indented JSON.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// renderYAML writes data to stdout as YAML.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// renderStructured dispatches to the JSON or YAML renderer, returning false
// when the selected output format is the table default.
func renderStructured(data interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return true, renderJSON(data)
	case OutputFormatYAML:
		return true, renderYAML(data)
	default:
		return false, nil
	}
}

// addQueryFlags registers the shared pagination and filtering flags used by
// all list commands.
func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page", 0, "page number to fetch")
	cmd.Flags().Int("page-size", constants.DefaultPageSize, "number of results per page")
	cmd.Flags().String("search", "", "search string")
	cmd.Flags().String("sort-field", "", "field to sort by")
	cmd.Flags().String("sort-order", "", "sort order (asc, desc)")
}

// queryFromFlags builds a Query from the shared list flags.
func queryFromFlags(cmd *cobra.Command) *ruckus.Query {
	query := ruckus.NewQuery()

	if page, err := cmd.Flags().GetInt("page"); err == nil && page > 0 {
		query = query.WithPage(page)
	}

	if pageSize, err := cmd.Flags().GetInt("page-size"); err == nil && pageSize > 0 {
		query = query.WithPageSize(pageSize)
	}

	if search, err := cmd.Flags().GetString("search"); err == nil && search != "" {
		query = query.WithSearch(search)
	}

	sortField, _ := cmd.Flags().GetString("sort-field")
	sortOrder, _ := cmd.Flags().GetString("sort-order")

	if sortField != "" {
		if sortOrder == "" {
			sortOrder = "asc"
		}

		query = query.WithSort(sortField, sortOrder)
	}

	return query
}

func valueOrDash(value string) string {
	if value == "" {
		return "-"
	}

	return value
}
