package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/wavelabs-io/ruckusone/internal/auth"
	"github.com/wavelabs-io/ruckusone/internal/constants"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

// NewTokenCommand creates the token command group.
func NewTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage authentication tokens",
		Long:  "Commands for inspecting and refreshing the cached access token",
	}

	cmd.AddCommand(newTokenStatusCommand())
	cmd.AddCommand(newTokenRefreshCommand())

	return cmd
}

func newTokenStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show token status and expiration",
		Long:  "Display information about the cached access token including expiration time",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			tokenStatus := buildTokenStatusData(config)

			structured, err := renderStructured(tokenStatus)
			if structured || err != nil {
				return err
			}

			return displayTokenStatusTable(tokenStatus)
		},
	}
}

func newTokenRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Manually refresh the access token",
		Long:  "Force a new OAuth2 client credentials exchange and persist the resulting token",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if config.ClientID == "" || config.ClientSecret == "" || config.TenantID == "" {
				return constants.ErrNoCredentialsConfigured
			}

			tokenManager := auth.NewConfigTokenManager(&auth.ClientCredentialsConfig{
				ClientID:     config.ClientID,
				ClientSecret: config.ClientSecret,
				TenantID:     config.TenantID,
				BaseURL:      ruckus.BaseURL(config.Region),
			}, NewConfigPersister(), "", time.Time{})

			err := tokenManager.RefreshToken(context.Background())
			if err != nil {
				return fmt.Errorf("failed to refresh token: %w", err)
			}

			fmt.Println("Token refreshed successfully!")

			expiresAt := tokenManager.GetTokenExpiry()
			if !expiresAt.IsZero() {
				fmt.Printf("New token expires at: %s\n", expiresAt.Format(time.RFC3339))
				fmt.Printf("Time until expiry: %s\n", time.Until(expiresAt).String())
			}

			return nil
		},
	}
}

func buildTokenStatusData(config *Config) map[string]interface{} {
	tokenStatus := map[string]interface{}{
		"region":   config.Region,
		"endpoint": ruckus.BaseURL(config.Region),
	}

	if config.TenantID != "" {
		tokenStatus["tenant_id"] = config.TenantID
	}

	if config.Token == "" {
		tokenStatus["status"] = "No token"
		tokenStatus["authenticated"] = false

		return tokenStatus
	}

	tokenStatus["status"] = "Token present"
	tokenStatus["authenticated"] = true

	expiresAt := tokenExpiration(config)
	if expiresAt != nil {
		addExpirationInfo(tokenStatus, expiresAt)
	} else {
		tokenStatus["expiry_status"] = "Unknown expiration"
	}

	if config.LastRefreshed != nil {
		tokenStatus["last_refreshed"] = config.LastRefreshed.Format(time.RFC3339)
	}

	return tokenStatus
}

// tokenExpiration gets the token expiration time from config or the JWT
// claims.
func tokenExpiration(config *Config) *time.Time {
	if config.TokenExpiresAt != nil {
		return config.TokenExpiresAt
	}

	jwtExp, err := decodeJWTExpiration(config.Token)
	if err == nil {
		return jwtExp
	}

	return nil
}

// addExpirationInfo adds expiration status and timing information.
func addExpirationInfo(tokenStatus map[string]interface{}, expiresAt *time.Time) {
	tokenStatus["expires_at"] = expiresAt.Format(time.RFC3339)

	timeUntilExpiry := time.Until(*expiresAt)

	switch {
	case timeUntilExpiry <= 0:
		tokenStatus["expiry_status"] = "Expired"
	case timeUntilExpiry <= constants.TokenExpirySafetyMargin:
		tokenStatus["expiry_status"] = "Expires soon"
	default:
		tokenStatus["expiry_status"] = "Valid"
	}

	tokenStatus["time_until_expiry"] = timeUntilExpiry.String()
}

// decodeJWTExpiration extracts the expiration time from a JWT access token
// without verifying its signature.
func decodeJWTExpiration(token string) (*time.Time, error) {
	parser := jwt.NewParser()

	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidJWTFormat, err)
	}

	expiresAt, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return nil, constants.ErrNoExpirationClaim
	}

	return &expiresAt.Time, nil
}

func displayTokenStatusTable(tokenStatus map[string]interface{}) error {
	_, _ = fmt.Fprintf(os.Stdout, "Token Status for region: %s\n", tokenStatus["region"])
	_, _ = fmt.Fprintf(os.Stdout, "Endpoint: %s\n\n", tokenStatus["endpoint"])

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Authenticated", fmt.Sprintf("%v", tokenStatus["authenticated"]))
	_ = table.Append("Status", fmt.Sprintf("%v", tokenStatus["status"]))

	for _, key := range []struct {
		field string
		label string
	}{
		{"expiry_status", "Expiry Status"},
		{"expires_at", "Expires At"},
		{"time_until_expiry", "Time Until Expiry"},
		{"last_refreshed", "Last Refreshed"},
	} {
		if value, ok := tokenStatus[key.field]; ok {
			_ = table.Append(key.label, fmt.Sprintf("%v", value))
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render token status table: %w", err)
	}

	return nil
}
