package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wavelabs-io/ruckusone/internal/auth"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		region       string
		tenantID     string
		clientID     string
		clientSecret string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to RUCKUS One",
		Long:  "Authenticate against the RUCKUS One cloud using OAuth2 client credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if region == "" {
				region = viper.GetString("region")
			}

			if region == "" {
				fmt.Printf("Region (na, eu, asia) [%s]: ", ruckus.DefaultRegion)
				region, _ = reader.ReadString('\n')
				region = strings.TrimSpace(region)

				if region == "" {
					region = ruckus.DefaultRegion
				}
			}

			if tenantID == "" {
				tenantID = viper.GetString("tenant_id")
			}

			if tenantID == "" {
				fmt.Print("Tenant ID: ")
				tenantID, _ = reader.ReadString('\n')
				tenantID = strings.TrimSpace(tenantID)
			}

			if tenantID == "" {
				return ruckus.ErrCredentialsRequired
			}

			if clientID == "" {
				fmt.Print("Client ID: ")
				clientID, _ = reader.ReadString('\n')
				clientID = strings.TrimSpace(clientID)
			}

			if clientSecret == "" {
				fmt.Print("Client secret: ")

				byteSecret, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read client secret: %w", err)
				}

				clientSecret = string(byteSecret)

				fmt.Println()
			}

			if clientID == "" || clientSecret == "" {
				return ruckus.ErrCredentialsRequired
			}

			// Verify the credentials with a real token exchange before
			// persisting anything.
			baseURL := ruckus.BaseURL(region)
			tokenManager := auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
				ClientID:     clientID,
				ClientSecret: clientSecret,
				TenantID:     tenantID,
				BaseURL:      baseURL,
			})

			ctx := context.Background()

			token, err := tokenManager.GetToken(ctx)
			if err != nil {
				return fmt.Errorf("failed to authenticate: %w", err)
			}

			viper.Set("region", region)
			viper.Set("tenant_id", tenantID)
			viper.Set("client_id", clientID)
			viper.Set("client_secret", clientSecret)
			viper.Set("token", token)

			if expiry := tokenManager.TokenExpiry(); !expiry.IsZero() {
				viper.Set("token_expires_at", expiry.Format(time.RFC3339))
			}

			viper.Set("last_refreshed", time.Now().Format(time.RFC3339))

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in to %s (tenant %s)\n", baseURL, tenantID)

			return nil
		},
	}

	// Add flags
	cmd.Flags().StringVarP(&region, "region", "r", "", "RUCKUS One region (na, eu, asia)")
	cmd.Flags().StringVarP(&tenantID, "tenant", "t", "", "tenant ID")
	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth2 client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth2 client secret")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from RUCKUS One",
		Long:  "Clear stored credentials and cached tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Clear authentication data
			viper.Set("client_id", "")
			viper.Set("client_secret", "")
			viper.Set("token", "")
			viper.Set("token_expires_at", "")
			viper.Set("last_refreshed", "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
