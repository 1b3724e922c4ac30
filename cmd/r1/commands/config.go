package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wavelabs-io/ruckusone/internal/constants"
)

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the stored CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			// Secrets never leave the config file in cleartext output.
			display := map[string]interface{}{
				"region":    config.Region,
				"tenant_id": config.TenantID,
				"client_id": config.ClientID,
				"output":    config.Output,
			}

			if config.ClientSecret != "" {
				display["client_secret"] = "<redacted>"
			}

			if config.Token != "" {
				display["token"] = truncateToken(config.Token)
			}

			if config.TokenExpiresAt != nil {
				display["token_expires_at"] = config.TokenExpiresAt.String()
			}

			structured, err := renderStructured(display)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Setting", "Value")

			_ = table.Append("region", valueOrDash(config.Region))
			_ = table.Append("tenant_id", valueOrDash(config.TenantID))
			_ = table.Append("client_id", valueOrDash(config.ClientID))

			if config.ClientSecret != "" {
				_ = table.Append("client_secret", "<redacted>")
			}

			if config.Token != "" {
				_ = table.Append("token", truncateToken(config.Token))
			}

			if config.TokenExpiresAt != nil {
				_ = table.Append("token_expires_at", config.TokenExpiresAt.String())
			}

			_ = table.Append("output", valueOrDash(config.Output))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])

			if !isPersistedKey(key) {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			viper.Set(key, args[1])

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])

			if !isPersistedKey(key) {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			viper.Set(key, "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Unset %s\n", key)

			return nil
		},
	}
}

func isPersistedKey(key string) bool {
	for _, candidate := range persistedKeys {
		if candidate == key {
			return true
		}
	}

	return false
}

// truncateToken shortens a token for display.
func truncateToken(token string) string {
	const visible = 12

	if len(token) <= visible {
		return token
	}

	return token[:visible] + "..."
}
