package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

// NewWLANsCommand creates the Wi-Fi networks command group
func NewWLANsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wlans",
		Aliases: []string{"wlan", "networks"},
		Short:   "Manage Wi-Fi networks",
		Long:    "List, create, update, delete, and activate Wi-Fi networks",
	}

	cmd.AddCommand(newWLANsListCommand())
	cmd.AddCommand(newWLANsGetCommand())
	cmd.AddCommand(newWLANsCreateCommand())
	cmd.AddCommand(newWLANsDeleteCommand())
	cmd.AddCommand(newWLANsActivateCommand())
	cmd.AddCommand(newWLANsDeactivateCommand())

	return cmd
}

func newWLANsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List Wi-Fi networks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.WLANs().Query(context.Background(), queryFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list Wi-Fi networks: %w", err)
			}

			structured, err := renderStructured(result.Data)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "SSID", "Security", "VLAN", "Clients")

			for _, wlan := range result.Data {
				_ = table.Append(wlan.ID, wlan.Name, valueOrDash(wlan.SSID),
					valueOrDash(wlan.SecurityProtocol), strconv.Itoa(wlan.VLAN),
					strconv.Itoa(wlan.ClientCount))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			fmt.Printf("\nTotal: %d\n", result.Total())

			return nil
		},
	}

	addQueryFlags(cmd)

	return cmd
}

func newWLANsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <wlan-id>",
		Short: "Get Wi-Fi network details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			wlan, err := client.WLANs().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get Wi-Fi network: %w", err)
			}

			structured, err := renderStructured(wlan)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", wlan.ID)
			_ = table.Append("Name", wlan.Name)
			_ = table.Append("SSID", valueOrDash(wlan.SSID))
			_ = table.Append("Security", valueOrDash(wlan.SecurityProtocol))
			_ = table.Append("VLAN", strconv.Itoa(wlan.VLAN))
			_ = table.Append("Hidden", strconv.FormatBool(wlan.HiddenSSID))
			_ = table.Append("Status", valueOrDash(wlan.Status))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newWLANsCreateCommand() *cobra.Command {
	var (
		ssid       string
		security   string
		passphrase string
		vlan       int
		hidden     bool
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a Wi-Fi network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			wlan, err := client.WLANs().Create(context.Background(), &ruckus.WLANCreateRequest{
				Name:             args[0],
				SSID:             ssid,
				SecurityProtocol: security,
				Passphrase:       passphrase,
				VLAN:             vlan,
				HiddenSSID:       hidden,
			})
			if err != nil {
				return fmt.Errorf("failed to create Wi-Fi network: %w", err)
			}

			fmt.Printf("Created Wi-Fi network '%s' (%s)\n", wlan.Name, wlan.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&ssid, "ssid", "", "SSID (defaults to the network name)")
	cmd.Flags().StringVar(&security, "security", "WPA2", "security protocol")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "WPA passphrase")
	cmd.Flags().IntVar(&vlan, "vlan", 0, "VLAN ID")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "hide the SSID")

	return cmd
}

func newWLANsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <wlan-id>",
		Short: "Delete a Wi-Fi network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.WLANs().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete Wi-Fi network: %w", err)
			}

			fmt.Printf("Deleted Wi-Fi network '%s'\n", args[0])

			return nil
		},
	}
}

func newWLANsActivateCommand() *cobra.Command {
	var apGroupID string

	cmd := &cobra.Command{
		Use:   "activate <venue-id> <wlan-id>",
		Short: "Activate a Wi-Fi network in a venue",
		Long:  "Activate a Wi-Fi network in a venue, on all AP groups or a specific one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.WLANs().Activate(context.Background(), args[0], args[1], apGroupID)
			if err != nil {
				return fmt.Errorf("failed to activate Wi-Fi network: %w", err)
			}

			fmt.Printf("Activated Wi-Fi network '%s' in venue '%s'\n", args[1], args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&apGroupID, "ap-group", "", "restrict activation to an AP group")

	return cmd
}

func newWLANsDeactivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <venue-id> <wlan-id>",
		Short: "Deactivate a Wi-Fi network in a venue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.WLANs().Deactivate(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to deactivate Wi-Fi network: %w", err)
			}

			fmt.Printf("Deactivated Wi-Fi network '%s' in venue '%s'\n", args[1], args[0])

			return nil
		},
	}
}
