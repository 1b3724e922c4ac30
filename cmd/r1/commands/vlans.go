package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

// NewVLANsCommand creates the VLAN pools command group
func NewVLANsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vlans",
		Aliases: []string{"vlan"},
		Short:   "Manage VLAN pools and profiles",
		Long:    "List, create, and delete VLAN pools and pool profiles; manage venue management VLANs",
	}

	cmd.AddCommand(newVLANPoolsCommand())
	cmd.AddCommand(newVLANProfilesCommand())
	cmd.AddCommand(newManagementVLANCommand())

	return cmd
}

func newVLANPoolsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "Manage VLAN pools",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List VLAN pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.VLANs().QueryPools(context.Background(), queryFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list VLAN pools: %w", err)
			}

			structured, err := renderStructured(result.Data)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "VLANs")

			for _, pool := range result.Data {
				vlanIDs := make([]string, 0, len(pool.VLANs))
				for _, vlan := range pool.VLANs {
					vlanIDs = append(vlanIDs, strconv.Itoa(vlan.VLANID))
				}

				_ = table.Append(pool.ID, pool.Name, valueOrDash(strings.Join(vlanIDs, ",")))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			fmt.Printf("\nTotal: %d\n", result.Total())

			return nil
		},
	}

	addQueryFlags(listCmd)
	cmd.AddCommand(listCmd)

	var vlanIDs []int

	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a VLAN pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			vlans := make([]ruckus.VLANPoolVLAN, 0, len(vlanIDs))
			for _, id := range vlanIDs {
				vlans = append(vlans, ruckus.VLANPoolVLAN{VLANID: id})
			}

			pool, err := client.VLANs().CreatePool(context.Background(), &ruckus.VLANPool{
				Name:  args[0],
				VLANs: vlans,
			})
			if err != nil {
				return fmt.Errorf("failed to create VLAN pool: %w", err)
			}

			fmt.Printf("Created VLAN pool '%s' (%s)\n", pool.Name, pool.ID)

			return nil
		},
	}

	createCmd.Flags().IntSliceVar(&vlanIDs, "vlan-ids", nil, "VLAN IDs to include in the pool")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <pool-id>",
		Short: "Delete a VLAN pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.VLANs().DeletePool(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete VLAN pool: %w", err)
			}

			fmt.Printf("Deleted VLAN pool '%s'\n", args[0])

			return nil
		},
	})

	return cmd
}

func newVLANProfilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage VLAN pool profiles",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List VLAN pool profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.VLANs().QueryProfiles(context.Background(), queryFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list VLAN pool profiles: %w", err)
			}

			structured, err := renderStructured(result.Data)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Pool ID")

			for _, profile := range result.Data {
				_ = table.Append(profile.ID, profile.Name, valueOrDash(profile.VLANPoolID))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			fmt.Printf("\nTotal: %d\n", result.Total())

			return nil
		},
	}

	addQueryFlags(listCmd)
	cmd.AddCommand(listCmd)

	return cmd
}

func newManagementVLANCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "management",
		Short: "Manage venue AP management VLAN settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <venue-id>",
		Short: "Show the venue management VLAN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			settings, err := client.VLANs().GetManagementVLAN(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get management VLAN: %w", err)
			}

			structured, err := renderStructured(settings)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("VLAN ID", strconv.Itoa(settings.VLANID))
			_ = table.Append("Enabled", strconv.FormatBool(settings.Enabled))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <venue-id> <vlan-id>",
		Short: "Set the venue management VLAN",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vlanID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid VLAN ID '%s': %w", args[1], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = client.VLANs().UpdateManagementVLAN(context.Background(), args[0],
				&ruckus.ManagementVLANSettings{VLANID: vlanID, Enabled: true})
			if err != nil {
				return fmt.Errorf("failed to set management VLAN: %w", err)
			}

			fmt.Printf("Set management VLAN %d for venue '%s'\n", vlanID, args[0])

			return nil
		},
	})

	return cmd
}
