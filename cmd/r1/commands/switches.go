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

// NewSwitchesCommand creates the switches command group
func NewSwitchesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "switches",
		Aliases: []string{"switch"},
		Short:   "Manage ICX switches",
		Long:    "List, inspect, and reboot switches; manage their ports and VLANs",
	}

	cmd.AddCommand(newSwitchesListCommand())
	cmd.AddCommand(newSwitchesGetCommand())
	cmd.AddCommand(newSwitchesRebootCommand())
	cmd.AddCommand(newSwitchesPortsCommand())
	cmd.AddCommand(newSwitchesVLANsCommand())

	return cmd
}

func newSwitchesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List switches",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Switches().Query(context.Background(), queryFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list switches: %w", err)
			}

			structured, err := renderStructured(result.Data)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Model", "Status", "IP", "Venue")

			for _, sw := range result.Data {
				_ = table.Append(sw.ID, valueOrDash(sw.Name), valueOrDash(sw.Model),
					valueOrDash(sw.Status), valueOrDash(sw.IP), valueOrDash(sw.VenueID))
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

func newSwitchesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <venue-id> <switch-id>",
		Short: "Get switch details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			sw, err := client.Switches().Get(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get switch: %w", err)
			}

			structured, err := renderStructured(sw)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", sw.ID)
			_ = table.Append("Name", valueOrDash(sw.Name))
			_ = table.Append("Model", valueOrDash(sw.Model))
			_ = table.Append("Serial", valueOrDash(sw.SerialNumber))
			_ = table.Append("Status", valueOrDash(sw.Status))
			_ = table.Append("IP", valueOrDash(sw.IP))
			_ = table.Append("Firmware", valueOrDash(sw.FirmwareVersion))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newSwitchesRebootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reboot <venue-id> <switch-id>",
		Short: "Reboot a switch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Switches().Reboot(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to reboot switch: %w", err)
			}

			fmt.Printf("Reboot requested for switch '%s'\n", args[1])

			return nil
		},
	}
}

func newSwitchesPortsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ports",
		Short: "List switch ports",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Switches().QueryPorts(context.Background(), queryFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list switch ports: %w", err)
			}

			structured, err := renderStructured(result.Data)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Port", "Name", "Status", "Switch", "Untagged VLAN", "PoE")

			for _, port := range result.Data {
				_ = table.Append(valueOrDash(port.PortID), valueOrDash(port.Name),
					valueOrDash(port.Status), valueOrDash(port.SwitchID),
					strconv.Itoa(port.UntaggedVLAN), strconv.FormatBool(port.PoEEnabled))
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

func newSwitchesVLANsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vlans",
		Short: "Manage switch VLANs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list <venue-id> <switch-id>",
		Short: "List VLANs on a switch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			vlans, err := client.Switches().GetVLANs(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to list switch VLANs: %w", err)
			}

			structured, err := renderStructured(vlans)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("VLAN ID", "Name", "Description")

			for _, vlan := range vlans {
				_ = table.Append(strconv.Itoa(vlan.VLANID), valueOrDash(vlan.Name),
					valueOrDash(vlan.Description))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	})

	var vlanName string

	createCmd := &cobra.Command{
		Use:   "create <venue-id> <switch-id> <vlan-id>",
		Short: "Create a VLAN on a switch",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			vlanID, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid VLAN ID '%s': %w", args[2], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			vlan, err := client.Switches().CreateVLAN(context.Background(), args[0], args[1],
				&ruckus.SwitchVLAN{VLANID: vlanID, Name: vlanName})
			if err != nil {
				return fmt.Errorf("failed to create switch VLAN: %w", err)
			}

			fmt.Printf("Created VLAN %d on switch '%s'\n", vlan.VLANID, args[1])

			return nil
		},
	}

	createCmd.Flags().StringVar(&vlanName, "name", "", "VLAN name")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <venue-id> <switch-id> <vlan-id>",
		Short: "Delete a VLAN from a switch",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Switches().DeleteVLAN(context.Background(), args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("failed to delete switch VLAN: %w", err)
			}

			fmt.Printf("Deleted VLAN '%s' from switch '%s'\n", args[2], args[1])

			return nil
		},
	})

	return cmd
}
