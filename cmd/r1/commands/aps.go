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

// NewAPsCommand creates the access points command group
func NewAPsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "aps",
		Aliases: []string{"ap", "access-points"},
		Short:   "Manage access points",
		Long:    "List, inspect, update, and reboot Wi-Fi access points",
	}

	cmd.AddCommand(newAPsListCommand())
	cmd.AddCommand(newAPsGetCommand())
	cmd.AddCommand(newAPsUpdateCommand())
	cmd.AddCommand(newAPsRebootCommand())
	cmd.AddCommand(newAPsRadioCommand())
	cmd.AddCommand(newAPsStatsCommand())

	return cmd
}

func newAPsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List access points",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.AccessPoints().Query(context.Background(), queryFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list access points: %w", err)
			}

			structured, err := renderStructured(result.Data)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Serial", "Name", "Model", "Status", "Venue", "Clients")

			for _, accessPoint := range result.Data {
				_ = table.Append(accessPoint.SerialNumber, valueOrDash(accessPoint.Name),
					valueOrDash(accessPoint.Model), valueOrDash(accessPoint.Status),
					valueOrDash(accessPoint.VenueID), strconv.Itoa(accessPoint.ClientCount))
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

func newAPsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <serial-number>",
		Short: "Get access point details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			accessPoint, err := client.AccessPoints().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get access point: %w", err)
			}

			structured, err := renderStructured(accessPoint)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Serial", accessPoint.SerialNumber)
			_ = table.Append("Name", valueOrDash(accessPoint.Name))
			_ = table.Append("Model", valueOrDash(accessPoint.Model))
			_ = table.Append("Status", valueOrDash(accessPoint.Status))
			_ = table.Append("MAC", valueOrDash(accessPoint.MACAddress))
			_ = table.Append("IP", valueOrDash(accessPoint.IPAddress))
			_ = table.Append("Firmware", valueOrDash(accessPoint.FirmwareVersion))
			_ = table.Append("Venue", valueOrDash(accessPoint.VenueID))
			_ = table.Append("Clients", strconv.Itoa(accessPoint.ClientCount))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newAPsUpdateCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "update <venue-id> <serial-number>",
		Short: "Update an access point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			accessPoint, err := client.AccessPoints().Update(context.Background(), args[0], args[1],
				&ruckus.APUpdateRequest{Name: name})
			if err != nil {
				return fmt.Errorf("failed to update access point: %w", err)
			}

			fmt.Printf("Updated access point '%s'\n", accessPoint.SerialNumber)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new access point name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newAPsRebootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reboot <venue-id> <serial-number>",
		Short: "Reboot an access point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.AccessPoints().Reboot(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to reboot access point: %w", err)
			}

			fmt.Printf("Reboot requested for access point '%s'\n", args[1])

			return nil
		},
	}
}

func newAPsRadioCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "radio <venue-id> <serial-number>",
		Short: "Show access point radio settings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			settings, err := client.AccessPoints().GetRadioSettings(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get radio settings: %w", err)
			}

			structured, err := renderStructured(settings)
			if structured || err != nil {
				return err
			}

			// Radio settings are free-form; table output falls back to JSON.
			return renderJSON(settings)
		},
	}
}

func newAPsStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <venue-id> <serial-number>",
		Short: "Show access point statistics",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			stats, err := client.AccessPoints().GetStatistics(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get statistics: %w", err)
			}

			structured, err := renderStructured(stats)
			if structured || err != nil {
				return err
			}

			return renderJSON(stats)
		},
	}
}
