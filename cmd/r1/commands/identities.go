package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/wavelabs-io/ruckusone/internal/constants"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

// NewIdentitiesCommand creates the identities command group
func NewIdentitiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "identities",
		Aliases: []string{"identity"},
		Short:   "Manage identities",
		Long:    "List, inspect, and delete user identities and their devices",
	}

	cmd.AddCommand(newIdentitiesListCommand())
	cmd.AddCommand(newIdentitiesGetCommand())
	cmd.AddCommand(newIdentitiesDeleteCommand())
	cmd.AddCommand(newIdentitiesDevicesCommand())
	cmd.AddCommand(newIdentitiesExportCommand())

	return cmd
}

func newIdentitiesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List identities",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Identities().Query(context.Background(), queryFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list identities: %w", err)
			}

			structured, err := renderStructured(result.Data)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Email", "Group", "Devices", "Status")

			for _, identity := range result.Data {
				_ = table.Append(identity.ID, valueOrDash(identity.Name),
					valueOrDash(identity.Email), valueOrDash(identity.GroupID),
					strconv.Itoa(identity.DeviceCount), valueOrDash(identity.Status))
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

func newIdentitiesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <group-id> <identity-id>",
		Short: "Get identity details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			identity, err := client.Identities().Get(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get identity: %w", err)
			}

			structured, err := renderStructured(identity)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", identity.ID)
			_ = table.Append("Name", valueOrDash(identity.Name))
			_ = table.Append("Email", valueOrDash(identity.Email))
			_ = table.Append("Phone", valueOrDash(identity.Phone))
			_ = table.Append("Group", valueOrDash(identity.GroupID))
			_ = table.Append("Devices", strconv.Itoa(identity.DeviceCount))
			_ = table.Append("Status", valueOrDash(identity.Status))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newIdentitiesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <group-id> <identity-id>",
		Short: "Delete an identity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Identities().Delete(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to delete identity: %w", err)
			}

			fmt.Printf("Deleted identity '%s'\n", args[1])

			return nil
		},
	}
}

func newIdentitiesDevicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "Manage identity devices",
	}

	var description string

	addCmd := &cobra.Command{
		Use:   "add <group-id> <identity-id> <mac-address>",
		Short: "Register a device to an identity",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Identities().AddDevices(context.Background(), args[0], args[1],
				[]ruckus.IdentityDevice{{MACAddress: args[2], Description: description}})
			if err != nil {
				return fmt.Errorf("failed to add device: %w", err)
			}

			fmt.Printf("Added device '%s' to identity '%s'\n", args[2], args[1])

			return nil
		},
	}

	addCmd.Flags().StringVar(&description, "description", "", "device description")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <group-id> <identity-id> <mac-address>",
		Short: "Remove a device from an identity",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Identities().RemoveDevice(context.Background(), args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("failed to remove device: %w", err)
			}

			fmt.Printf("Removed device '%s' from identity '%s'\n", args[2], args[1])

			return nil
		},
	})

	return cmd
}

func newIdentitiesExportCommand() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export identities as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			data, err := client.Identities().ExportCSV(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to export identities: %w", err)
			}

			if outputFile == "" {
				_, _ = os.Stdout.Write(data)

				return nil
			}

			err = os.WriteFile(outputFile, data, constants.ConfigFilePerm)
			if err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}

			fmt.Printf("Exported identities to '%s'\n", outputFile)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "file", "f", "", "write CSV to a file instead of stdout")

	return cmd
}
