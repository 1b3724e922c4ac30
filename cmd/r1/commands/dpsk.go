package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/wavelabs-io/ruckusone/internal/constants"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
)

// NewDPSKCommand creates the DPSK command group
func NewDPSKCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dpsk",
		Short: "Manage DPSK services",
		Long:  "Manage dynamic pre-shared key services, passphrases, and device bindings",
	}

	cmd.AddCommand(newDPSKServicesCommand())
	cmd.AddCommand(newDPSKPassphrasesCommand())
	cmd.AddCommand(newDPSKImportCommand())
	cmd.AddCommand(newDPSKExportCommand())
	cmd.AddCommand(newDPSKAssociateCommand())

	return cmd
}

func newDPSKServicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "services",
		Short: "Manage DPSK services",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List DPSK services",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.DPSK().QueryServices(context.Background(), queryFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list DPSK services: %w", err)
			}

			structured, err := renderStructured(result.Data)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Passphrases", "Device Limit", "Expiration")

			for _, service := range result.Data {
				_ = table.Append(service.ID, service.Name, strconv.Itoa(service.PassphraseCount),
					strconv.Itoa(service.DeviceCountLimit), valueOrDash(service.ExpirationType))
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

	var (
		passphraseFormat string
		passphraseLength int
		deviceLimit      int
	)

	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a DPSK service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			service, err := client.DPSK().CreateService(context.Background(), &ruckus.DPSKServiceCreateRequest{
				Name:             args[0],
				PassphraseFormat: passphraseFormat,
				PassphraseLength: passphraseLength,
				DeviceCountLimit: deviceLimit,
			})
			if err != nil {
				return fmt.Errorf("failed to create DPSK service: %w", err)
			}

			fmt.Printf("Created DPSK service '%s' (%s)\n", service.Name, service.ID)

			return nil
		},
	}

	createCmd.Flags().StringVar(&passphraseFormat, "format", "", "passphrase format")
	createCmd.Flags().IntVar(&passphraseLength, "length", 0, "passphrase length")
	createCmd.Flags().IntVar(&deviceLimit, "device-limit", 0, "devices allowed per passphrase")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <service-id>",
		Short: "Delete a DPSK service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.DPSK().DeleteService(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete DPSK service: %w", err)
			}

			fmt.Printf("Deleted DPSK service '%s'\n", args[0])

			return nil
		},
	})

	return cmd
}

func newDPSKPassphrasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passphrases",
		Short: "Manage DPSK passphrases",
	}

	listCmd := &cobra.Command{
		Use:   "list <service-id>",
		Short: "List passphrases in a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.DPSK().QueryPassphrases(context.Background(), args[0], queryFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list passphrases: %w", err)
			}

			structured, err := renderStructured(result.Data)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Username", "Email", "VLAN", "Devices", "Expires")

			for _, passphrase := range result.Data {
				_ = table.Append(passphrase.ID, valueOrDash(passphrase.Username),
					valueOrDash(passphrase.Email), strconv.Itoa(passphrase.VLANID),
					strconv.Itoa(passphrase.NumberOfDevices), valueOrDash(passphrase.ExpirationDate))
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

	var (
		email  string
		vlanID int
	)

	createCmd := &cobra.Command{
		Use:   "create <service-id> <username>",
		Short: "Create a passphrase",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			created, err := client.DPSK().CreatePassphrases(context.Background(), args[0], []ruckus.Passphrase{
				{Username: args[1], Email: email, VLANID: vlanID},
			})
			if err != nil {
				return fmt.Errorf("failed to create passphrase: %w", err)
			}

			for _, passphrase := range created {
				fmt.Printf("Created passphrase for '%s' (%s)\n", passphrase.Username, passphrase.ID)
			}

			return nil
		},
	}

	createCmd.Flags().StringVar(&email, "email", "", "user email")
	createCmd.Flags().IntVar(&vlanID, "vlan", 0, "VLAN ID")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <service-id> <passphrase-id>...",
		Short: "Delete passphrases",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.DPSK().DeletePassphrases(context.Background(), args[0], args[1:])
			if err != nil {
				return fmt.Errorf("failed to delete passphrases: %w", err)
			}

			fmt.Printf("Deleted %d passphrase(s)\n", len(args)-1)

			return nil
		},
	})

	return cmd
}

func newDPSKImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <service-id> <csv-file>",
		Short: "Import passphrases from a CSV file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readLocalFile(args[1])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.DPSK().ImportPassphrasesCSV(context.Background(), args[0], data)
			if err != nil {
				return fmt.Errorf("failed to import passphrases: %w", err)
			}

			fmt.Printf("Imported passphrases from '%s'\n", args[1])

			return nil
		},
	}
}

func newDPSKExportCommand() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "export <service-id>",
		Short: "Export passphrases as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			data, err := client.DPSK().ExportPassphrasesCSV(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to export passphrases: %w", err)
			}

			if outputFile == "" {
				_, _ = os.Stdout.Write(data)

				return nil
			}

			err = os.WriteFile(outputFile, data, constants.ConfigFilePerm)
			if err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}

			fmt.Printf("Exported passphrases to '%s'\n", outputFile)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "file", "f", "", "write CSV to a file instead of stdout")

	return cmd
}

func newDPSKAssociateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "associate <wlan-id> <service-id>",
		Short: "Associate a DPSK service with a Wi-Fi network",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.DPSK().AssociateWLAN(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to associate DPSK service: %w", err)
			}

			fmt.Printf("Associated DPSK service '%s' with Wi-Fi network '%s'\n", args[1], args[0])

			return nil
		},
	}
}

// readLocalFile reads a user-supplied file after basic path validation.
func readLocalFile(path string) ([]byte, error) {
	cleaned := filepath.Clean(path)

	if strings.Contains(cleaned, "..") {
		return nil, constants.ErrDirectoryTraversalDetected
	}

	info, err := os.Stat(cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if !info.Mode().IsRegular() {
		return nil, constants.ErrNotRegularFile
	}

	data, err := os.ReadFile(cleaned) // #nosec G304 -- path validated above
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}
