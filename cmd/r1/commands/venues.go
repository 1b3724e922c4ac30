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

// NewVenuesCommand creates the venues command group
func NewVenuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "venues",
		Aliases: []string{"venue"},
		Short:   "Manage venues",
		Long:    "List, create, update, and delete RUCKUS One venues",
	}

	cmd.AddCommand(newVenuesListCommand())
	cmd.AddCommand(newVenuesGetCommand())
	cmd.AddCommand(newVenuesCreateCommand())
	cmd.AddCommand(newVenuesDeleteCommand())
	cmd.AddCommand(newVenuesAPsCommand())
	cmd.AddCommand(newVenuesClientsCommand())

	return cmd
}

func newVenuesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List venues",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Venues().Query(context.Background(), queryFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list venues: %w", err)
			}

			structured, err := renderStructured(result.Data)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "City", "Country", "Status")

			for _, venue := range result.Data {
				_ = table.Append(venue.ID, venue.Name, valueOrDash(venue.City),
					valueOrDash(venue.Country), valueOrDash(venue.Status))
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

func newVenuesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <venue-id>",
		Short: "Get venue details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			venue, err := client.Venues().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get venue: %w", err)
			}

			structured, err := renderStructured(venue)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", venue.ID)
			_ = table.Append("Name", venue.Name)
			_ = table.Append("Description", valueOrDash(venue.Description))
			_ = table.Append("City", valueOrDash(venue.City))
			_ = table.Append("Country", valueOrDash(venue.Country))
			_ = table.Append("Timezone", valueOrDash(venue.Timezone))
			_ = table.Append("Status", valueOrDash(venue.Status))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newVenuesCreateCommand() *cobra.Command {
	var (
		description string
		addressLine string
		city        string
		country     string
		timezone    string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			venue, err := client.Venues().Create(context.Background(), &ruckus.VenueCreateRequest{
				Name:        args[0],
				Description: description,
				Timezone:    timezone,
				Address: ruckus.Address{
					AddressLine: addressLine,
					City:        city,
					Country:     country,
				},
			})
			if err != nil {
				return fmt.Errorf("failed to create venue: %w", err)
			}

			fmt.Printf("Created venue '%s' (%s)\n", venue.Name, venue.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "venue description")
	cmd.Flags().StringVar(&addressLine, "address", "", "street address")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&country, "country", "", "country")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone")

	return cmd
}

func newVenuesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <venue-id>",
		Short: "Delete a venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Really delete venue '%s'? (y/N): ", args[0])

				var response string

				_, _ = fmt.Scanln(&response)

				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Venues().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete venue: %w", err)
			}

			fmt.Printf("Deleted venue '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func newVenuesAPsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "aps <venue-id>",
		Short: "List access points in a venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			aps, err := client.Venues().APs(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list venue APs: %w", err)
			}

			structured, err := renderStructured(aps)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Serial", "Name", "Model", "Status", "Clients")

			for _, accessPoint := range aps {
				_ = table.Append(accessPoint.SerialNumber, valueOrDash(accessPoint.Name),
					valueOrDash(accessPoint.Model), valueOrDash(accessPoint.Status),
					strconv.Itoa(accessPoint.ClientCount))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newVenuesClientsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients <venue-id>",
		Short: "List wireless clients in a venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Venues().QueryClients(context.Background(), args[0], queryFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list venue clients: %w", err)
			}

			structured, err := renderStructured(result.Data)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("MAC", "IP", "Hostname", "SSID", "AP Serial")

			for _, wirelessClient := range result.Data {
				_ = table.Append(wirelessClient.MACAddress, valueOrDash(wirelessClient.IPAddress),
					valueOrDash(wirelessClient.Hostname), valueOrDash(wirelessClient.SSID),
					valueOrDash(wirelessClient.SerialNumber))
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
