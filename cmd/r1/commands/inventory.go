package commands

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/wavelabs-io/ruckusone/internal/constants"
	"github.com/wavelabs-io/ruckusone/pkg/ruckus"
	"golang.org/x/sync/errgroup"
)

// venueInventory summarizes the devices deployed in one venue.
type venueInventory struct {
	VenueID     string `json:"venueId"     yaml:"venueId"`
	VenueName   string `json:"venueName"   yaml:"venueName"`
	APCount     int    `json:"apCount"     yaml:"apCount"`
	SwitchCount int    `json:"switchCount" yaml:"switchCount"`
	WLANCount   int    `json:"wlanCount"   yaml:"wlanCount"`
}

// NewInventoryCommand creates the inventory command
func NewInventoryCommand() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Show a per-venue device inventory",
		Long:  "Fetch AP, switch, and Wi-Fi network counts for every venue, querying venues concurrently",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			venues, err := client.Venues().Query(ctx, ruckus.NewQuery().WithPageSize(constants.MaxPageSize))
			if err != nil {
				return fmt.Errorf("failed to list venues: %w", err)
			}

			// Each goroutine writes its own slot, so no lock is needed.
			inventories := make([]venueInventory, len(venues.Data))

			group, groupCtx := errgroup.WithContext(ctx)
			group.SetLimit(concurrency)

			for i, venue := range venues.Data {
				group.Go(func() error {
					inventory, err := collectVenueInventory(groupCtx, client, venue)
					if err != nil {
						return err
					}

					inventories[i] = inventory

					return nil
				})
			}

			if err := group.Wait(); err != nil {
				return fmt.Errorf("failed to collect inventory: %w", err)
			}

			sort.Slice(inventories, func(i, j int) bool {
				return inventories[i].VenueName < inventories[j].VenueName
			})

			structured, err := renderStructured(inventories)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Venue", "ID", "APs", "Switches", "Networks")

			totalAPs, totalSwitches := 0, 0

			for _, inventory := range inventories {
				_ = table.Append(inventory.VenueName, inventory.VenueID,
					strconv.Itoa(inventory.APCount), strconv.Itoa(inventory.SwitchCount),
					strconv.Itoa(inventory.WLANCount))

				totalAPs += inventory.APCount
				totalSwitches += inventory.SwitchCount
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			fmt.Printf("\n%d venue(s), %d AP(s), %d switch(es)\n", len(inventories), totalAPs, totalSwitches)

			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", constants.DefaultConcurrencyLimit,
		"number of venues to query in parallel")

	return cmd
}

// collectVenueInventory fetches the device counts for one venue. The three
// sub-queries share the group context so one failure cancels the rest.
func collectVenueInventory(ctx context.Context, client ruckus.Client, venue ruckus.Venue) (venueInventory, error) {
	inventory := venueInventory{
		VenueID:   venue.ID,
		VenueName: venue.Name,
	}

	aps, err := client.Venues().APs(ctx, venue.ID)
	if err != nil {
		return inventory, fmt.Errorf("venue %s: failed to list APs: %w", venue.ID, err)
	}

	inventory.APCount = len(aps)

	switches, err := client.Venues().QuerySwitches(ctx, venue.ID, ruckus.NewQuery().WithPageSize(1))
	if err != nil {
		return inventory, fmt.Errorf("venue %s: failed to count switches: %w", venue.ID, err)
	}

	inventory.SwitchCount = switches.Total()

	wlans, err := client.Venues().QueryWLANs(ctx, venue.ID, ruckus.NewQuery().WithPageSize(1))
	if err != nil {
		return inventory, fmt.Errorf("venue %s: failed to count networks: %w", venue.ID, err)
	}

	inventory.WLANCount = wlans.Total()

	return inventory, nil
}
