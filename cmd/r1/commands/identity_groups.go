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

// NewIdentityGroupsCommand creates the identity groups command group
func NewIdentityGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "identity-groups",
		Aliases: []string{"identity-group", "groups"},
		Short:   "Manage identity groups",
		Long:    "List, create, and delete identity groups and manage their service links",
	}

	cmd.AddCommand(newIdentityGroupsListCommand())
	cmd.AddCommand(newIdentityGroupsGetCommand())
	cmd.AddCommand(newIdentityGroupsCreateCommand())
	cmd.AddCommand(newIdentityGroupsDeleteCommand())
	cmd.AddCommand(newIdentityGroupsLinkCommand())
	cmd.AddCommand(newIdentityGroupsAddIdentityCommand())

	return cmd
}

func newIdentityGroupsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List identity groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.IdentityGroups().Query(context.Background(), queryFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list identity groups: %w", err)
			}

			structured, err := renderStructured(result.Data)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Identities", "DPSK Pool", "Policy Set")

			for _, group := range result.Data {
				_ = table.Append(group.ID, group.Name, strconv.Itoa(group.IdentityCount),
					valueOrDash(group.DPSKPoolID), valueOrDash(group.PolicySetID))
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

func newIdentityGroupsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <group-id>",
		Short: "Get identity group details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			group, err := client.IdentityGroups().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get identity group: %w", err)
			}

			structured, err := renderStructured(group)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", group.ID)
			_ = table.Append("Name", group.Name)
			_ = table.Append("Description", valueOrDash(group.Description))
			_ = table.Append("Identities", strconv.Itoa(group.IdentityCount))
			_ = table.Append("DPSK Pool", valueOrDash(group.DPSKPoolID))
			_ = table.Append("Policy Set", valueOrDash(group.PolicySetID))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newIdentityGroupsCreateCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an identity group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			group, err := client.IdentityGroups().Create(context.Background(), &ruckus.IdentityGroup{
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to create identity group: %w", err)
			}

			fmt.Printf("Created identity group '%s' (%s)\n", group.Name, group.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "group description")

	return cmd
}

func newIdentityGroupsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <group-id>",
		Short: "Delete an identity group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.IdentityGroups().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete identity group: %w", err)
			}

			fmt.Printf("Deleted identity group '%s'\n", args[0])

			return nil
		},
	}
}

func newIdentityGroupsLinkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Link services to an identity group",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "dpsk <group-id> <service-id>",
		Short: "Link a DPSK pool to an identity group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.IdentityGroups().LinkDPSKPool(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to link DPSK pool: %w", err)
			}

			fmt.Printf("Linked DPSK pool '%s' to identity group '%s'\n", args[1], args[0])

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "policy-set <group-id> <policy-set-id>",
		Short: "Link a policy set to an identity group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.IdentityGroups().LinkPolicySet(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to link policy set: %w", err)
			}

			fmt.Printf("Linked policy set '%s' to identity group '%s'\n", args[1], args[0])

			return nil
		},
	})

	return cmd
}

func newIdentityGroupsAddIdentityCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "add-identity <group-id> <name>",
		Short: "Add an identity to a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			identity, err := client.IdentityGroups().AddIdentity(context.Background(), args[0],
				&ruckus.Identity{Name: args[1], Email: email})
			if err != nil {
				return fmt.Errorf("failed to add identity: %w", err)
			}

			fmt.Printf("Added identity '%s' (%s) to group '%s'\n", identity.Name, identity.ID, args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "identity email")

	return cmd
}
