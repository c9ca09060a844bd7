package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/relaywire/relay-go/pkg/relay"
)

// NewRejectsCommand creates the rejects command group
func NewRejectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rejects",
		Aliases: []string{"reject"},
		Short:   "Manage the rejection denylist",
	}

	cmd.AddCommand(newRejectsListCommand())
	cmd.AddCommand(newRejectsAddCommand())
	cmd.AddCommand(newRejectsDeleteCommand())

	return cmd
}

func newRejectsListCommand() *cobra.Command {
	var (
		email          string
		includeExpired bool
		subaccount     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List denylist entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			rejects, err := client.Rejects().List(cmd.Context(), &relay.RejectListParams{
				Email:          email,
				IncludeExpired: includeExpired,
				Subaccount:     subaccount,
			})
			if err != nil {
				return fmt.Errorf("failed to list rejects: %w", err)
			}

			output := viper.GetString("output")

			rendered, err := renderStructured(output, rejects)
			if rendered || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Email", "Reason", "Created", "Expires", "Expired")

			for _, reject := range rejects {
				expired := "no"
				if reject.Expired {
					expired = "yes"
				}

				_ = table.Append(reject.Email, reject.Reason, reject.CreatedAt, reject.ExpiresAt, expired)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "only list entries matching this address")
	cmd.Flags().BoolVar(&includeExpired, "include-expired", false, "include expired entries")
	cmd.Flags().StringVar(&subaccount, "subaccount", "", "restrict to one subaccount")

	return cmd
}

func newRejectsAddCommand() *cobra.Command {
	var (
		comment    string
		subaccount string
	)

	cmd := &cobra.Command{
		Use:   "add EMAIL",
		Short: "Add an address to the denylist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Rejects().Add(cmd.Context(), args[0], comment, subaccount)
			if err != nil {
				return fmt.Errorf("failed to add reject: %w", err)
			}

			if result.Added {
				fmt.Printf("Added '%s' to the denylist\n", result.Email)
			} else {
				fmt.Printf("'%s' was already on the denylist\n", result.Email)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&comment, "comment", "", "note recorded with the entry")
	cmd.Flags().StringVar(&subaccount, "subaccount", "", "scope the entry to one subaccount")

	return cmd
}

func newRejectsDeleteCommand() *cobra.Command {
	var subaccount string

	cmd := &cobra.Command{
		Use:   "delete EMAIL",
		Short: "Remove an address from the denylist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Rejects().Delete(cmd.Context(), args[0], subaccount)
			if err != nil {
				return fmt.Errorf("failed to delete reject: %w", err)
			}

			if result.Deleted {
				fmt.Printf("Removed '%s' from the denylist\n", result.Email)
			} else {
				fmt.Printf("'%s' was not on the denylist\n", result.Email)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&subaccount, "subaccount", "", "scope the removal to one subaccount")

	return cmd
}
