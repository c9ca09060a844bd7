package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/relaywire/relay-go/pkg/relay"
)

// NewExportsCommand creates the exports command group
func NewExportsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exports",
		Aliases: []string{"export"},
		Short:   "Start and track bulk data exports",
	}

	cmd.AddCommand(newExportsListCommand())
	cmd.AddCommand(newExportsInfoCommand())
	cmd.AddCommand(newExportsActivityCommand())
	cmd.AddCommand(newExportsRejectsCommand())
	cmd.AddCommand(newExportsWhitelistCommand())

	return cmd
}

func newExportsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List export jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			exports, err := client.Exports().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list exports: %w", err)
			}

			output := viper.GetString("output")

			rendered, err := renderStructured(output, exports)
			if rendered || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Type", "State", "Created", "Finished")

			for _, export := range exports {
				_ = table.Append(export.ID, export.Type, export.State, export.CreatedAt, export.FinishedAt)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newExportsInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info ID",
		Short: "Show one export job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			export, err := client.Exports().Info(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch export: %w", err)
			}

			return renderExport(export)
		},
	}
}

func newExportsActivityCommand() *cobra.Command {
	params := &relay.ActivityExportParams{}

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Start an activity export",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			export, err := client.Exports().Activity(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to start activity export: %w", err)
			}

			return renderExport(export)
		},
	}

	cmd.Flags().StringVar(&params.NotifyEmail, "notify", "", "address to notify when the export completes")
	cmd.Flags().StringVar(&params.DateFrom, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&params.DateTo, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&params.Tags, "tag", nil, "restrict to messages with this tag (repeatable)")
	cmd.Flags().StringSliceVar(&params.Senders, "sender", nil, "restrict to this sending address (repeatable)")
	cmd.Flags().StringSliceVar(&params.States, "state", nil, "restrict to this delivery state (repeatable)")

	return cmd
}

func newExportsRejectsCommand() *cobra.Command {
	var notifyEmail string

	cmd := &cobra.Command{
		Use:   "rejects",
		Short: "Start a denylist export",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			export, err := client.Exports().Rejects(cmd.Context(), notifyEmail)
			if err != nil {
				return fmt.Errorf("failed to start rejects export: %w", err)
			}

			return renderExport(export)
		},
	}

	cmd.Flags().StringVar(&notifyEmail, "notify", "", "address to notify when the export completes")

	return cmd
}

func newExportsWhitelistCommand() *cobra.Command {
	var notifyEmail string

	cmd := &cobra.Command{
		Use:   "whitelist",
		Short: "Start an allowlist export",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			export, err := client.Exports().Whitelist(cmd.Context(), notifyEmail)
			if err != nil {
				return fmt.Errorf("failed to start whitelist export: %w", err)
			}

			return renderExport(export)
		},
	}

	cmd.Flags().StringVar(&notifyEmail, "notify", "", "address to notify when the export completes")

	return cmd
}

func renderExport(export *relay.Export) error {
	output := viper.GetString("output")

	rendered, err := renderStructured(output, export)
	if rendered || err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", export.ID)
	_ = table.Append("Type", export.Type)
	_ = table.Append("State", export.State)
	_ = table.Append("Created", export.CreatedAt)
	_ = table.Append("Finished", export.FinishedAt)
	_ = table.Append("Result URL", export.ResultURL)

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
