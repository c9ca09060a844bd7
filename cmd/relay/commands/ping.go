package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewPingCommand creates the ping command
func NewPingCommand() *cobra.Command {
	var showInfo bool

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check API connectivity",
		Long:  "Validate the configured API key against the Relay API",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			if err := client.Users().Ping(ctx); err != nil {
				return fmt.Errorf("ping failed: %w", err)
			}

			if !showInfo {
				fmt.Println("PONG!")

				return nil
			}

			info, err := client.Users().Info(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch account info: %w", err)
			}

			output := viper.GetString("output")

			rendered, err := renderStructured(output, info)
			if rendered || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Username", info.Username)
			_ = table.Append("Public ID", info.PublicID)
			_ = table.Append("Created", info.CreatedAt)
			_ = table.Append("Reputation", fmt.Sprintf("%d", info.Reputation))
			_ = table.Append("Hourly Quota", fmt.Sprintf("%d", info.HourlyQuota))
			_ = table.Append("Backlog", fmt.Sprintf("%d", info.Backlog))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showInfo, "info", false, "also display account details")

	return cmd
}
