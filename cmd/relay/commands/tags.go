package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/relaywire/relay-go/internal/constants"
	"github.com/relaywire/relay-go/pkg/relay"
)

// NewTagsCommand creates the tags command group
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Inspect tags and their delivery statistics",
	}

	cmd.AddCommand(newTagsListCommand())
	cmd.AddCommand(newTagsInfoCommand())
	cmd.AddCommand(newTagsDeleteCommand())
	cmd.AddCommand(newTagsTimeSeriesCommand())

	return cmd
}

func newTagsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tags, err := client.Tags().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list tags: %w", err)
			}

			output := viper.GetString("output")

			rendered, err := renderStructured(output, tags)
			if rendered || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Tag", "Reputation", "Sent", "Opens", "Clicks", "Rejects")

			for _, tag := range tags {
				_ = table.Append(tag.Tag,
					strconv.Itoa(tag.Reputation),
					strconv.Itoa(tag.Sent),
					strconv.Itoa(tag.Opens),
					strconv.Itoa(tag.Clicks),
					strconv.Itoa(tag.Rejects))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newTagsInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info TAG",
		Short: "Show one tag's statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tag, err := client.Tags().Info(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch tag: %w", err)
			}

			output := viper.GetString("output")

			rendered, err := renderStructured(output, tag)
			if rendered || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Tag", tag.Tag)
			_ = table.Append("Reputation", strconv.Itoa(tag.Reputation))
			_ = table.Append("Sent", strconv.Itoa(tag.Sent))
			_ = table.Append("Hard Bounces", strconv.Itoa(tag.HardBounces))
			_ = table.Append("Soft Bounces", strconv.Itoa(tag.SoftBounces))
			_ = table.Append("Rejects", strconv.Itoa(tag.Rejects))
			_ = table.Append("Complaints", strconv.Itoa(tag.Complaints))
			_ = table.Append("Opens", strconv.Itoa(tag.Opens))
			_ = table.Append("Clicks", strconv.Itoa(tag.Clicks))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newTagsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TAG",
		Short: "Delete a tag",
		Long:  "Delete a tag permanently, removing its statistics from all historical aggregates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tag, err := client.Tags().Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete tag: %w", err)
			}

			fmt.Printf("Deleted tag '%s'\n", tag.Tag)

			return nil
		},
	}
}

func newTagsTimeSeriesCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "time-series [TAG]",
		Short: "Show hourly delivery statistics",
		Long:  "Show hourly delivery statistics for one tag, or across all tags when no tag is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var points []relay.TimeSeriesPoint
			if len(args) == 1 {
				points, err = client.Tags().TimeSeries(cmd.Context(), args[0])
			} else {
				points, err = client.Tags().AllTimeSeries(cmd.Context())
			}

			if err != nil {
				return fmt.Errorf("failed to fetch time series: %w", err)
			}

			if limit > 0 && len(points) > limit {
				points = points[len(points)-limit:]
			}

			output := viper.GetString("output")

			rendered, err := renderStructured(output, points)
			if rendered || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Time", "Sent", "Opens", "Clicks", "Bounces")

			for _, point := range points {
				_ = table.Append(point.Time,
					strconv.Itoa(point.Sent),
					strconv.Itoa(point.Opens),
					strconv.Itoa(point.Clicks),
					strconv.Itoa(point.HardBounces+point.SoftBounces))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultTimeSeriesLimit, "most recent rows to show (0 for all)")

	return cmd
}
