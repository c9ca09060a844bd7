package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/relaywire/relay-go/pkg/relay"
)

// NewTemplatesCommand creates the templates command group
func NewTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template"},
		Short:   "Manage stored templates",
		Long:    "List, inspect, create, update, publish and delete stored templates",
	}

	cmd.AddCommand(newTemplatesListCommand())
	cmd.AddCommand(newTemplatesInfoCommand())
	cmd.AddCommand(newTemplatesAddCommand())
	cmd.AddCommand(newTemplatesUpdateCommand())
	cmd.AddCommand(newTemplatesPublishCommand())
	cmd.AddCommand(newTemplatesDeleteCommand())
	cmd.AddCommand(newTemplatesRenderCommand())

	return cmd
}

func newTemplatesListCommand() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			templates, err := client.Templates().List(cmd.Context(), label)
			if err != nil {
				return fmt.Errorf("failed to list templates: %w", err)
			}

			output := viper.GetString("output")

			rendered, err := renderStructured(output, templates)
			if rendered || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Slug", "Name", "Published", "Updated")

			for _, tmpl := range templates {
				published := "no"
				if tmpl.PublishedAt != "" {
					published = tmpl.PublishedAt
				}

				_ = table.Append(tmpl.Slug, tmpl.Name, published, tmpl.UpdatedAt)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "only list templates carrying this label")

	return cmd
}

func newTemplatesInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info NAME",
		Short: "Show template details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tmpl, err := client.Templates().Info(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch template: %w", err)
			}

			return renderTemplate(tmpl)
		},
	}
}

func newTemplatesAddCommand() *cobra.Command {
	request := &relay.TemplateRequest{}
	var codeFile string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request.Name = args[0]

			if codeFile != "" {
				code, err := os.ReadFile(codeFile)
				if err != nil {
					return fmt.Errorf("failed to read template code: %w", err)
				}

				request.Code = string(code)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			tmpl, err := client.Templates().Add(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to create template: %w", err)
			}

			return renderTemplate(tmpl)
		},
	}

	addTemplateFlags(cmd, request, &codeFile)

	return cmd
}

func newTemplatesUpdateCommand() *cobra.Command {
	request := &relay.TemplateRequest{}
	var codeFile string

	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Update a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request.Name = args[0]

			if codeFile != "" {
				code, err := os.ReadFile(codeFile)
				if err != nil {
					return fmt.Errorf("failed to read template code: %w", err)
				}

				request.Code = string(code)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			tmpl, err := client.Templates().Update(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to update template: %w", err)
			}

			return renderTemplate(tmpl)
		},
	}

	addTemplateFlags(cmd, request, &codeFile)

	return cmd
}

func newTemplatesPublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publish NAME",
		Short: "Publish a template's draft content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tmpl, err := client.Templates().Publish(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to publish template: %w", err)
			}

			fmt.Printf("Published template '%s'\n", tmpl.Name)

			return nil
		},
	}
}

func newTemplatesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tmpl, err := client.Templates().Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete template: %w", err)
			}

			fmt.Printf("Deleted template '%s'\n", tmpl.Name)

			return nil
		},
	}
}

func newTemplatesRenderCommand() *cobra.Command {
	var vars []string

	cmd := &cobra.Command{
		Use:   "render NAME",
		Short: "Render a template",
		Long:  "Render a stored template with merge variables and print the resulting HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			mergeVars := make([]relay.Var, 0, len(vars))
			for _, pair := range vars {
				name, content, ok := splitPair(pair)
				if !ok {
					return fmt.Errorf("invalid merge variable %q: %w", pair, ErrInvalidVarFormat)
				}

				mergeVars = append(mergeVars, relay.Var{Name: name, Content: content})
			}

			html, err := client.Templates().Render(cmd.Context(), args[0], nil, mergeVars)
			if err != nil {
				return fmt.Errorf("failed to render template: %w", err)
			}

			fmt.Println(html)

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&vars, "var", nil, "merge variable as name=content (repeatable)")

	return cmd
}

func addTemplateFlags(cmd *cobra.Command, request *relay.TemplateRequest, codeFile *string) {
	cmd.Flags().StringVar(codeFile, "code-file", "", "file containing the HTML template code")
	cmd.Flags().StringVar(&request.Text, "text", "", "plain-text version of the template")
	cmd.Flags().StringVar(&request.Subject, "subject", "", "default subject line")
	cmd.Flags().StringVar(&request.FromEmail, "from", "", "default sender email address")
	cmd.Flags().StringVar(&request.FromName, "from-name", "", "default sender display name")
	cmd.Flags().StringSliceVar(&request.Labels, "label", nil, "label to attach (repeatable)")
	cmd.Flags().BoolVar(&request.Publish, "publish", false, "publish immediately instead of saving a draft")
}

func renderTemplate(tmpl *relay.Template) error {
	output := viper.GetString("output")

	rendered, err := renderStructured(output, tmpl)
	if rendered || err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("Slug", tmpl.Slug)
	_ = table.Append("Name", tmpl.Name)
	_ = table.Append("Subject", tmpl.Subject)
	_ = table.Append("From", tmpl.FromEmail)
	_ = table.Append("Published", tmpl.PublishedAt)
	_ = table.Append("Created", tmpl.CreatedAt)
	_ = table.Append("Updated", tmpl.UpdatedAt)

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
