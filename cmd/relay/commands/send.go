package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/relaywire/relay-go/pkg/relay"
)

// NewSendCommand creates the send command
func NewSendCommand() *cobra.Command {
	var (
		fromEmail  string
		fromName   string
		to         []string
		subject    string
		text       string
		html       string
		tags       []string
		subaccount string
		template   string
		important  bool
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message",
		Long:  "Send a transactional message, optionally rendered from a stored template",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(to) == 0 {
				return ErrRecipientRequired
			}

			if subject == "" && template == "" {
				return ErrSubjectRequired
			}

			if text == "" && html == "" && template == "" {
				return ErrBodyRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			message := &relay.Message{
				HTML:       html,
				Text:       text,
				Subject:    subject,
				FromEmail:  fromEmail,
				FromName:   fromName,
				Tags:       tags,
				Subaccount: subaccount,
				Important:  important,
			}

			for _, address := range to {
				message.To = append(message.To, relay.Recipient{
					Email: address,
					Type:  "to",
				})
			}

			ctx := cmd.Context()

			var results []relay.SendResult
			if template != "" {
				results, err = client.Messages().SendTemplate(ctx, template, nil, message)
			} else {
				results, err = client.Messages().Send(ctx, message)
			}

			if err != nil {
				return fmt.Errorf("failed to send message: %w", err)
			}

			output := viper.GetString("output")

			rendered, err := renderStructured(output, results)
			if rendered || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Email", "Status", "ID", "Reject Reason")

			for _, result := range results {
				_ = table.Append(result.Email, result.Status, result.ID, result.RejectReason)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&fromEmail, "from", "", "sender email address")
	cmd.Flags().StringVar(&fromName, "from-name", "", "sender display name")
	cmd.Flags().StringSliceVar(&to, "to", nil, "recipient email address (repeatable)")
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "message subject")
	cmd.Flags().StringVar(&text, "text", "", "plain-text body")
	cmd.Flags().StringVar(&html, "html", "", "HTML body")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tag to attach (repeatable)")
	cmd.Flags().StringVar(&subaccount, "subaccount", "", "subaccount to send through")
	cmd.Flags().StringVarP(&template, "template", "t", "", "stored template to render")
	cmd.Flags().BoolVar(&important, "important", false, "mark the message as important")

	return cmd
}
