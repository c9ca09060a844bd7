package commands

import (
	"context"
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/relaywire/relay-go/pkg/relay"
	"github.com/relaywire/relay-go/pkg/relayclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key",
		Long:  "Verify an API key against the Relay API and store it in the local configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				apiKey = viper.GetString("key")
			}

			if apiKey == "" {
				fmt.Print("API key: ")

				keyBytes, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = strings.TrimSpace(string(keyBytes))

				fmt.Println()
			}

			if apiKey == "" {
				return relay.ErrAPIKeyRequired
			}

			endpoint := viper.GetString("api")

			client, err := relayclient.New(&relay.Config{
				APIKey:   apiKey,
				Endpoint: endpoint,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the key before persisting it
			ctx := context.Background()
			if err := client.Users().Ping(ctx); err != nil {
				if relay.IsInvalidKey(err) {
					return fmt.Errorf("the API rejected this key: %w", err)
				}

				return fmt.Errorf("failed to verify API key: %w", err)
			}

			config, err := loadFileConfig()
			if err != nil {
				return err
			}

			config.Key = apiKey
			if endpoint != "" {
				config.API = endpoint
			}

			if err := saveFileConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			displayEndpoint := endpoint
			if displayEndpoint == "" {
				displayEndpoint = relay.DefaultEndpoint
			}

			fmt.Printf("Successfully logged in to %s\n", displayEndpoint)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiKey, "key", "k", "", "API key to verify and store")

	return cmd
}
