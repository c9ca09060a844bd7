// Package relayclient provides the main entry point for creating Relay API clients
package relayclient

import (
	"fmt"
	"strings"

	"github.com/relaywire/relay-go/internal/client"
	"github.com/relaywire/relay-go/pkg/relay"
)

// New creates a new Relay API client from config.
func New(config *relay.Config) (relay.Client, error) {
	if config == nil {
		return nil, relay.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, relay.ErrAPIKeyRequired
	}

	if config.Endpoint != "" {
		config.Endpoint = normalizeEndpoint(config.Endpoint)
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithKey creates a new client with just an API key, using the default
// endpoint.
func NewWithKey(apiKey string) (relay.Client, error) {
	return New(&relay.Config{
		APIKey: apiKey,
	})
}

// NewWithEndpoint creates a new client with an API key and a non-default
// endpoint, chiefly for targeting test doubles.
func NewWithEndpoint(apiKey, endpoint string) (relay.Client, error) {
	return New(&relay.Config{
		APIKey:   apiKey,
		Endpoint: endpoint,
	})
}

// normalizeEndpoint trims a trailing slash and defaults the scheme to https.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
