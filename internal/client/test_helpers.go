package client

import (
	"github.com/relaywire/relay-go/internal/http"
)

// testAPIKey is the credential used by NewTestClient.
const testAPIKey = "test-key"

// NewTestClient creates a client bound to the given base URL, for use against
// httptest servers.
func NewTestClient(baseURL string) *Client {
	httpClient := http.NewClient(baseURL)

	client := &Client{
		httpClient: httpClient,
		executor:   NewExecutor(httpClient, testAPIKey),
	}

	client.initializeSectionClients(nil)

	return client
}
