//go:build integration

package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/relaywire/relay-go/pkg/relay"
	"github.com/relaywire/relay-go/pkg/relayclient"
)

// TestConfig carries the live-API settings for integration runs.
type TestConfig struct {
	APIKey   string
	Endpoint string
	From     string
	To       string
}

// LoadTestConfig reads integration settings from the environment.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:   os.Getenv("RELAY_TEST_KEY"),
		Endpoint: os.Getenv("RELAY_TEST_ENDPOINT"),
		From:     os.Getenv("RELAY_TEST_FROM"),
		To:       os.Getenv("RELAY_TEST_TO"),
	}
}

// SkipIfMissingConfig skips the test when no live API key is configured.
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.APIKey == "" {
		t.Skip("RELAY_TEST_KEY not set; skipping integration test")
	}
}

// NewClient builds a client from the integration config.
func (c *TestConfig) NewClient(t *testing.T) relay.Client {
	t.Helper()

	client, err := relayclient.New(&relay.Config{
		APIKey:   c.APIKey,
		Endpoint: c.Endpoint,
	})
	if err != nil {
		t.Fatalf("creating integration client: %v", err)
	}

	return client
}

// GenerateTestName returns a unique name for disposable test resources.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
