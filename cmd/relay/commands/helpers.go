package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/relaywire/relay-go/internal/constants"
	"github.com/relaywire/relay-go/pkg/relay"
	"github.com/relaywire/relay-go/pkg/relayclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIKeyNotConfigured = errors.New("no API key configured (run 'relay login', set --key, or export RELAY_KEY)")
	ErrRecipientRequired   = errors.New("at least one recipient is required (--to)")
	ErrSubjectRequired     = errors.New("subject is required (--subject)")
	ErrBodyRequired        = errors.New("message body is required (--text or --html)")
	ErrInvalidVarFormat    = errors.New("expected name=content")
)

// splitPair splits a name=content flag value.
func splitPair(pair string) (string, string, bool) {
	name, content, ok := strings.Cut(pair, "=")
	if !ok || name == "" {
		return "", "", false
	}

	return name, content, true
}

// CreateClient builds an API client from the resolved CLI configuration.
func CreateClient() (relay.Client, error) {
	apiKey := viper.GetString("key")
	if apiKey == "" {
		return nil, ErrAPIKeyNotConfigured
	}

	config := &relay.Config{
		APIKey:   apiKey,
		Endpoint: viper.GetString("api"),
	}

	client, err := relayclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	return client, nil
}

// renderStructured writes v to stdout as JSON or YAML, reporting whether the
// requested output format was one of the two.
func renderStructured(output string, v interface{}) (bool, error) {
	switch output {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return true, encoder.Encode(v)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(constants.JSONIndentSize)

		return true, encoder.Encode(v)
	default:
		return false, nil
	}
}
