package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/relaywire/relay-go/pkg/relay"
)

// WhitelistsClient implements relay.WhitelistsClient.
type WhitelistsClient struct {
	exec *Executor
}

// NewWhitelistsClient creates a new whitelists client.
func NewWhitelistsClient(exec *Executor) *WhitelistsClient {
	return &WhitelistsClient{exec: exec}
}

func (c *WhitelistsClient) sectionName() string {
	return "whitelists"
}

// Add implements relay.WhitelistsClient.Add.
func (c *WhitelistsClient) Add(ctx context.Context, email, comment string) (*relay.WhitelistAddResult, error) {
	if email == "" {
		return nil, relay.ErrEmailRequired
	}

	payload := map[string]interface{}{
		"email": email,
	}

	if comment != "" {
		payload["comment"] = comment
	}

	raw, err := c.exec.Execute(ctx, c.sectionName(), "add", payload)
	if err != nil {
		return nil, fmt.Errorf("adding whitelist entry: %w", err)
	}

	var result relay.WhitelistAddResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("parsing whitelist add response: %w", err)
	}

	return &result, nil
}

// List implements relay.WhitelistsClient.List. A non-empty email restricts
// the listing to entries matching it.
func (c *WhitelistsClient) List(ctx context.Context, email string) ([]relay.WhitelistEntry, error) {
	payload := map[string]interface{}{}
	if email != "" {
		payload["email"] = email
	}

	raw, err := c.exec.Execute(ctx, c.sectionName(), "list", payload)
	if err != nil {
		return nil, fmt.Errorf("listing whitelist entries: %w", err)
	}

	var entries []relay.WhitelistEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parsing whitelist list response: %w", err)
	}

	return entries, nil
}

// Delete implements relay.WhitelistsClient.Delete.
func (c *WhitelistsClient) Delete(ctx context.Context, email string) (*relay.WhitelistDeleteResult, error) {
	if email == "" {
		return nil, relay.ErrEmailRequired
	}

	raw, err := c.exec.Execute(ctx, c.sectionName(), "delete", map[string]interface{}{
		"email": email,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting whitelist entry: %w", err)
	}

	var result relay.WhitelistDeleteResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("parsing whitelist delete response: %w", err)
	}

	return &result, nil
}
