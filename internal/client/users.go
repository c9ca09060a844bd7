package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/relaywire/relay-go/pkg/relay"
)

// UsersClient implements relay.UsersClient.
type UsersClient struct {
	exec *Executor
}

// NewUsersClient creates a new users client.
func NewUsersClient(exec *Executor) *UsersClient {
	return &UsersClient{exec: exec}
}

func (c *UsersClient) sectionName() string {
	return "users"
}

// Ping implements relay.UsersClient.Ping. It validates the credential and
// connectivity; the response body is a fixed acknowledgement and is discarded.
func (c *UsersClient) Ping(ctx context.Context) error {
	_, err := c.exec.Execute(ctx, c.sectionName(), "ping", nil)
	if err != nil {
		return fmt.Errorf("pinging API: %w", err)
	}

	return nil
}

// Info implements relay.UsersClient.Info.
func (c *UsersClient) Info(ctx context.Context) (*relay.UserInfo, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "info", nil)
	if err != nil {
		return nil, fmt.Errorf("getting user info: %w", err)
	}

	var info relay.UserInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("parsing user info response: %w", err)
	}

	return &info, nil
}

// Senders implements relay.UsersClient.Senders.
func (c *UsersClient) Senders(ctx context.Context) ([]relay.SenderInfo, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "senders", nil)
	if err != nil {
		return nil, fmt.Errorf("listing account senders: %w", err)
	}

	var senders []relay.SenderInfo
	if err := json.Unmarshal(raw, &senders); err != nil {
		return nil, fmt.Errorf("parsing senders response: %w", err)
	}

	return senders, nil
}
