package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/relaywire/relay-go/pkg/relay"
)

// SubaccountsClient implements relay.SubaccountsClient.
type SubaccountsClient struct {
	exec *Executor
}

// NewSubaccountsClient creates a new subaccounts client.
func NewSubaccountsClient(exec *Executor) *SubaccountsClient {
	return &SubaccountsClient{exec: exec}
}

func (c *SubaccountsClient) sectionName() string {
	return "subaccounts"
}

// List implements relay.SubaccountsClient.List. A non-empty query matches
// against subaccount IDs and names.
func (c *SubaccountsClient) List(ctx context.Context, query string) ([]relay.Subaccount, error) {
	payload := map[string]interface{}{}
	if query != "" {
		payload["q"] = query
	}

	raw, err := c.exec.Execute(ctx, c.sectionName(), "list", payload)
	if err != nil {
		return nil, fmt.Errorf("listing subaccounts: %w", err)
	}

	var subaccounts []relay.Subaccount
	if err := json.Unmarshal(raw, &subaccounts); err != nil {
		return nil, fmt.Errorf("parsing subaccounts list response: %w", err)
	}

	return subaccounts, nil
}

// Add implements relay.SubaccountsClient.Add.
func (c *SubaccountsClient) Add(ctx context.Context, request *relay.SubaccountRequest) (*relay.Subaccount, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "add", subaccountPayload(request))
	if err != nil {
		return nil, fmt.Errorf("adding subaccount: %w", err)
	}

	return decodeSubaccount(raw)
}

// Info implements relay.SubaccountsClient.Info.
func (c *SubaccountsClient) Info(ctx context.Context, id string) (*relay.Subaccount, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "info", map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, fmt.Errorf("getting subaccount info: %w", err)
	}

	return decodeSubaccount(raw)
}

// Update implements relay.SubaccountsClient.Update.
func (c *SubaccountsClient) Update(ctx context.Context, request *relay.SubaccountRequest) (*relay.Subaccount, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "update", subaccountPayload(request))
	if err != nil {
		return nil, fmt.Errorf("updating subaccount: %w", err)
	}

	return decodeSubaccount(raw)
}

// Delete implements relay.SubaccountsClient.Delete.
func (c *SubaccountsClient) Delete(ctx context.Context, id string) (*relay.Subaccount, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "delete", map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting subaccount: %w", err)
	}

	return decodeSubaccount(raw)
}

// Pause implements relay.SubaccountsClient.Pause. Messages for a paused
// subaccount queue instead of sending.
func (c *SubaccountsClient) Pause(ctx context.Context, id string) (*relay.Subaccount, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "pause", map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, fmt.Errorf("pausing subaccount: %w", err)
	}

	return decodeSubaccount(raw)
}

// Resume implements relay.SubaccountsClient.Resume.
func (c *SubaccountsClient) Resume(ctx context.Context, id string) (*relay.Subaccount, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "resume", map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, fmt.Errorf("resuming subaccount: %w", err)
	}

	return decodeSubaccount(raw)
}

func subaccountPayload(request *relay.SubaccountRequest) map[string]interface{} {
	payload := map[string]interface{}{
		"id": request.ID,
	}

	if request.Name != "" {
		payload["name"] = request.Name
	}

	if request.Notes != "" {
		payload["notes"] = request.Notes
	}

	if request.CustomQuota > 0 {
		payload["custom_quota"] = request.CustomQuota
	}

	return payload
}

func decodeSubaccount(raw json.RawMessage) (*relay.Subaccount, error) {
	var subaccount relay.Subaccount
	if err := json.Unmarshal(raw, &subaccount); err != nil {
		return nil, fmt.Errorf("parsing subaccount response: %w", err)
	}

	return &subaccount, nil
}
