package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/relaywire/relay-go/pkg/relay"
)

// ExportsClient implements relay.ExportsClient.
type ExportsClient struct {
	exec *Executor
}

// NewExportsClient creates a new exports client.
func NewExportsClient(exec *Executor) *ExportsClient {
	return &ExportsClient{exec: exec}
}

func (c *ExportsClient) sectionName() string {
	return "exports"
}

// List implements relay.ExportsClient.List.
func (c *ExportsClient) List(ctx context.Context) ([]relay.Export, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "list", nil)
	if err != nil {
		return nil, fmt.Errorf("listing exports: %w", err)
	}

	var exports []relay.Export
	if err := json.Unmarshal(raw, &exports); err != nil {
		return nil, fmt.Errorf("parsing exports list response: %w", err)
	}

	return exports, nil
}

// Info implements relay.ExportsClient.Info.
func (c *ExportsClient) Info(ctx context.Context, id string) (*relay.Export, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "info", map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, fmt.Errorf("getting export info: %w", err)
	}

	return decodeExport(raw)
}

// Rejects implements relay.ExportsClient.Rejects. notifyEmail, when set,
// receives a notification once the export completes.
func (c *ExportsClient) Rejects(ctx context.Context, notifyEmail string) (*relay.Export, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "rejects", notifyPayload(notifyEmail))
	if err != nil {
		return nil, fmt.Errorf("starting rejects export: %w", err)
	}

	return decodeExport(raw)
}

// Whitelist implements relay.ExportsClient.Whitelist.
func (c *ExportsClient) Whitelist(ctx context.Context, notifyEmail string) (*relay.Export, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "whitelist", notifyPayload(notifyEmail))
	if err != nil {
		return nil, fmt.Errorf("starting whitelist export: %w", err)
	}

	return decodeExport(raw)
}

// Activity implements relay.ExportsClient.Activity.
func (c *ExportsClient) Activity(ctx context.Context, params *relay.ActivityExportParams) (*relay.Export, error) {
	payload := map[string]interface{}{}

	if params != nil {
		if params.NotifyEmail != "" {
			payload["notify_email"] = params.NotifyEmail
		}

		if params.DateFrom != "" {
			payload["date_from"] = params.DateFrom
		}

		if params.DateTo != "" {
			payload["date_to"] = params.DateTo
		}

		if len(params.Tags) > 0 {
			payload["tags"] = params.Tags
		}

		if len(params.Senders) > 0 {
			payload["senders"] = params.Senders
		}

		if len(params.States) > 0 {
			payload["states"] = params.States
		}
	}

	raw, err := c.exec.Execute(ctx, c.sectionName(), "activity", payload)
	if err != nil {
		return nil, fmt.Errorf("starting activity export: %w", err)
	}

	return decodeExport(raw)
}

func notifyPayload(notifyEmail string) map[string]interface{} {
	payload := map[string]interface{}{}
	if notifyEmail != "" {
		payload["notify_email"] = notifyEmail
	}

	return payload
}

func decodeExport(raw json.RawMessage) (*relay.Export, error) {
	var export relay.Export
	if err := json.Unmarshal(raw, &export); err != nil {
		return nil, fmt.Errorf("parsing export response: %w", err)
	}

	return &export, nil
}
