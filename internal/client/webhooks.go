package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/relaywire/relay-go/pkg/relay"
)

// WebhooksClient implements relay.WebhooksClient.
type WebhooksClient struct {
	exec *Executor
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(exec *Executor) *WebhooksClient {
	return &WebhooksClient{exec: exec}
}

func (c *WebhooksClient) sectionName() string {
	return "webhooks"
}

// List implements relay.WebhooksClient.List.
func (c *WebhooksClient) List(ctx context.Context) ([]relay.Webhook, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "list", nil)
	if err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}

	var webhooks []relay.Webhook
	if err := json.Unmarshal(raw, &webhooks); err != nil {
		return nil, fmt.Errorf("parsing webhooks list response: %w", err)
	}

	return webhooks, nil
}

// Add implements relay.WebhooksClient.Add.
func (c *WebhooksClient) Add(ctx context.Context, request *relay.WebhookRequest) (*relay.Webhook, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "add", webhookPayload(request))
	if err != nil {
		return nil, fmt.Errorf("adding webhook: %w", err)
	}

	return decodeWebhook(raw)
}

// Info implements relay.WebhooksClient.Info.
func (c *WebhooksClient) Info(ctx context.Context, id int) (*relay.Webhook, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "info", map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, fmt.Errorf("getting webhook info: %w", err)
	}

	return decodeWebhook(raw)
}

// Update implements relay.WebhooksClient.Update.
func (c *WebhooksClient) Update(ctx context.Context, id int, request *relay.WebhookRequest) (*relay.Webhook, error) {
	payload := webhookPayload(request)
	payload["id"] = id

	raw, err := c.exec.Execute(ctx, c.sectionName(), "update", payload)
	if err != nil {
		return nil, fmt.Errorf("updating webhook: %w", err)
	}

	return decodeWebhook(raw)
}

// Delete implements relay.WebhooksClient.Delete.
func (c *WebhooksClient) Delete(ctx context.Context, id int) (*relay.Webhook, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "delete", map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting webhook: %w", err)
	}

	return decodeWebhook(raw)
}

func webhookPayload(request *relay.WebhookRequest) map[string]interface{} {
	return map[string]interface{}{
		"url":         request.URL,
		"description": request.Description,
		"events":      request.Events,
	}
}

func decodeWebhook(raw json.RawMessage) (*relay.Webhook, error) {
	var webhook relay.Webhook
	if err := json.Unmarshal(raw, &webhook); err != nil {
		return nil, fmt.Errorf("parsing webhook response: %w", err)
	}

	return &webhook, nil
}
