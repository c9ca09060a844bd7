package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/relaywire/relay-go/pkg/relay"
)

// MessagesClient implements relay.MessagesClient.
type MessagesClient struct {
	exec *Executor
}

// NewMessagesClient creates a new messages client.
func NewMessagesClient(exec *Executor) *MessagesClient {
	return &MessagesClient{exec: exec}
}

func (c *MessagesClient) sectionName() string {
	return "messages"
}

// Send implements relay.MessagesClient.Send.
func (c *MessagesClient) Send(ctx context.Context, message *relay.Message) ([]relay.SendResult, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "send", map[string]interface{}{
		"message": message,
	})
	if err != nil {
		return nil, fmt.Errorf("sending message: %w", err)
	}

	var results []relay.SendResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("parsing send response: %w", err)
	}

	return results, nil
}

// SendTemplate implements relay.MessagesClient.SendTemplate.
func (c *MessagesClient) SendTemplate(ctx context.Context, templateName string, templateContent []relay.TemplateVar, message *relay.Message) ([]relay.SendResult, error) {
	if templateName == "" {
		return nil, relay.ErrTemplateNameNeeded
	}

	raw, err := c.exec.Execute(ctx, c.sectionName(), "send-template", map[string]interface{}{
		"template_name":    templateName,
		"template_content": templateContent,
		"message":          message,
	})
	if err != nil {
		return nil, fmt.Errorf("sending templated message: %w", err)
	}

	var results []relay.SendResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("parsing send-template response: %w", err)
	}

	return results, nil
}

// Search implements relay.MessagesClient.Search.
func (c *MessagesClient) Search(ctx context.Context, params *relay.MessageSearchParams) ([]relay.MessageInfo, error) {
	payload := map[string]interface{}{}

	if params != nil {
		payload["query"] = params.Query
		payload["date_from"] = params.DateFrom
		payload["date_to"] = params.DateTo
		payload["tags"] = params.Tags
		payload["senders"] = params.Senders

		if params.Limit > 0 {
			payload["limit"] = params.Limit
		}
	}

	raw, err := c.exec.Execute(ctx, c.sectionName(), "search", payload)
	if err != nil {
		return nil, fmt.Errorf("searching messages: %w", err)
	}

	var messages []relay.MessageInfo
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	return messages, nil
}

// Info implements relay.MessagesClient.Info.
func (c *MessagesClient) Info(ctx context.Context, id string) (*relay.MessageInfo, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "info", map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, fmt.Errorf("getting message info: %w", err)
	}

	var info relay.MessageInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("parsing message info response: %w", err)
	}

	return &info, nil
}

// Content implements relay.MessagesClient.Content.
func (c *MessagesClient) Content(ctx context.Context, id string) (*relay.MessageContent, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "content", map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, fmt.Errorf("getting message content: %w", err)
	}

	var content relay.MessageContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, fmt.Errorf("parsing message content response: %w", err)
	}

	return &content, nil
}

// Parse implements relay.MessagesClient.Parse.
func (c *MessagesClient) Parse(ctx context.Context, rawMessage string) (*relay.MessageContent, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "parse", map[string]interface{}{
		"raw_message": rawMessage,
	})
	if err != nil {
		return nil, fmt.Errorf("parsing raw message: %w", err)
	}

	var content relay.MessageContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, fmt.Errorf("parsing parse response: %w", err)
	}

	return &content, nil
}
