package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/relaywire/relay-go/pkg/relay"
)

// RejectsClient implements relay.RejectsClient.
type RejectsClient struct {
	exec *Executor
}

// NewRejectsClient creates a new rejects client.
func NewRejectsClient(exec *Executor) *RejectsClient {
	return &RejectsClient{exec: exec}
}

func (c *RejectsClient) sectionName() string {
	return "rejects"
}

// Add implements relay.RejectsClient.Add. An empty subaccount applies the
// rejection account-wide.
func (c *RejectsClient) Add(ctx context.Context, email, comment, subaccount string) (*relay.RejectAddResult, error) {
	if email == "" {
		return nil, relay.ErrEmailRequired
	}

	payload := map[string]interface{}{
		"email": email,
	}

	if comment != "" {
		payload["comment"] = comment
	}

	if subaccount != "" {
		payload["subaccount"] = subaccount
	}

	raw, err := c.exec.Execute(ctx, c.sectionName(), "add", payload)
	if err != nil {
		return nil, fmt.Errorf("adding reject: %w", err)
	}

	var result relay.RejectAddResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("parsing reject add response: %w", err)
	}

	return &result, nil
}

// List implements relay.RejectsClient.List.
func (c *RejectsClient) List(ctx context.Context, params *relay.RejectListParams) ([]relay.Reject, error) {
	payload := map[string]interface{}{}

	if params != nil {
		if params.Email != "" {
			payload["email"] = params.Email
		}

		payload["include_expired"] = params.IncludeExpired

		if params.Subaccount != "" {
			payload["subaccount"] = params.Subaccount
		}
	}

	raw, err := c.exec.Execute(ctx, c.sectionName(), "list", payload)
	if err != nil {
		return nil, fmt.Errorf("listing rejects: %w", err)
	}

	var rejects []relay.Reject
	if err := json.Unmarshal(raw, &rejects); err != nil {
		return nil, fmt.Errorf("parsing rejects list response: %w", err)
	}

	return rejects, nil
}

// Delete implements relay.RejectsClient.Delete.
func (c *RejectsClient) Delete(ctx context.Context, email, subaccount string) (*relay.RejectDeleteResult, error) {
	if email == "" {
		return nil, relay.ErrEmailRequired
	}

	payload := map[string]interface{}{
		"email": email,
	}

	if subaccount != "" {
		payload["subaccount"] = subaccount
	}

	raw, err := c.exec.Execute(ctx, c.sectionName(), "delete", payload)
	if err != nil {
		return nil, fmt.Errorf("deleting reject: %w", err)
	}

	var result relay.RejectDeleteResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("parsing reject delete response: %w", err)
	}

	return &result, nil
}
