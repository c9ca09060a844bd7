package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/relaywire/relay-go/pkg/relay"
)

// SendersClient implements relay.SendersClient.
type SendersClient struct {
	exec *Executor
}

// NewSendersClient creates a new senders client.
func NewSendersClient(exec *Executor) *SendersClient {
	return &SendersClient{exec: exec}
}

func (c *SendersClient) sectionName() string {
	return "senders"
}

// List implements relay.SendersClient.List.
func (c *SendersClient) List(ctx context.Context) ([]relay.SenderInfo, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "list", nil)
	if err != nil {
		return nil, fmt.Errorf("listing senders: %w", err)
	}

	var senders []relay.SenderInfo
	if err := json.Unmarshal(raw, &senders); err != nil {
		return nil, fmt.Errorf("parsing senders list response: %w", err)
	}

	return senders, nil
}

// Info implements relay.SendersClient.Info.
func (c *SendersClient) Info(ctx context.Context, address string) (*relay.SenderInfo, error) {
	if address == "" {
		return nil, relay.ErrEmailRequired
	}

	raw, err := c.exec.Execute(ctx, c.sectionName(), "info", map[string]interface{}{
		"address": address,
	})
	if err != nil {
		return nil, fmt.Errorf("getting sender info: %w", err)
	}

	var info relay.SenderInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("parsing sender info response: %w", err)
	}

	return &info, nil
}

// Domains implements relay.SendersClient.Domains.
func (c *SendersClient) Domains(ctx context.Context) ([]relay.SenderDomain, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "domains", nil)
	if err != nil {
		return nil, fmt.Errorf("listing sender domains: %w", err)
	}

	var domains []relay.SenderDomain
	if err := json.Unmarshal(raw, &domains); err != nil {
		return nil, fmt.Errorf("parsing sender domains response: %w", err)
	}

	return domains, nil
}

// TimeSeries implements relay.SendersClient.TimeSeries.
func (c *SendersClient) TimeSeries(ctx context.Context, address string) ([]relay.TimeSeriesPoint, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "time-series", map[string]interface{}{
		"address": address,
	})
	if err != nil {
		return nil, fmt.Errorf("getting sender time series: %w", err)
	}

	var points []relay.TimeSeriesPoint
	if err := json.Unmarshal(raw, &points); err != nil {
		return nil, fmt.Errorf("parsing sender time series response: %w", err)
	}

	return points, nil
}
