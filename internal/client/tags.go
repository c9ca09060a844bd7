package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/relaywire/relay-go/pkg/relay"
)

// TagsClient implements relay.TagsClient.
type TagsClient struct {
	exec *Executor
}

// NewTagsClient creates a new tags client.
func NewTagsClient(exec *Executor) *TagsClient {
	return &TagsClient{exec: exec}
}

func (c *TagsClient) sectionName() string {
	return "tags"
}

// List implements relay.TagsClient.List.
func (c *TagsClient) List(ctx context.Context) ([]relay.TagInfo, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "list", nil)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var tags []relay.TagInfo
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, fmt.Errorf("parsing tags list response: %w", err)
	}

	return tags, nil
}

// Info implements relay.TagsClient.Info.
func (c *TagsClient) Info(ctx context.Context, tag string) (*relay.TagInfo, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "info", map[string]interface{}{
		"tag": tag,
	})
	if err != nil {
		return nil, fmt.Errorf("getting tag info: %w", err)
	}

	var info relay.TagInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("parsing tag info response: %w", err)
	}

	return &info, nil
}

// Delete implements relay.TagsClient.Delete. Deleting a tag removes its
// statistics; messages sent with it are unaffected.
func (c *TagsClient) Delete(ctx context.Context, tag string) (*relay.TagInfo, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "delete", map[string]interface{}{
		"tag": tag,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting tag: %w", err)
	}

	var info relay.TagInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("parsing tag delete response: %w", err)
	}

	return &info, nil
}

// TimeSeries implements relay.TagsClient.TimeSeries.
func (c *TagsClient) TimeSeries(ctx context.Context, tag string) ([]relay.TimeSeriesPoint, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "time-series", map[string]interface{}{
		"tag": tag,
	})
	if err != nil {
		return nil, fmt.Errorf("getting tag time series: %w", err)
	}

	var points []relay.TimeSeriesPoint
	if err := json.Unmarshal(raw, &points); err != nil {
		return nil, fmt.Errorf("parsing tag time series response: %w", err)
	}

	return points, nil
}

// AllTimeSeries implements relay.TagsClient.AllTimeSeries.
func (c *TagsClient) AllTimeSeries(ctx context.Context) ([]relay.TimeSeriesPoint, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "all-time-series", nil)
	if err != nil {
		return nil, fmt.Errorf("getting all-tag time series: %w", err)
	}

	var points []relay.TimeSeriesPoint
	if err := json.Unmarshal(raw, &points); err != nil {
		return nil, fmt.Errorf("parsing all-tag time series response: %w", err)
	}

	return points, nil
}
