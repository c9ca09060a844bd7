package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/relaywire/relay-go/internal/constants"
	"github.com/relaywire/relay-go/pkg/relay"
)

// TemplatesClient implements relay.TemplatesClient. Info and List lookups can
// be served from an optional cache; every mutation invalidates the affected
// entries so reads never return a deleted or stale published template.
type TemplatesClient struct {
	exec     *Executor
	cache    relay.Cache
	cacheTTL time.Duration
}

// NewTemplatesClient creates a new templates client without caching.
func NewTemplatesClient(exec *Executor) *TemplatesClient {
	return &TemplatesClient{exec: exec}
}

// NewTemplatesClientWithCache creates a templates client that caches Info and
// List responses for ttl. A zero ttl uses the default template cache TTL.
func NewTemplatesClientWithCache(exec *Executor, cache relay.Cache, ttl time.Duration) *TemplatesClient {
	if ttl == 0 {
		ttl = constants.TemplatesCacheTTL
	}

	return &TemplatesClient{
		exec:     exec,
		cache:    cache,
		cacheTTL: ttl,
	}
}

func (c *TemplatesClient) sectionName() string {
	return "templates"
}

func (c *TemplatesClient) cacheKey(parts ...string) string {
	key := c.sectionName()
	for _, part := range parts {
		key += "/" + part
	}

	return key
}

// cachedExecute serves the call from the cache when possible, falling back to
// the executor and storing the fresh response.
func (c *TemplatesClient) cachedExecute(ctx context.Context, action string, payload map[string]interface{}, key string) (json.RawMessage, error) {
	if c.cache != nil {
		entry, err := c.cache.Get(ctx, key)
		if err == nil {
			return json.RawMessage(entry.Data), nil
		}
	}

	raw, err := c.exec.Execute(ctx, c.sectionName(), action, payload)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		now := time.Now()
		_ = c.cache.Set(ctx, key, &relay.CacheEntry{
			Data:      raw,
			StoredAt:  now,
			ExpiresAt: now.Add(c.cacheTTL),
		})
	}

	return raw, nil
}

// invalidate drops the cached entries a mutation makes stale.
func (c *TemplatesClient) invalidate(ctx context.Context, name string) {
	if c.cache == nil {
		return
	}

	_ = c.cache.Delete(ctx, c.cacheKey("info", name))
	_ = c.cache.Delete(ctx, c.cacheKey("list"))
}

// Add implements relay.TemplatesClient.Add.
func (c *TemplatesClient) Add(ctx context.Context, request *relay.TemplateRequest) (*relay.Template, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "add", templatePayload(request))
	if err != nil {
		return nil, fmt.Errorf("adding template: %w", err)
	}

	c.invalidate(ctx, request.Name)

	return decodeTemplate(raw)
}

// Info implements relay.TemplatesClient.Info.
func (c *TemplatesClient) Info(ctx context.Context, name string) (*relay.Template, error) {
	if name == "" {
		return nil, relay.ErrTemplateNameNeeded
	}

	raw, err := c.cachedExecute(ctx, "info", map[string]interface{}{"name": name}, c.cacheKey("info", name))
	if err != nil {
		return nil, fmt.Errorf("getting template info: %w", err)
	}

	return decodeTemplate(raw)
}

// Update implements relay.TemplatesClient.Update.
func (c *TemplatesClient) Update(ctx context.Context, request *relay.TemplateRequest) (*relay.Template, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "update", templatePayload(request))
	if err != nil {
		return nil, fmt.Errorf("updating template: %w", err)
	}

	c.invalidate(ctx, request.Name)

	return decodeTemplate(raw)
}

// Publish implements relay.TemplatesClient.Publish.
func (c *TemplatesClient) Publish(ctx context.Context, name string) (*relay.Template, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "publish", map[string]interface{}{
		"name": name,
	})
	if err != nil {
		return nil, fmt.Errorf("publishing template: %w", err)
	}

	c.invalidate(ctx, name)

	return decodeTemplate(raw)
}

// Delete implements relay.TemplatesClient.Delete.
func (c *TemplatesClient) Delete(ctx context.Context, name string) (*relay.Template, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "delete", map[string]interface{}{
		"name": name,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting template: %w", err)
	}

	c.invalidate(ctx, name)

	return decodeTemplate(raw)
}

// List implements relay.TemplatesClient.List. An empty label lists all
// templates; listings are only cached for the unfiltered case.
func (c *TemplatesClient) List(ctx context.Context, label string) ([]relay.Template, error) {
	payload := map[string]interface{}{}
	if label != "" {
		payload["label"] = label
	}

	var (
		raw json.RawMessage
		err error
	)

	if label == "" {
		raw, err = c.cachedExecute(ctx, "list", payload, c.cacheKey("list"))
	} else {
		raw, err = c.exec.Execute(ctx, c.sectionName(), "list", payload)
	}

	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	var templates []relay.Template
	if err := json.Unmarshal(raw, &templates); err != nil {
		return nil, fmt.Errorf("parsing templates list response: %w", err)
	}

	return templates, nil
}

// Render implements relay.TemplatesClient.Render.
func (c *TemplatesClient) Render(ctx context.Context, name string, templateContent []relay.TemplateVar, mergeVars []relay.Var) (string, error) {
	raw, err := c.exec.Execute(ctx, c.sectionName(), "render", map[string]interface{}{
		"template_name":    name,
		"template_content": templateContent,
		"merge_vars":       mergeVars,
	})
	if err != nil {
		return "", fmt.Errorf("rendering template: %w", err)
	}

	var rendered struct {
		HTML string `json:"html"`
	}

	if err := json.Unmarshal(raw, &rendered); err != nil {
		return "", fmt.Errorf("parsing render response: %w", err)
	}

	return rendered.HTML, nil
}

// templatePayload flattens a template request into the wire payload.
func templatePayload(request *relay.TemplateRequest) map[string]interface{} {
	return map[string]interface{}{
		"name":       request.Name,
		"code":       request.Code,
		"text":       request.Text,
		"subject":    request.Subject,
		"from_email": request.FromEmail,
		"from_name":  request.FromName,
		"labels":     request.Labels,
		"publish":    request.Publish,
	}
}

func decodeTemplate(raw json.RawMessage) (*relay.Template, error) {
	var template relay.Template
	if err := json.Unmarshal(raw, &template); err != nil {
		return nil, fmt.Errorf("parsing template response: %w", err)
	}

	return &template, nil
}
